package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/goliatone/go-kendo/pkg/convert"
	"github.com/goliatone/go-kendo/pkg/locale"
	"github.com/goliatone/go-kendo/pkg/options"
	"github.com/goliatone/go-kendo/pkg/pattern"
	"github.com/goliatone/go-kendo/pkg/render/template"
	"github.com/goliatone/go-kendo/pkg/script"
)

// MarkupTemplate is the template Markup renders through.
const MarkupTemplate = "templates/input"

// Config carries the construction inputs of a field. Every member is
// optional.
type Config struct {
	// Model receives converted input. A fresh ValueModel is used when nil.
	Model Model
	// Pattern selects the format when Locale is absent.
	Pattern string
	// Locale derives the pattern from Table and sets the culture option. It
	// wins over Pattern; language.Und means absent.
	Locale language.Tag
	// Options seeds the widget options.
	Options *options.Options
	// Name is the input name attribute, the markup id when empty.
	Name string
	// Table overrides locale.Default().
	Table *locale.Table
	// Location is where parsed values live, UTC when nil.
	Location *time.Location
}

// Field adapts a text input to a typed time value through one converter bound
// to one pattern for its whole lifetime.
type Field struct {
	kind      Kind
	markupID  string
	name      string
	pattern   string
	locale    language.Tag
	converter convert.Converter
	model     Model
	options   *options.Options
}

// New builds a field of kind on the element markupID. The pattern is resolved
// once: the locale's pattern for the kind's class, else cfg.Pattern, else the
// kind default.
func New(kind Kind, markupID string, cfg Config) *Field {
	resolved := resolvePattern(kind, cfg)

	opts := options.New().Merge(cfg.Options)
	if cfg.Locale != language.Und {
		opts.Set("culture", locale.Culture(cfg.Locale))
	}

	model := cfg.Model
	if model == nil {
		model = NewModel(nil)
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = markupID
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Field{
		kind:      kind,
		markupID:  markupID,
		name:      name,
		pattern:   resolved,
		locale:    cfg.Locale,
		converter: kind.converter(resolved, loc),
		model:     model,
		options:   opts,
	}
}

func resolvePattern(kind Kind, cfg Config) string {
	if cfg.Locale != language.Und {
		table := cfg.Table
		if table == nil {
			table = locale.Default()
		}
		return table.Pattern(cfg.Locale, kind.Class, kind.DefaultPattern)
	}
	if p := strings.TrimSpace(cfg.Pattern); p != "" {
		return p
	}
	return kind.DefaultPattern
}

// Kind returns the field's kind.
func (f *Field) Kind() Kind {
	return f.kind
}

// MarkupID returns the element id the widget attaches to.
func (f *Field) MarkupID() string {
	return f.markupID
}

// Name returns the input name attribute.
func (f *Field) Name() string {
	return f.name
}

// Pattern returns the resolved pattern.
func (f *Field) Pattern() string {
	return f.pattern
}

// Locale returns the configured locale, language.Und when absent.
func (f *Field) Locale() language.Tag {
	return f.locale
}

// Method returns the client enhancement method name.
func (f *Field) Method() string {
	return f.kind.Method
}

// Model returns the bound model.
func (f *Field) Model() Model {
	return f.model
}

// ConvertToObject parses text with the bound converter. Blank text yields a
// nil value.
func (f *Field) ConvertToObject(text string, tag language.Tag) (*time.Time, error) {
	return f.converter.ConvertToObject(text, tag)
}

// ConvertToString formats value with the bound converter. A nil value yields
// "".
func (f *Field) ConvertToString(value *time.Time, tag language.Tag) (string, error) {
	return f.converter.ConvertToString(value, tag)
}

// Input converts submitted text and stores it in the model. The model is left
// untouched when conversion fails.
func (f *Field) Input(text string) error {
	value, err := f.ConvertToObject(text, f.locale)
	if err != nil {
		return fmt.Errorf("form: field %q: %w", f.markupID, err)
	}
	f.model.SetObject(value)
	return nil
}

// Value formats the model value for the markup.
func (f *Field) Value() (string, error) {
	out, err := f.ConvertToString(f.model.Object(), f.locale)
	if err != nil {
		return "", fmt.Errorf("form: field %q: %w", f.markupID, err)
	}
	return out, nil
}

// Set stores a widget option; see options.Options.Set.
func (f *Field) Set(name string, value any) *Field {
	f.options.Set(name, value)
	return f
}

// Options returns the widget options. A "format" option is added in the client
// dialect unless one was set explicitly.
func (f *Field) Options() (*options.Options, error) {
	opts := f.options.Clone()
	if opts.Has("format") {
		return opts, nil
	}
	clientFormat, err := pattern.Kendo(f.pattern)
	if err != nil {
		return nil, fmt.Errorf("form: field %q: client format: %w", f.markupID, err)
	}
	return opts.Set("format", clientFormat), nil
}

// Script renders the widget statement:
//
//	jQuery(function() { jQuery('#<id>').<method>(<options>); });
func (f *Field) Script() (string, error) {
	opts, err := f.Options()
	if err != nil {
		return "", err
	}
	return script.Enhance(f.markupID, f.kind.Method, opts)
}

// Markup renders the input element through tpl with the current value.
func (f *Field) Markup(tpl template.TemplateRenderer) (string, error) {
	if f.markupID == "" {
		return "", errors.New("form: markup id is required")
	}
	if tpl == nil {
		return "", errors.New("form: template renderer is nil")
	}
	value, err := f.Value()
	if err != nil {
		return "", err
	}
	out, err := tpl.RenderTemplate(MarkupTemplate, map[string]any{
		"id":     f.markupID,
		"name":   f.name,
		"value":  value,
		"method": f.kind.Method,
	})
	if err != nil {
		return "", fmt.Errorf("form: render markup: %w", err)
	}
	return out, nil
}
