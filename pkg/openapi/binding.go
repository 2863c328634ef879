package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-kendo/pkg/form"
)

// Extension keys read from property schemas.
const (
	// PatternExtension overrides the wire-format pattern of a property.
	PatternExtension = "x-kendo-pattern"
	// KindExtension selects a registered kind by name instead of by format.
	KindExtension = "x-kendo-kind"
)

// Wire-format patterns of the RFC 3339 based OpenAPI formats.
var wirePatterns = map[string]string{
	"date":      "yyyy-MM-dd",
	"time":      "HH:mm:ss",
	"date-time": "yyyy-MM-dd'T'HH:mm:ssXXX",
}

// Binding ties one schema property to a picker kind.
type Binding struct {
	// Schema is the components.schemas entry the property belongs to.
	Schema string
	// Property is the dotted path of the property inside Schema.
	Property string
	Kind     form.Kind
	Pattern  string
	Required bool
	// Description is copied from the property schema.
	Description string
}

// MarkupID derives an element id from the property path.
func (b Binding) MarkupID() string {
	return strings.ReplaceAll(b.Property, ".", "_")
}

// Field builds a form field for the binding. cfg.Pattern defaults to the
// binding pattern and cfg.Name to the property path.
func (b Binding) Field(cfg form.Config) *form.Field {
	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = b.Pattern
	}
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = b.Property
	}
	return form.New(b.Kind, b.MarkupID(), cfg)
}

// DiscoverOption configures Discover.
type DiscoverOption func(*discoverConfig)

type discoverConfig struct {
	registry *form.Registry
}

// WithRegistry resolves kinds through reg instead of form.NewRegistry().
func WithRegistry(reg *form.Registry) DiscoverOption {
	return func(cfg *discoverConfig) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// Discover returns a binding for every string property of doc's component
// schemas whose format maps to a registered kind. Bindings are sorted by
// schema name, then property path. Nested objects contribute dotted paths;
// array items and reference cycles are not followed.
func Discover(ctx context.Context, doc Document, options ...DiscoverOption) ([]Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	cfg := discoverConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.registry == nil {
		cfg.registry = form.NewRegistry()
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	api, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", doc.Location(), err)
	}
	if api.Components == nil || len(api.Components.Schemas) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(api.Components.Schemas))
	for name := range api.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var bindings []Binding
	for _, name := range names {
		w := walker{schema: name, registry: cfg.registry, seen: make(map[*openapi3.Schema]bool)}
		if err := w.walk(api.Components.Schemas[name], ""); err != nil {
			return nil, err
		}
		bindings = append(bindings, w.out...)
	}
	return bindings, nil
}

type walker struct {
	schema   string
	registry *form.Registry
	seen     map[*openapi3.Schema]bool
	out      []Binding
}

func (w *walker) walk(ref *openapi3.SchemaRef, prefix string) error {
	if ref == nil || ref.Value == nil || w.seen[ref.Value] {
		return nil
	}
	w.seen[ref.Value] = true
	defer delete(w.seen, ref.Value)

	properties, required := collectProperties(ref.Value)
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop := properties[key]
		if prop == nil || prop.Value == nil {
			continue
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if hasType(prop.Value, openapi3.TypeObject) || len(prop.Value.Properties) > 0 {
			if err := w.walk(prop, path); err != nil {
				return err
			}
			continue
		}

		binding, ok, err := w.bind(prop.Value, path)
		if err != nil {
			return err
		}
		if ok {
			binding.Required = required[key]
			w.out = append(w.out, binding)
		}
	}
	return nil
}

func (w *walker) bind(schema *openapi3.Schema, path string) (Binding, bool, error) {
	var (
		kind form.Kind
		ok   bool
	)
	if name, set := stringExtension(schema, KindExtension); set {
		resolved, err := w.registry.Get(name)
		if err != nil {
			return Binding{}, false, fmt.Errorf("openapi: %s.%s: %w", w.schema, path, err)
		}
		kind, ok = resolved, true
	} else if hasType(schema, openapi3.TypeString) {
		kind, ok = w.registry.ForFormat(schema.Format)
	}
	if !ok {
		return Binding{}, false, nil
	}

	pattern := wirePatterns[schema.Format]
	if override, set := stringExtension(schema, PatternExtension); set {
		pattern = override
	}
	if pattern == "" {
		pattern = kind.DefaultPattern
	}

	return Binding{
		Schema:      w.schema,
		Property:    path,
		Kind:        kind,
		Pattern:     pattern,
		Description: schema.Description,
	}, true, nil
}

// collectProperties merges a schema's own properties with those of its allOf
// members.
func collectProperties(schema *openapi3.Schema) (openapi3.Schemas, map[string]bool) {
	properties := make(openapi3.Schemas, len(schema.Properties))
	required := make(map[string]bool, len(schema.Required))
	for name, prop := range schema.Properties {
		properties[name] = prop
	}
	for _, name := range schema.Required {
		required[name] = true
	}
	for _, member := range schema.AllOf {
		if member == nil || member.Value == nil {
			continue
		}
		nested, nestedRequired := collectProperties(member.Value)
		for name, prop := range nested {
			if _, exists := properties[name]; !exists {
				properties[name] = prop
			}
		}
		for name := range nestedRequired {
			required[name] = true
		}
	}
	return properties, required
}

func hasType(schema *openapi3.Schema, want string) bool {
	if schema.Type == nil {
		return false
	}
	for _, t := range schema.Type.Slice() {
		if t == want {
			return true
		}
	}
	return false
}

func stringExtension(schema *openapi3.Schema, key string) (string, bool) {
	value, ok := schema.Extensions[key]
	if !ok {
		return "", false
	}
	text, ok := value.(string)
	text = strings.TrimSpace(text)
	return text, ok && text != ""
}
