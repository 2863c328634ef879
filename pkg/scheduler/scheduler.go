package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-kendo/pkg/datasource"
	"github.com/goliatone/go-kendo/pkg/options"
	"github.com/goliatone/go-kendo/pkg/render/template"
	"github.com/goliatone/go-kendo/pkg/script"
)

// Method is the client enhancement method of the scheduler widget.
const Method = "kendoScheduler"

// Scheduler binds a scheduler widget on a markup element to a scheduler data
// source variable and a list of views.
type Scheduler struct {
	markupID   string
	dataSource *datasource.DataSource
	views      []View
	options    *options.Options
}

// New creates a scheduler on the element markupID. The data source's own
// statement must be emitted on the same page; the scheduler only references its
// variable.
func New(markupID string, ds *datasource.DataSource, views ...View) *Scheduler {
	return &Scheduler{
		markupID:   markupID,
		dataSource: ds,
		views:      append([]View(nil), views...),
		options:    options.New(),
	}
}

// MarkupID returns the element id the scheduler attaches to.
func (s *Scheduler) MarkupID() string {
	return s.markupID
}

// Method returns the client enhancement method name.
func (s *Scheduler) Method() string {
	return Method
}

// DataSource returns the bound data source.
func (s *Scheduler) DataSource() *datasource.DataSource {
	return s.dataSource
}

// Views returns a copy of the configured views.
func (s *Scheduler) Views() []View {
	return append([]View(nil), s.views...)
}

// AddView appends v, replacing an existing view of the same type.
func (s *Scheduler) AddView(v View) *Scheduler {
	for idx, existing := range s.views {
		if existing.Equal(v) {
			s.views[idx] = v
			return s
		}
	}
	s.views = append(s.views, v)
	return s
}

// Set stores a widget option; see options.Options.Set.
func (s *Scheduler) Set(name string, value any) *Scheduler {
	s.options.Set(name, value)
	return s
}

// SetDate sets the initially displayed date.
func (s *Scheduler) SetDate(date time.Time) *Scheduler {
	return s.Set("date", options.RawScript(fmt.Sprintf("new Date(%d, %d, %d)", date.Year(), int(date.Month())-1, date.Day())))
}

// SetTimezone sets the scheduler timezone. name must be an IANA zone known to
// the host's zoneinfo database.
func (s *Scheduler) SetTimezone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("scheduler: timezone %q: %w", name, err)
	}
	s.Set("timezone", name)
	return nil
}

// Options returns the full widget options, including the dataSource reference
// and the views array.
func (s *Scheduler) Options() *options.Options {
	opts := s.options.Clone()
	if s.dataSource != nil && !opts.Has("dataSource") {
		opts.Set("dataSource", options.RawScript(s.dataSource.Name()))
	}
	if len(s.views) > 0 && !opts.Has("views") {
		entries := make([]any, 0, len(s.views))
		for _, v := range s.views {
			entries = append(entries, v.Options())
		}
		opts.Set("views", options.Array(entries...))
	}
	return opts
}

// Script renders the widget statement:
//
//	jQuery(function() { jQuery('#<id>').kendoScheduler(<options>); });
func (s *Scheduler) Script() (string, error) {
	if s.dataSource == nil && !s.options.Has("dataSource") {
		return "", errors.New("scheduler: data source is required")
	}
	return script.Enhance(s.markupID, Method, s.Options())
}

// MarkupTemplate is the template Markup renders through.
const MarkupTemplate = "templates/scheduler"

// Markup renders the host element through tpl.
func (s *Scheduler) Markup(tpl template.TemplateRenderer) (string, error) {
	if s.markupID == "" {
		return "", errors.New("scheduler: markup id is required")
	}
	if tpl == nil {
		return "", errors.New("scheduler: template renderer is nil")
	}
	out, err := tpl.RenderTemplate(MarkupTemplate, map[string]any{
		"id":     s.markupID,
		"method": Method,
	})
	if err != nil {
		return "", fmt.Errorf("scheduler: render markup: %w", err)
	}
	return out, nil
}
