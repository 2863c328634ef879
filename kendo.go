// Package kendo generates the markup and initialization scripts that bind
// server-side form fields, data sources and schedulers to Kendo UI widgets.
//
// The subpackages carry the implementation; this package re-exports the
// common entry points:
//
//	field := kendo.NewTimePicker("start", kendo.FieldConfig{Locale: language.French})
//	ds := kendo.NewSchedulerDataSource("events")
//	cal := kendo.NewScheduler("calendar", ds, kendo.DayView(), kendo.WeekView())
//
//	page, _ := kendo.NewPage()
//	_ = page.Add(field, ds, cal)
//	html, _ := page.Render()
package kendo

import (
	"io/fs"

	"github.com/goliatone/go-kendo/pkg/datasource"
	"github.com/goliatone/go-kendo/pkg/form"
	"github.com/goliatone/go-kendo/pkg/options"
	"github.com/goliatone/go-kendo/pkg/render"
	"github.com/goliatone/go-kendo/pkg/scheduler"
)

type (
	// Field is a picker bound to a typed time value.
	Field = form.Field
	// FieldConfig configures a Field.
	FieldConfig = form.Config
	// Options is an ordered widget option map.
	Options = options.Options
	// DataSource is a client data source declaration.
	DataSource = datasource.DataSource
	// Scheduler is a scheduler widget declaration.
	Scheduler = scheduler.Scheduler
	// View is a scheduler view descriptor.
	View = scheduler.View
	// Page collects components for one response.
	Page = render.Page
)

// NewTimePicker returns a time picker field on markupID.
func NewTimePicker(markupID string, cfg FieldConfig) *Field {
	return form.New(form.TimePicker, markupID, cfg)
}

// NewDatePicker returns a date picker field on markupID.
func NewDatePicker(markupID string, cfg FieldConfig) *Field {
	return form.New(form.DatePicker, markupID, cfg)
}

// NewDateTimePicker returns a date time picker field on markupID.
func NewDateTimePicker(markupID string, cfg FieldConfig) *Field {
	return form.New(form.DateTimePicker, markupID, cfg)
}

// NewOptions returns an empty option map.
func NewOptions() *Options {
	return options.New()
}

// NewDataSource returns a generic data source assigned to name.
func NewDataSource(name string, opts ...datasource.Option) *DataSource {
	return datasource.New(name, opts...)
}

// NewSchedulerDataSource returns a scheduler data source assigned to name that
// reloads after every sync.
func NewSchedulerDataSource(name string, opts ...datasource.Option) *DataSource {
	return datasource.NewScheduler(name, opts...)
}

// NewScheduler returns a scheduler on markupID.
func NewScheduler(markupID string, ds *DataSource, views ...View) *Scheduler {
	return scheduler.New(markupID, ds, views...)
}

func DayView() View      { return scheduler.DayView() }
func WorkWeekView() View { return scheduler.WorkWeekView() }
func WeekView() View     { return scheduler.WeekView() }
func MonthView() View    { return scheduler.MonthView() }
func AgendaView() View   { return scheduler.AgendaView() }

// NewPage returns a page rendering through the built-in templates unless
// overridden.
func NewPage(opts ...render.Option) (*Page, error) {
	return render.NewPage(opts...)
}

// EmbeddedTemplates exposes the built-in markup templates so hosts can copy or
// extend them.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
