package scheduler

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-kendo/pkg/options"
)

// ViewType tags a scheduler display mode.
type ViewType string

const (
	Day              ViewType = "day"
	WorkWeek         ViewType = "workWeek"
	Week             ViewType = "week"
	Month            ViewType = "month"
	Year             ViewType = "year"
	Agenda           ViewType = "agenda"
	Timeline         ViewType = "timeline"
	TimelineWeek     ViewType = "timelineWeek"
	TimelineWorkWeek ViewType = "timelineWorkWeek"
	TimelineMonth    ViewType = "timelineMonth"
)

var viewTypes = []ViewType{
	Day, WorkWeek, Week, Month, Year, Agenda,
	Timeline, TimelineWeek, TimelineWorkWeek, TimelineMonth,
}

// ViewTypes lists the supported view types.
func ViewTypes() []ViewType {
	return append([]ViewType(nil), viewTypes...)
}

// Valid reports whether t is one of the supported view types.
func (t ViewType) Valid() bool {
	for _, known := range viewTypes {
		if t == known {
			return true
		}
	}
	return false
}

// View describes one scheduler view. Views are values: every setter returns a
// modified copy and the view type never changes.
type View struct {
	viewType       ViewType
	headerPattern  string
	headerTemplate string
	title          string
	selected       bool
}

// NewView returns a view of type t.
func NewView(t ViewType) (View, error) {
	if !t.Valid() {
		return View{}, fmt.Errorf("scheduler: unknown view type %q", t)
	}
	return View{viewType: t}, nil
}

func DayView() View              { return View{viewType: Day} }
func WorkWeekView() View         { return View{viewType: WorkWeek} }
func WeekView() View             { return View{viewType: Week} }
func MonthView() View            { return View{viewType: Month} }
func YearView() View             { return View{viewType: Year} }
func AgendaView() View           { return View{viewType: Agenda} }
func TimelineView() View         { return View{viewType: Timeline} }
func TimelineWeekView() View     { return View{viewType: TimelineWeek} }
func TimelineWorkWeekView() View { return View{viewType: TimelineWorkWeek} }
func TimelineMonthView() View    { return View{viewType: TimelineMonth} }

// Type returns the view's variant tag.
func (v View) Type() ViewType {
	return v.viewType
}

// DateHeaderTemplatePattern returns the header pattern, "" when unset.
func (v View) DateHeaderTemplatePattern() string {
	return v.headerPattern
}

// SetDateHeaderTemplatePattern returns a copy of v whose date header renders
// with pattern, a Kendo client format such as "dddd". It replaces any custom
// header template.
func (v View) SetDateHeaderTemplatePattern(pattern string) View {
	v.headerPattern = pattern
	v.headerTemplate = ""
	return v
}

// WithDateHeaderTemplate returns a copy of v with a custom header template.
// Markup is reduced to inline formatting; #= # expressions are kept verbatim.
// It replaces any header pattern.
func (v View) WithDateHeaderTemplate(template string) View {
	v.headerTemplate = sanitizeTemplate(template)
	v.headerPattern = ""
	return v
}

// DateHeaderTemplate returns the client template for the date header, "" when
// neither a pattern nor a template is set.
func (v View) DateHeaderTemplate() string {
	if v.headerTemplate != "" {
		return v.headerTemplate
	}
	if v.headerPattern == "" {
		return ""
	}
	return "<strong>#=kendo.toString(date, '" + strings.ReplaceAll(v.headerPattern, "'", `\'`) + "')#</strong>"
}

// WithTitle returns a copy of v with a toolbar title.
func (v View) WithTitle(title string) View {
	v.title = title
	return v
}

// WithSelected returns a copy of v marked as the initially selected view.
func (v View) WithSelected(selected bool) View {
	v.selected = selected
	return v
}

// Selected reports whether v is the initially selected view.
func (v View) Selected() bool {
	return v.selected
}

// Equal compares views by type.
func (v View) Equal(other View) bool {
	return v.viewType == other.viewType
}

// Options renders the view as a views-array entry.
func (v View) Options() *options.Options {
	opts := options.New().Set("type", string(v.viewType))
	if v.title != "" {
		opts.Set("title", v.title)
	}
	if v.selected {
		opts.Set("selected", true)
	}
	if tpl := v.DateHeaderTemplate(); tpl != "" {
		opts.Set("dateHeaderTemplate", tpl)
	}
	return opts
}

func (v View) String() string {
	return string(v.viewType)
}
