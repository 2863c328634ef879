package form

import (
	"time"

	"github.com/goliatone/go-kendo/pkg/convert"
	"github.com/goliatone/go-kendo/pkg/locale"
)

// Kind describes one picker widget: its client method, the pattern used when
// neither a locale nor a pattern is configured, the locale pattern class it
// draws from, and how its converter is built.
type Kind struct {
	Name           string
	Method         string
	DefaultPattern string
	Class          locale.Class
	// Format is the OpenAPI string format the kind binds to.
	Format string
	// NewConverter binds a converter to the resolved pattern. Nil selects a
	// convert.PatternConverter.
	NewConverter func(pattern string, loc *time.Location) convert.Converter
}

// Built-in kinds.
var (
	TimePicker = Kind{
		Name:           "timepicker",
		Method:         "kendoTimePicker",
		DefaultPattern: "h:mm a",
		Class:          locale.ClassTime,
		Format:         "time",
	}
	DatePicker = Kind{
		Name:           "datepicker",
		Method:         "kendoDatePicker",
		DefaultPattern: "MM/dd/yyyy",
		Class:          locale.ClassDate,
		Format:         "date",
	}
	DateTimePicker = Kind{
		Name:           "datetimepicker",
		Method:         "kendoDateTimePicker",
		DefaultPattern: "MM/dd/yyyy h:mm a",
		Class:          locale.ClassDateTime,
		Format:         "date-time",
	}
)

func (k Kind) converter(pattern string, loc *time.Location) convert.Converter {
	if k.NewConverter != nil {
		return k.NewConverter(pattern, loc)
	}
	return convert.NewPatternConverter(pattern, convert.WithLocation(loc))
}
