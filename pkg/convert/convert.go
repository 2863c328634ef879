package convert

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/goliatone/go-kendo/pkg/pattern"
)

// Converter binds textual input to a time value. Blank text converts to a nil
// value and a nil value converts to "", neither of which is an error.
type Converter interface {
	ConvertToObject(text string, locale language.Tag) (*time.Time, error)
	ConvertToString(value *time.Time, locale language.Tag) (string, error)
}

// ConversionError reports non-empty text that does not match the bound pattern.
// Err carries the underlying parse diagnostic.
type ConversionError struct {
	Text    string
	Pattern string
	Err     error
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "convert: <nil>"
	}
	return fmt.Sprintf("convert: %q does not match pattern %q: %v", e.Text, e.Pattern, e.Err)
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Option configures a PatternConverter.
type Option func(*PatternConverter)

// WithLocation parses text in loc instead of UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *PatternConverter) {
		if loc != nil {
			c.location = loc
		}
	}
}

// PatternConverter converts using a single CLDR style pattern, translated to a
// Go layout once at construction. A pattern that cannot be translated is
// reported by every conversion call as a ConversionError.
type PatternConverter struct {
	pattern  string
	layout   string
	err      error
	location *time.Location
}

var _ Converter = (*PatternConverter)(nil)

// NewPatternConverter binds a converter to pattern.
func NewPatternConverter(p string, options ...Option) *PatternConverter {
	layout, err := pattern.GoLayout(p)
	c := &PatternConverter{
		pattern:  p,
		layout:   layout,
		err:      err,
		location: time.UTC,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Pattern returns the bound pattern.
func (c *PatternConverter) Pattern() string {
	return c.pattern
}

// Layout returns the Go layout the pattern translated to, with the translation
// error when it did not.
func (c *PatternConverter) Layout() (string, error) {
	return c.layout, c.err
}

// ConvertToObject parses text with the bound pattern. The locale is accepted
// for interface symmetry; the bound pattern already encodes it.
func (c *PatternConverter) ConvertToObject(text string, _ language.Tag) (*time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if c.err != nil {
		return nil, &ConversionError{Text: text, Pattern: c.pattern, Err: c.err}
	}
	parsed, err := time.ParseInLocation(c.layout, text, c.location)
	if err != nil {
		return nil, &ConversionError{Text: text, Pattern: c.pattern, Err: err}
	}
	return &parsed, nil
}

// ConvertToString formats value with the bound pattern.
func (c *PatternConverter) ConvertToString(value *time.Time, _ language.Tag) (string, error) {
	if value == nil {
		return "", nil
	}
	if c.err != nil {
		return "", &ConversionError{Pattern: c.pattern, Err: c.err}
	}
	return value.Format(c.layout), nil
}
