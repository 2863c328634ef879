package convert_test

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/goliatone/go-kendo/pkg/convert"
	"github.com/goliatone/go-kendo/pkg/pattern"
)

func TestPatternConverter_TimeOfDay(t *testing.T) {
	conv := convert.NewPatternConverter("h:mm a")
	value := time.Date(0, time.January, 1, 14, 30, 0, 0, time.UTC)

	text, err := conv.ConvertToString(&value, language.AmericanEnglish)
	if err != nil {
		t.Fatalf("convert to string: %v", err)
	}
	if text != "2:30 PM" {
		t.Fatalf("want %q, got %q", "2:30 PM", text)
	}

	parsed, err := conv.ConvertToObject("2:30 PM", language.AmericanEnglish)
	if err != nil {
		t.Fatalf("convert to object: %v", err)
	}
	if parsed == nil || !parsed.Equal(value) {
		t.Fatalf("want %v, got %v", value, parsed)
	}
	if parsed.Hour() != 14 || parsed.Minute() != 30 {
		t.Fatalf("want 14:30, got %02d:%02d", parsed.Hour(), parsed.Minute())
	}
}

func TestPatternConverter_AbsentValues(t *testing.T) {
	for _, p := range []string{"h:mm a", "MM/dd/yyyy", "HH:mm G"} {
		conv := convert.NewPatternConverter(p)
		for _, text := range []string{"", "   ", "\t"} {
			got, err := conv.ConvertToObject(text, language.Und)
			if err != nil {
				t.Fatalf("pattern %q text %q: unexpected error %v", p, text, err)
			}
			if got != nil {
				t.Fatalf("pattern %q text %q: want nil value, got %v", p, text, got)
			}
		}
		text, err := conv.ConvertToString(nil, language.Und)
		if err != nil || text != "" {
			t.Fatalf("pattern %q: nil value should format to empty text, got %q (%v)", p, text, err)
		}
	}
}

func TestPatternConverter_MalformedInput(t *testing.T) {
	conv := convert.NewPatternConverter("h:mm a")

	for _, text := range []string{"25:99", "2:30", "2:30 XM", "noon"} {
		got, err := conv.ConvertToObject(text, language.Und)
		if got != nil {
			t.Fatalf("%q: expected no value, got %v", text, got)
		}
		var convErr *convert.ConversionError
		if !errors.As(err, &convErr) {
			t.Fatalf("%q: expected ConversionError, got %T (%v)", text, err, err)
		}
		if convErr.Text != text || convErr.Pattern != "h:mm a" {
			t.Fatalf("%q: unexpected error fields %+v", text, convErr)
		}
		var parseErr *time.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%q: expected underlying time.ParseError, got %v", text, errors.Unwrap(err))
		}
	}
}

func TestPatternConverter_RoundTrip(t *testing.T) {
	cases := []struct {
		pattern string
		value   time.Time
		want    time.Time
	}{
		{
			pattern: "HH:mm",
			value:   time.Date(2024, time.May, 1, 9, 5, 42, 0, time.UTC),
			want:    time.Date(0, time.January, 1, 9, 5, 0, 0, time.UTC),
		},
		{
			pattern: "MM/dd/yyyy",
			value:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			want:    time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			pattern: "dd.MM.yyyy HH:mm:ss",
			value:   time.Date(2023, time.December, 31, 23, 59, 58, 999, time.UTC),
			want:    time.Date(2023, time.December, 31, 23, 59, 58, 0, time.UTC),
		},
		{
			pattern: "EEEE, MMMM d, yyyy h:mm a",
			value:   time.Date(2025, time.July, 4, 6, 0, 0, 0, time.UTC),
			want:    time.Date(2025, time.July, 4, 6, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			t.Parallel()
			conv := convert.NewPatternConverter(tc.pattern)
			text, err := conv.ConvertToString(&tc.value, language.Und)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			parsed, err := conv.ConvertToObject(text, language.Und)
			if err != nil {
				t.Fatalf("parse %q: %v", text, err)
			}
			if !parsed.Equal(tc.want) {
				t.Fatalf("round trip via %q: want %v, got %v", text, tc.want, parsed)
			}
		})
	}
}

func TestPatternConverter_InvalidPatternSurfacesAtUse(t *testing.T) {
	conv := convert.NewPatternConverter("HH:mm G")
	if _, err := conv.Layout(); !errors.Is(err, pattern.ErrUnsupportedToken) {
		t.Fatalf("expected layout error, got %v", err)
	}

	_, err := conv.ConvertToObject("12:00 AD", language.Und)
	var convErr *convert.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if !errors.Is(err, pattern.ErrUnsupportedToken) {
		t.Fatalf("expected wrapped ErrUnsupportedToken, got %v", err)
	}

	value := time.Now()
	if _, err := conv.ConvertToString(&value, language.Und); !errors.As(err, &convErr) {
		t.Fatalf("expected ConversionError from format, got %v", err)
	}
}

func TestPatternConverter_WithLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	conv := convert.NewPatternConverter("yyyy-MM-dd HH:mm", convert.WithLocation(loc))

	parsed, err := conv.ConvertToObject("2024-06-01 08:00", language.Und)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Location() != loc {
		t.Fatalf("want location %v, got %v", loc, parsed.Location())
	}
	if parsed.UTC().Hour() != 6 {
		t.Fatalf("want 06 UTC, got %d", parsed.UTC().Hour())
	}
}
