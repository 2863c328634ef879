package form_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/goliatone/go-kendo/pkg/convert"
	"github.com/goliatone/go-kendo/pkg/form"
	"github.com/goliatone/go-kendo/pkg/locale"
	"github.com/goliatone/go-kendo/pkg/options"
	"github.com/goliatone/go-kendo/pkg/render"
	"github.com/goliatone/go-kendo/pkg/render/template/gotemplate"
)

func at(hour, minute int) *time.Time {
	value := time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
	return &value
}

func TestTimePicker_DefaultPattern(t *testing.T) {
	field := form.New(form.TimePicker, "start", form.Config{})

	if got := field.Pattern(); got != "h:mm a" {
		t.Fatalf("pattern: want %q, got %q", "h:mm a", got)
	}
	if got := field.Method(); got != "kendoTimePicker" {
		t.Fatalf("method: got %q", got)
	}

	text, err := field.ConvertToString(at(14, 30), language.Und)
	if err != nil {
		t.Fatalf("convert to string: %v", err)
	}
	if text != "2:30 PM" {
		t.Fatalf("want %q, got %q", "2:30 PM", text)
	}

	value, err := field.ConvertToObject("2:30 PM", language.Und)
	if err != nil {
		t.Fatalf("convert to object: %v", err)
	}
	if value == nil || value.Hour() != 14 || value.Minute() != 30 {
		t.Fatalf("want 14:30, got %v", value)
	}
}

func TestField_AbsentValues(t *testing.T) {
	field := form.New(form.TimePicker, "start", form.Config{})

	value, err := field.ConvertToObject("", language.Und)
	if err != nil || value != nil {
		t.Fatalf("empty text: want nil, nil; got %v, %v", value, err)
	}
	text, err := field.ConvertToString(nil, language.Und)
	if err != nil || text != "" {
		t.Fatalf("nil value: want empty, nil; got %q, %v", text, err)
	}
}

func TestField_MalformedInput(t *testing.T) {
	field := form.New(form.TimePicker, "start", form.Config{})

	for _, text := range []string{"2:30", "25:99"} {
		_, err := field.ConvertToObject(text, language.Und)
		var convErr *convert.ConversionError
		if !errors.As(err, &convErr) {
			t.Fatalf("%q: want ConversionError, got %v", text, err)
		}
		if convErr.Pattern != "h:mm a" || convErr.Text != text {
			t.Fatalf("%q: unexpected error fields %+v", text, convErr)
		}
		if errors.Unwrap(convErr) == nil {
			t.Fatalf("%q: conversion error should carry its cause", text)
		}
	}
}

func TestField_PatternPrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		kind        form.Kind
		cfg         form.Config
		wantPattern string
		wantCulture string
	}{
		{name: "kind default", kind: form.DatePicker, wantPattern: "MM/dd/yyyy"},
		{name: "explicit pattern", kind: form.TimePicker, cfg: form.Config{Pattern: "HH:mm:ss"}, wantPattern: "HH:mm:ss"},
		{name: "locale", kind: form.TimePicker, cfg: form.Config{Locale: language.MustParse("fr-FR")}, wantPattern: "HH:mm", wantCulture: "fr-FR"},
		{name: "locale beats pattern", kind: form.TimePicker, cfg: form.Config{Locale: language.German, Pattern: "h:mm a"}, wantPattern: "HH:mm", wantCulture: "de"},
		{name: "locale date class", kind: form.DatePicker, cfg: form.Config{Locale: language.German}, wantPattern: "dd.MM.yyyy", wantCulture: "de"},
		{name: "locale datetime class", kind: form.DateTimePicker, cfg: form.Config{Locale: language.MustParse("en-GB")}, wantPattern: "dd/MM/yyyy HH:mm", wantCulture: "en-GB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			field := form.New(tc.kind, "f", tc.cfg)
			if got := field.Pattern(); got != tc.wantPattern {
				t.Fatalf("pattern: want %q, got %q", tc.wantPattern, got)
			}
			opts, err := field.Options()
			if err != nil {
				t.Fatalf("options: %v", err)
			}
			culture, ok := opts.Get("culture")
			if tc.wantCulture == "" {
				if ok {
					t.Fatalf("unexpected culture option %s", culture)
				}
				return
			}
			if !ok || culture.String() != `"`+tc.wantCulture+`"` {
				t.Fatalf("culture: want %q, got %s (ok=%v)", tc.wantCulture, culture, ok)
			}
		})
	}
}

func TestField_LocaleFallsBackToKindDefault(t *testing.T) {
	table, err := locale.ParseTable([]byte("locales:\n  fr:\n    time: \"HH:mm\"\n"))
	if err != nil {
		t.Fatalf("parse table: %v", err)
	}

	field := form.New(form.DatePicker, "d", form.Config{Locale: language.French, Table: table})
	if got := field.Pattern(); got != "MM/dd/yyyy" {
		t.Fatalf("want kind default, got %q", got)
	}
	field = form.New(form.TimePicker, "t", form.Config{Locale: language.Japanese, Table: table})
	if got := field.Pattern(); got != "h:mm a" {
		t.Fatalf("want kind default for unmatched locale, got %q", got)
	}
}

func TestField_InputUpdatesModel(t *testing.T) {
	model := form.NewModel(at(9, 0))
	field := form.New(form.TimePicker, "start", form.Config{Model: model})

	if err := field.Input("2:30 PM"); err != nil {
		t.Fatalf("input: %v", err)
	}
	if got := model.Object(); got == nil || got.Hour() != 14 || got.Minute() != 30 {
		t.Fatalf("model not updated: %v", got)
	}

	err := field.Input("noon")
	var convErr *convert.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("want ConversionError, got %v", err)
	}
	if got := model.Object(); got == nil || got.Hour() != 14 {
		t.Fatalf("failed input must not touch the model: %v", got)
	}

	if err := field.Input("  "); err != nil {
		t.Fatalf("blank input: %v", err)
	}
	if model.Object() != nil {
		t.Fatalf("blank input should clear the model")
	}
}

func TestField_Value(t *testing.T) {
	field := form.New(form.TimePicker, "start", form.Config{Model: form.NewModel(at(14, 30))})
	got, err := field.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if got != "2:30 PM" {
		t.Fatalf("want %q, got %q", "2:30 PM", got)
	}
}

func TestField_Script(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		kind form.Kind
		cfg  form.Config
		want string
	}{
		{
			name: "time picker",
			kind: form.TimePicker,
			want: `jQuery(function() { jQuery('#start').kendoTimePicker({ "format": "h:mm tt" }); });`,
		},
		{
			name: "date picker with locale",
			kind: form.DatePicker,
			cfg:  form.Config{Locale: language.MustParse("fr-FR")},
			want: `jQuery(function() { jQuery('#start').kendoDatePicker({ "culture": "fr-FR", "format": "dd/MM/yyyy" }); });`,
		},
		{
			name: "seeded options keep position",
			kind: form.DateTimePicker,
			cfg:  form.Config{Options: options.New().Set("interval", 15)},
			want: `jQuery(function() { jQuery('#start').kendoDateTimePicker({ "interval": 15, "format": "MM/dd/yyyy h:mm tt" }); });`,
		},
		{
			name: "explicit format wins",
			kind: form.TimePicker,
			cfg:  form.Config{Options: options.New().Set("format", "HH:mm")},
			want: `jQuery(function() { jQuery('#start').kendoTimePicker({ "format": "HH:mm" }); });`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := form.New(tc.kind, "start", tc.cfg).Script()
			if err != nil {
				t.Fatalf("script: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("script mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestField_CopiesCallerOptions(t *testing.T) {
	shared := options.New().Set("interval", 30)
	field := form.New(form.TimePicker, "start", form.Config{
		Options: shared,
		Locale:  language.MustParse("fr-FR"),
	})
	shared.Set("max", "18:00")

	if _, err := field.Script(); err != nil {
		t.Fatalf("script: %v", err)
	}
	if shared.Has("culture") || shared.Has("format") {
		t.Fatalf("field wrote into the caller options: %v", shared.Keys())
	}
	opts, err := field.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if diff := cmp.Diff([]string{"interval", "culture", "format"}, opts.Keys()); diff != "" {
		t.Fatalf("field options mismatch (-want +got):\n%s", diff)
	}
}

func TestField_ScriptUnsupportedPattern(t *testing.T) {
	field := form.New(form.TimePicker, "start", form.Config{Pattern: "HH:mm Q"})
	if _, err := field.Script(); err == nil {
		t.Fatalf("expected client format error")
	}
	_, err := field.ConvertToObject("10:00 1", language.Und)
	var convErr *convert.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("want ConversionError at use time, got %v", err)
	}
}

func TestField_Markup(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(render.TemplatesFS()))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	field := form.New(form.TimePicker, "start", form.Config{
		Name:  "event[start]",
		Model: form.NewModel(at(14, 30)),
	})
	got, err := field.Markup(engine)
	if err != nil {
		t.Fatalf("markup: %v", err)
	}
	want := `<input type="text" id="start" name="event[start]" value="2:30 PM" data-method="kendoTimePicker" />`
	if diff := cmp.Diff(want, strings.TrimSpace(got)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}

	empty, err := form.New(form.DatePicker, "due", form.Config{}).Markup(engine)
	if err != nil {
		t.Fatalf("markup: %v", err)
	}
	if strings.Contains(empty, "value=") {
		t.Fatalf("absent value should omit the attribute: %s", empty)
	}
}
