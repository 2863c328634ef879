package options_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-kendo/pkg/options"
)

func TestOptions_StringQuotesLiteralsOnly(t *testing.T) {
	opts := options.New().
		Set("culture", "fr-FR").
		Set("interval", 15).
		Set("animation", false).
		Set("change", options.RawScript("function(e) { this.read(); }"))

	want := `{ "culture": "fr-FR", "interval": 15, "animation": false, "change": function(e) { this.read(); } }`
	if got := opts.String(); got != want {
		t.Fatalf("options mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestOptions_LastWriteWinsKeepsPosition(t *testing.T) {
	opts := options.New().
		Set("a", 1).
		Set("b", 2).
		Set("a", "one")

	if diff := cmp.Diff([]string{"a", "b"}, opts.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got := opts.String(); got != `{ "a": "one", "b": 2 }` {
		t.Fatalf("unexpected output %s", got)
	}
}

func TestOptions_Deterministic(t *testing.T) {
	build := func() *options.Options {
		return options.New().
			Set("z", "last").
			Set("m", []int{1, 2}).
			Set("a", map[string]any{"y": 1, "x": 2}).
			Set("fn", options.RawScript("function() {}"))
	}

	first, second := build().String(), build().String()
	if first != second {
		t.Fatalf("output differs between identical builds\n%s\n%s", first, second)
	}
	for i := 0; i < 10; i++ {
		if got := build().String(); got != first {
			t.Fatalf("run %d differs: %s", i, got)
		}
	}
}

func TestOptions_EscapesScriptSensitiveText(t *testing.T) {
	opts := options.New().Set("title", `</script><b>"x" & 'y'`)
	got := opts.String()
	if strings.Contains(got, "</script>") || strings.Contains(got, "<b>") {
		t.Fatalf("literal not escaped: %s", got)
	}
	want := `{ "title": "\u003c/script\u003e\u003cb\u003e\"x\" \u0026 'y'" }`
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestOptions_NestedObjectsAndArrays(t *testing.T) {
	transport := options.New().Set("read", "/events")
	opts := options.New().
		Set("transport", transport).
		Set("views", options.Array("day", options.New().Set("type", "week").Set("selected", true)))

	transport.Set("read", "/changed")

	want := `{ "transport": { "read": "/events" }, "views": ["day", { "type": "week", "selected": true }] }`
	if got := opts.String(); got != want {
		t.Fatalf("want %s\n got %s", want, got)
	}
}

func TestOptions_EmptyAndDelete(t *testing.T) {
	opts := options.New()
	if got := opts.String(); got != "{ }" {
		t.Fatalf("empty options: got %s", got)
	}

	opts.Set("a", 1).Set("b", 2).Set("c", 3).Delete("b").Delete("missing")
	if diff := cmp.Diff([]string{"a", "c"}, opts.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if opts.Has("b") || opts.Len() != 2 {
		t.Fatalf("delete did not remove key: %v", opts.Keys())
	}
}

func TestOptions_CloneIsIndependent(t *testing.T) {
	base := options.New().Set("a", 1)
	clone := base.Clone().Set("b", 2)

	if base.Has("b") {
		t.Fatalf("clone mutation leaked into base")
	}
	if clone.String() != `{ "a": 1, "b": 2 }` {
		t.Fatalf("unexpected clone output %s", clone.String())
	}
}

func TestOptions_MergeOverridesInOrder(t *testing.T) {
	base := options.New().Set("format", "h:mm tt").Set("culture", "en")
	extra := options.New().Set("culture", "fr").Set("interval", 30)

	base.Merge(extra)
	if got := base.String(); got != `{ "format": "h:mm tt", "culture": "fr", "interval": 30 }` {
		t.Fatalf("unexpected merge output %s", got)
	}
}

func TestOptions_EncodingError(t *testing.T) {
	opts := options.New().
		Set("bad", make(chan int)).
		Set("good", "ok")

	if opts.Err() == nil {
		t.Fatalf("expected encoding error")
	}
	if !strings.Contains(opts.Err().Error(), `"bad"`) {
		t.Fatalf("error should name the option, got %v", opts.Err())
	}
	if got := opts.String(); got != `{ "bad": null, "good": "ok" }` {
		t.Fatalf("unexpected output %s", got)
	}
}

func TestOptions_EncodingErrorFollowsLastWrite(t *testing.T) {
	bad := make(chan int)

	overwritten := options.New().Set("x", bad).Set("x", 1)
	if err := overwritten.Err(); err != nil {
		t.Fatalf("overwrite should drop the error, got %v", err)
	}
	if got := overwritten.String(); got != `{ "x": 1 }` {
		t.Fatalf("unexpected output %s", got)
	}

	deleted := options.New().Set("x", bad).Set("y", true).Delete("x")
	if err := deleted.Err(); err != nil {
		t.Fatalf("delete should drop the error, got %v", err)
	}

	nested := options.New().Set("transport", options.New().Set("read", bad))
	if err := nested.Err(); err == nil || !strings.Contains(err.Error(), `"transport"`) {
		t.Fatalf("nested error should name the outer option, got %v", err)
	}
	if err := nested.Clone().Set("transport", options.New()).Err(); err != nil {
		t.Fatalf("replacing the nested object should drop the error, got %v", err)
	}
}

func TestValue_IsRaw(t *testing.T) {
	if !options.RawScript("x").IsRaw() {
		t.Fatalf("raw script should report IsRaw")
	}
	if options.Literal("x").IsRaw() {
		t.Fatalf("literal should not report IsRaw")
	}
	if got := options.Literal(nil).String(); got != "null" {
		t.Fatalf("nil literal: got %s", got)
	}
}
