package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/goliatone/go-kendo/internal/prompt"
	"github.com/goliatone/go-kendo/pkg/form"
	"github.com/goliatone/go-kendo/pkg/openapi"
	"github.com/goliatone/go-kendo/pkg/render"
)

type cliConfig struct {
	kind        string
	id          string
	pattern     string
	locale      string
	value       string
	schema      string
	interactive bool
	verbose     bool
	output      string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, nil); err != nil {
		fmt.Fprintf(os.Stderr, "kendo-cli: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet("kendo-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.kind, "kind", form.TimePicker.Name, "widget kind (timepicker, datepicker, datetimepicker)")
	fs.StringVar(&cfg.id, "id", "field", "markup id of the input element")
	fs.StringVar(&cfg.pattern, "pattern", "", "format pattern, e.g. \"h:mm a\" (ignored with -locale)")
	fs.StringVar(&cfg.locale, "locale", "", "BCP 47 locale, e.g. fr-FR")
	fs.StringVar(&cfg.value, "value", "", "initial value in the field's format")
	fs.StringVar(&cfg.schema, "openapi", "", "OpenAPI document path or URL; renders every date/time property")
	fs.BoolVar(&cfg.interactive, "interactive", false, "prompt for the kind and initial value")
	fs.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")
	fs.StringVar(&cfg.output, "output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}

// run renders a page and writes it to stdout or -output. driver is the prompt
// driver used by -interactive; nil selects the terminal.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	tag := language.Und
	if strings.TrimSpace(cfg.locale) != "" {
		tag, err = language.Parse(cfg.locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", cfg.locale, err)
		}
	}

	page, err := render.NewPage(render.WithLogger(logger))
	if err != nil {
		return err
	}

	fields, err := buildFields(ctx, cfg, tag, driver)
	if err != nil {
		return err
	}
	for _, field := range fields {
		if err := page.Add(field); err != nil {
			return err
		}
		logger.Debug("field ready", "id", field.MarkupID(), "kind", field.Kind().Name, "pattern", field.Pattern())
	}

	html, err := page.Render()
	if err != nil {
		return err
	}

	if cfg.output == "" {
		_, err = io.WriteString(stdout, html)
		return err
	}
	if err := os.WriteFile(cfg.output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("page written", "path", cfg.output)
	return nil
}

func buildFields(ctx context.Context, cfg cliConfig, tag language.Tag, driver prompt.Driver) ([]*form.Field, error) {
	registry := form.NewRegistry()

	if cfg.schema != "" {
		return schemaFields(ctx, cfg.schema, tag, registry)
	}

	if cfg.interactive && driver == nil {
		driver = prompt.NewSurveyDriver()
	}

	var (
		kind form.Kind
		err  error
	)
	if cfg.interactive {
		kind, err = prompt.AskKind(ctx, driver, registry, cfg.kind)
	} else {
		kind, err = registry.Get(cfg.kind)
	}
	if err != nil {
		return nil, err
	}

	field := form.New(kind, cfg.id, form.Config{Pattern: cfg.pattern, Locale: tag})
	if cfg.interactive {
		if err := prompt.AskValue(ctx, driver, field); err != nil {
			return nil, err
		}
	} else if err := field.Input(cfg.value); err != nil {
		return nil, err
	}
	return []*form.Field{field}, nil
}

func schemaFields(ctx context.Context, location string, tag language.Tag, registry *form.Registry) ([]*form.Field, error) {
	src := openapi.SourceFromFile(location)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		var err error
		if src, err = openapi.SourceFromURL(location); err != nil {
			return nil, err
		}
	}

	doc, err := openapi.NewLoader(openapi.WithHTTPFallback(30*time.Second)).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	bindings, err := openapi.Discover(ctx, doc, openapi.WithRegistry(registry))
	if err != nil {
		return nil, err
	}
	if len(bindings) == 0 {
		return nil, errors.New("no date or time properties found")
	}

	fields := make([]*form.Field, 0, len(bindings))
	for _, binding := range bindings {
		fields = append(fields, binding.Field(form.Config{Locale: tag}))
	}
	return fields, nil
}
