package render

import (
	"io/fs"
	"log/slog"

	"github.com/goliatone/go-kendo/pkg/render/template"
)

// Option configures a Page.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	renderer  template.TemplateRenderer
	templates fs.FS
}

// WithLogger sets the page logger (slog.Default() otherwise).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTemplateRenderer replaces the template engine entirely.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// WithTemplatesFS builds the default engine on files instead of TemplatesFS.
// It is ignored when WithTemplateRenderer is given.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}
