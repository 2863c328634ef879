package render

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-kendo/pkg/render/template"
	"github.com/goliatone/go-kendo/pkg/render/template/gotemplate"
)

// Page collects the widgets of one response and renders their markup and a
// single script block. A Page is owned by one request and is not safe for
// concurrent use.
type Page struct {
	logger   *slog.Logger
	renderer template.TemplateRenderer

	entries []Scripter
	byID    map[string]Component
}

// NewPage builds a page. Without WithTemplateRenderer the pongo2 engine is
// created on TemplatesFS (or the WithTemplatesFS override).
func NewPage(options ...Option) (*Page, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.renderer == nil {
		files := cfg.templates
		if files == nil {
			files = TemplatesFS()
		}
		engine, err := gotemplate.New(gotemplate.WithFS(files))
		if err != nil {
			return nil, fmt.Errorf("render: template engine: %w", err)
		}
		cfg.renderer = engine
	}

	return &Page{
		logger:   cfg.logger,
		renderer: cfg.renderer,
		byID:     make(map[string]Component),
	}, nil
}

// Renderer returns the template engine components render through.
func (p *Page) Renderer() template.TemplateRenderer {
	return p.renderer
}

// Add registers entries in order. Components are indexed by markup id and a
// second component with the same id fails with ErrDuplicateComponent. Plain
// scripters (data sources) carry no markup.
func (p *Page) Add(entries ...Scripter) error {
	for _, entry := range entries {
		if entry == nil {
			return fmt.Errorf("render: nil component")
		}
		if component, ok := entry.(Component); ok {
			id := component.MarkupID()
			if id == "" {
				return fmt.Errorf("render: component markup id is required")
			}
			if _, exists := p.byID[id]; exists {
				return fmt.Errorf("%w: %q", ErrDuplicateComponent, id)
			}
			p.byID[id] = component
			p.logger.Debug("render: component added", "id", id, "type", fmt.Sprintf("%T", entry))
		} else {
			p.logger.Debug("render: script added", "type", fmt.Sprintf("%T", entry))
		}
		p.entries = append(p.entries, entry)
	}
	return nil
}

// Markup renders the host element of the component registered under id.
func (p *Page) Markup(id string) (string, error) {
	component, ok := p.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrComponentNotFound, id)
	}
	out, err := component.Markup(p.renderer)
	if err != nil {
		return "", fmt.Errorf("render: markup %q: %w", id, err)
	}
	return out, nil
}

// Statements returns every entry's script in registration order. Identical
// statements are emitted once, so a data source shared by two widgets may be
// added by both.
func (p *Page) Statements() ([]string, error) {
	seen := make(map[string]struct{}, len(p.entries))
	out := make([]string, 0, len(p.entries))
	for _, entry := range p.entries {
		statement, err := entry.Script()
		if err != nil {
			return nil, fmt.Errorf("render: script %T: %w", entry, err)
		}
		if _, dup := seen[statement]; dup {
			p.logger.Debug("render: duplicate script skipped", "type", fmt.Sprintf("%T", entry))
			continue
		}
		seen[statement] = struct{}{}
		out = append(out, statement)
	}
	return out, nil
}

// Scripts renders the statements through ScriptsTemplate as one script
// element, "" when the page has none.
func (p *Page) Scripts() (string, error) {
	statements, err := p.Statements()
	if err != nil {
		return "", err
	}
	block, err := p.renderer.RenderTemplate(ScriptsTemplate, map[string]any{
		"scripts": statements,
	})
	if err != nil {
		return "", fmt.Errorf("render: scripts: %w", err)
	}
	return block, nil
}

// Render renders every component's markup followed by the script block
// through PageTemplate.
func (p *Page) Render(out ...io.Writer) (string, error) {
	markup := make([]string, 0, len(p.byID))
	for _, entry := range p.entries {
		component, ok := entry.(Component)
		if !ok {
			continue
		}
		html, err := p.Markup(component.MarkupID())
		if err != nil {
			return "", err
		}
		markup = append(markup, html)
	}

	scripts, err := p.Scripts()
	if err != nil {
		return "", err
	}

	rendered, err := p.renderer.RenderTemplate(PageTemplate, map[string]any{
		"markup":  markup,
		"scripts": scripts,
	}, out...)
	if err != nil {
		return "", fmt.Errorf("render: page: %w", err)
	}
	p.logger.Debug("render: page rendered", "components", len(markup), "entries", len(p.entries))
	return rendered, nil
}
