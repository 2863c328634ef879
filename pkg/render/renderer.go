package render

import (
	"github.com/goliatone/go-kendo/pkg/render/template"
)

// Scripter emits one client statement.
type Scripter interface {
	Script() (string, error)
}

// Component is a widget bound to a markup element. Markup renders the host
// element through the page's template engine.
type Component interface {
	Scripter
	MarkupID() string
	Markup(tpl template.TemplateRenderer) (string, error)
}
