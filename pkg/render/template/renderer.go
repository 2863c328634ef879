package template

import (
	"io"
)

// TemplateRenderer renders named templates from the engine's template set, or
// inline template content. Rendered output is returned and also written to
// every supplied writer.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
