package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

// Template names resolved against TemplatesFS.
const (
	InputTemplate     = "templates/input"
	SchedulerTemplate = "templates/scheduler"
	PageTemplate      = "templates/page"
	ScriptsTemplate   = "templates/scripts"
)

// TemplatesFS exposes the built-in markup templates. Hosts overriding a
// template pass their own fs.FS through WithTemplatesFS using the same paths.
func TemplatesFS() fs.FS {
	return templatesFS
}
