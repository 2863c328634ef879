package render

import "errors"

var (
	// ErrDuplicateComponent is returned when two components claim the same
	// markup id on a page.
	ErrDuplicateComponent = errors.New("render: duplicate component")
	// ErrComponentNotFound is returned by Page.Markup for an unknown id.
	ErrComponentNotFound = errors.New("render: component not found")
)
