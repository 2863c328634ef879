// Package template defines the template seam component markup is rendered
// through. The pongo2-backed implementation lives in the gotemplate
// subpackage; tests and hosts with their own engine can supply another.
package template
