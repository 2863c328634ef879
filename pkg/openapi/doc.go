// Package openapi discovers date and time fields in OpenAPI documents and
// binds each one to a picker kind and a wire-format pattern, so request
// schemas can drive form field construction.
package openapi
