// Package script renders the two statement shapes Kendo UI widgets are started
// with. Both are wrapped in jQuery's document-ready callback so they run once,
// after the page's elements exist:
//
//	jQuery(function() { ds = new kendo.data.DataSource({ ... }); });
//	jQuery(function() { jQuery('#start').kendoTimePicker({ ... }); });
package script

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-kendo/pkg/options"
)

// ReadyWrapper is the init wrapper every statement is emitted in.
const ReadyWrapper = "jQuery"

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
	jsStringEscaper   = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
)

// ErrInvalidName reports a variable, constructor or method name that is not a
// dotted script identifier.
var ErrInvalidName = errors.New("script: invalid identifier")

// Construct renders `<wrapper>(function() { name = new kendo.<ctor>(opts); });`.
func Construct(name, ctor string, opts *options.Options) (string, error) {
	if err := checkIdentifier("variable", name); err != nil {
		return "", err
	}
	if err := checkIdentifier("constructor", ctor); err != nil {
		return "", err
	}
	if err := opts.Err(); err != nil {
		return "", fmt.Errorf("script: %s: %w", name, err)
	}
	return fmt.Sprintf("%s(function() { %s = new kendo.%s(%s); });", ReadyWrapper, name, ctor, render(opts)), nil
}

// Enhance renders `<wrapper>(function() { jQuery('#id').<method>(opts); });`.
func Enhance(markupID, method string, opts *options.Options) (string, error) {
	if strings.TrimSpace(markupID) == "" {
		return "", errors.New("script: markup id is required")
	}
	selector, err := idSelector(markupID)
	if err != nil {
		return "", err
	}
	if err := checkIdentifier("method", method); err != nil {
		return "", err
	}
	if err := opts.Err(); err != nil {
		return "", fmt.Errorf("script: #%s: %w", markupID, err)
	}
	return fmt.Sprintf("%s(function() { %s('#%s').%s(%s); });", ReadyWrapper, ReadyWrapper, selector, method, render(opts)), nil
}

// idSelector returns markupID escaped for an '#id' selector as the body of a single
// quoted script string. Selector syntax characters are escaped the way
// jQuery.escapeSelector does; '<' and control characters are rejected so the
// statement cannot close its script element.
func idSelector(markupID string) (string, error) {
	if markupID == "-" {
		return `\\-`, nil
	}
	var css strings.Builder
	for idx, r := range markupID {
		switch {
		case r == '<' || r < 0x20 || r == 0x7f || r == 0x2028 || r == 0x2029:
			return "", fmt.Errorf("%w: markup id %q", ErrInvalidName, markupID)
		case r >= 0x80, r == '_', r == '-',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			css.WriteRune(r)
		case r >= '0' && r <= '9':
			if idx == 0 || (idx == 1 && markupID[0] == '-') {
				fmt.Fprintf(&css, "\\%x ", r)
				continue
			}
			css.WriteRune(r)
		default:
			css.WriteByte('\\')
			css.WriteRune(r)
		}
	}
	return jsStringEscaper.Replace(css.String()), nil
}

func render(opts *options.Options) string {
	if opts == nil {
		return options.New().String()
	}
	return opts.String()
}

func checkIdentifier(role, name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidName, role, name)
	}
	return nil
}
