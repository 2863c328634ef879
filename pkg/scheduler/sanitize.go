package scheduler

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	templatePolicyOnce sync.Once
	templatePolicy     *bluemonday.Policy

	// Kendo template blocks: #= expr #, #: expr # and # code #.
	templateExpr = regexp.MustCompile(`#[^#]*#`)
)

const exprPlaceholder = "kendoexpr%dkendoexpr"

// sanitizeTemplate strips everything but inline formatting markup from a
// client template. Template expressions are lifted out before sanitising so
// their quotes and operators survive untouched.
func sanitizeTemplate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	var exprs []string
	lifted := templateExpr.ReplaceAllStringFunc(trimmed, func(match string) string {
		exprs = append(exprs, match)
		return fmt.Sprintf(exprPlaceholder, len(exprs)-1)
	})

	cleaned := strings.TrimSpace(templateSanitizer().Sanitize(lifted))
	for idx, expr := range exprs {
		cleaned = strings.Replace(cleaned, fmt.Sprintf(exprPlaceholder, idx), expr, 1)
	}
	return cleaned
}

func templateSanitizer() *bluemonday.Policy {
	templatePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "u", "small", "span", "br", "sup", "sub")
		policy.AllowAttrs("class").OnElements("span", "strong", "em", "small")
		templatePolicy = policy
	})
	return templatePolicy
}
