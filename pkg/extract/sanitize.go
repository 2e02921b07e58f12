package extract

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips any markup from user-facing text pulled out of
// component source. Component text is untrusted input in the host editors;
// labels and placeholders must come out as plain text.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	cleaned := textPolicy.Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
