package validate

import (
	"regexp"

	"github.com/goliatone/go-schemex/pkg/schema"
)

var formatChecks = map[string]*regexp.Regexp{
	schema.FormatEmail:    regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	schema.FormatURL:      regexp.MustCompile(`^https?://[^\s]+$`),
	schema.FormatDate:     regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	schema.FormatTime:     regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`),
	schema.FormatDateTime: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`),
	schema.FormatUUID:     regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
}

// formatMatches applies the built-in format checks. Formats without a
// built-in check (including the inferer's phone format) pass trivially.
func formatMatches(format, value string) bool {
	re, ok := formatChecks[format]
	if !ok {
		return true
	}
	return re.MatchString(value)
}
