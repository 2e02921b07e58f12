package infer

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-schemex/pkg/schema"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRe      = regexp.MustCompile(`^https?://[^\s]+$`)
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
	uuidRe     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	phoneStrip = regexp.MustCompile(`[\s\-().+]`)
	digitsRe   = regexp.MustCompile(`^\d+$`)
)

// detectFormat classifies a string value against the built-in formats in
// fixed priority order. Returns the empty string when nothing matches.
func detectFormat(value string) string {
	switch {
	case emailRe.MatchString(value):
		return schema.FormatEmail
	case urlRe.MatchString(value):
		return schema.FormatURL
	case dateRe.MatchString(value):
		return schema.FormatDate
	case dateTimeRe.MatchString(value):
		return schema.FormatDateTime
	case uuidRe.MatchString(value):
		return schema.FormatUUID
	case isPhone(value):
		return schema.FormatPhone
	}
	return ""
}

// isPhone accepts digit-heavy strings with at least ten digits once common
// separators are stripped.
func isPhone(value string) bool {
	stripped := phoneStrip.ReplaceAllString(value, "")
	return len(stripped) >= 10 && digitsRe.MatchString(stripped)
}

// namedPattern is one entry of the optional pattern-detection library.
type namedPattern struct {
	name string
	re   *regexp.Regexp
}

// Tested in declaration order; the first match wins and its source string is
// attached to the schema as Pattern.
var patternLibrary = []namedPattern{
	{name: "id", re: regexp.MustCompile(`^[A-Z]{2,5}-\d+$`)},
	{name: "slug", re: regexp.MustCompile(`^[a-z0-9]{8,}$`)},
	{name: "currency", re: regexp.MustCompile(`^[A-Z]{3}$`)},
	{name: "zip", re: regexp.MustCompile(`^\d{5}(-\d{4})?$`)},
}

// detectPattern returns the source of the first library pattern matching the
// value, or the empty string.
func detectPattern(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	for _, entry := range patternLibrary {
		if entry.re.MatchString(trimmed) {
			return entry.re.String()
		}
	}
	return ""
}
