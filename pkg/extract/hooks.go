package extract

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-schemex/pkg/schema"
)

var (
	requiredFlagRe = regexp.MustCompile(`\brequired\s*:\s*true\b`)
	patternFlagRe  = regexp.MustCompile(`\bpattern\s*:\s*/((?:[^/\\\n]|\\.)+)/`)
)

// scanHooks collects fields registered through hook calls. Only literal
// field names are supported; dynamic names are skipped. Rule flags other
// than required and pattern are ignored.
func (e *extractor) scanHooks(source string) []schema.FormField {
	var fields []schema.FormField
	for _, match := range e.patterns.HookCall().FindAllStringSubmatch(source, -1) {
		name := match[1]
		if name == "" {
			name = match[2]
		}
		if name == "" {
			continue
		}
		fields = append(fields, schema.FormField{
			Name:       name,
			Type:       e.patterns.FieldTypeForName(name),
			Validation: validationFromFlags(name, match[3]),
		})
	}
	return fields
}

// validationFromFlags inspects a registration options object for the
// required boolean flag and a pattern regex literal. Required wins when both
// are present, mirroring the attribute matching order.
func validationFromFlags(name, flags string) *schema.ValidationRule {
	if flags == "" {
		return nil
	}
	if requiredFlagRe.MatchString(flags) {
		return &schema.ValidationRule{
			Field:  name,
			Type:   schema.RuleRequired,
			Config: schema.RuleConfig{Message: fmt.Sprintf("%s is required", name)},
		}
	}
	if match := patternFlagRe.FindStringSubmatch(flags); match != nil {
		return &schema.ValidationRule{
			Field: name,
			Type:  schema.RulePattern,
			Config: schema.RuleConfig{
				Pattern: match[1],
				Message: fmt.Sprintf("%s format is invalid", name),
			},
		}
	}
	return nil
}
