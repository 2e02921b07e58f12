package patterns

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// Overrides extends the default pattern set without replacing it: custom
// component tags append to the built-in list, name rules take priority over
// the built-in table.
type Overrides struct {
	CustomComponents []string      `yaml:"customComponents"`
	NameRules        []NameRuleDoc `yaml:"nameRules"`
}

// NameRuleDoc is the YAML form of a NameRule.
type NameRuleDoc struct {
	Type      string   `yaml:"type"`
	Fragments []string `yaml:"fragments"`
}

var fieldTypeLookup = map[string]schema.FieldType{
	"text":     schema.FieldTypeText,
	"email":    schema.FieldTypeEmail,
	"password": schema.FieldTypePassword,
	"number":   schema.FieldTypeNumber,
	"date":     schema.FieldTypeDate,
	"select":   schema.FieldTypeSelect,
	"checkbox": schema.FieldTypeCheckbox,
	"radio":    schema.FieldTypeRadio,
	"textarea": schema.FieldTypeTextarea,
}

// ParseOverrides decodes a YAML override document.
func ParseOverrides(raw []byte) (Overrides, error) {
	var doc Overrides
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Overrides{}, fmt.Errorf("patterns: parse overrides: %w", err)
	}
	for _, rule := range doc.NameRules {
		if _, ok := fieldTypeLookup[strings.ToLower(strings.TrimSpace(rule.Type))]; !ok {
			return Overrides{}, fmt.Errorf("patterns: override rule has unknown field type %q", rule.Type)
		}
		if len(rule.Fragments) == 0 {
			return Overrides{}, fmt.Errorf("patterns: override rule for %q has no fragments", rule.Type)
		}
	}
	return doc, nil
}

// WithOverrides returns a new Set combining the receiver with the supplied
// overrides. The receiver is not modified.
func (s *Set) WithOverrides(o Overrides) *Set {
	next := &Set{
		customTags: append([]string(nil), s.customTags...),
		nameRules:  make([]NameRule, 0, len(o.NameRules)+len(s.nameRules)),
	}
	for _, tag := range o.CustomComponents {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || contains(next.customTags, trimmed) {
			continue
		}
		next.customTags = append(next.customTags, trimmed)
	}
	// Override rules run before the defaults so hosts can reclassify names.
	for _, rule := range o.NameRules {
		next.nameRules = append(next.nameRules, NameRule{
			Fragments: append([]string(nil), rule.Fragments...),
			Type:      fieldTypeLookup[strings.ToLower(strings.TrimSpace(rule.Type))],
		})
	}
	next.nameRules = append(next.nameRules, s.nameRules...)
	next.compile()
	return next
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
