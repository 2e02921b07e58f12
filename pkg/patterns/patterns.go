// Package patterns supplies the reusable recognizers the source extractor
// scans with: markup field elements, hook-based field registration, request
// calls, validation attributes, and the field-name type inference table.
// Every recognizer is pure data; a Set is safe to share across goroutines.
package patterns

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// Default custom field-component tags recognised alongside raw markup
// elements. Host applications extend the list through overrides.
var defaultCustomTags = []string{
	"Input", "TextField", "FormField", "Select", "Checkbox", "RadioGroup", "DatePicker",
}

// NameRule maps name fragments to a field type. Rules apply case-insensitive,
// in priority order, first match wins.
type NameRule struct {
	Fragments []string
	Type      schema.FieldType
}

var defaultNameRules = []NameRule{
	{Fragments: []string{"email"}, Type: schema.FieldTypeEmail},
	{Fragments: []string{"password"}, Type: schema.FieldTypePassword},
	{Fragments: []string{"is", "has", "can", "enabled", "active"}, Type: schema.FieldTypeCheckbox},
	{Fragments: []string{"date", "dob", "created", "expires"}, Type: schema.FieldTypeDate},
	{Fragments: []string{"age", "amount", "count", "price", "score", "rating"}, Type: schema.FieldTypeNumber},
}

// Validation attribute names read off markup field elements.
const (
	AttrRequired  = "required"
	AttrPattern   = "pattern"
	AttrMinLength = "minlength"
	AttrMaxLength = "maxlength"
	AttrMin       = "min"
	AttrMax       = "max"
)

// SchemaDSLValidators names the external schema-builder DSL call chains the
// library recognises but does not interpret. Reserved for future extension.
var SchemaDSLValidators = []string{"yup", "zod"}

// Set is a compiled pattern library. Construct with Default and extend with
// WithOverrides; all methods are read-only after construction.
type Set struct {
	customTags []string
	nameRules  []NameRule

	markupField     *regexp.Regexp
	customComponent *regexp.Regexp
	attribute       *regexp.Regexp
	hookCall        *regexp.Regexp
	requestCall     *regexp.Regexp
	memberCall      *regexp.Regexp
	option          *regexp.Regexp
}

// Default returns the built-in pattern set.
func Default() *Set {
	s := &Set{
		customTags: append([]string(nil), defaultCustomTags...),
		nameRules:  append([]NameRule(nil), defaultNameRules...),
	}
	s.compile()
	return s
}

func (s *Set) compile() {
	// Attribute text excludes angle brackets so an unterminated tag cannot
	// swallow the rest of the document; the malformed construct is skipped.
	s.markupField = regexp.MustCompile(`(?s)<(input|textarea|select)\b([^<>]*?)/?>`)
	s.customComponent = regexp.MustCompile(`(?s)<(` + strings.Join(quoteAll(s.customTags), "|") + `)\b([^<>]*?)/?>`)

	// Attribute forms: name="v", name='v', name={"v"}, name={'v'}, name={3},
	// and the bare boolean flag.
	s.attribute = regexp.MustCompile(`([A-Za-z-]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|\{\s*"([^"]*)"\s*\}|\{\s*'([^']*)'\s*\}|\{\s*([^{}]*?)\s*\}))?`)

	// register('name') and register('name', { flags }).
	s.hookCall = regexp.MustCompile(`(?s)\bregister\s*\(\s*(?:"([^"]+)"|'([^']+)')\s*(?:,\s*\{(.*?)\}\s*)?\)`)

	// fetch(url, { options }) and axios(url, { options }) with literal URLs.
	s.requestCall = regexp.MustCompile(`(?s)\b(?:fetch|axios)\s*\(\s*(?:"([^"]+)"|'([^']+)')\s*(?:,\s*(\{.*?\})\s*)?\)`)

	// Namespaced method family: client.get('/url'), axios.post("/url", ...).
	s.memberCall = regexp.MustCompile(`\b[A-Za-z_$][\w$]*\.(get|post|put|delete|patch)\s*\(\s*(?:"([^"]+)"|'([^']+)')`)

	s.option = regexp.MustCompile(`(?s)<option\b([^<>]*?)>([^<>]*?)</option>`)
}

// MarkupField matches raw input/textarea/select open tags. Group 1 is the tag
// name, group 2 the attribute text.
func (s *Set) MarkupField() *regexp.Regexp { return s.markupField }

// CustomComponent matches the configured custom field-component tags. Same
// group layout as MarkupField.
func (s *Set) CustomComponent() *regexp.Regexp { return s.customComponent }

// Attribute matches one attribute inside a tag's attribute text. Group 1 is
// the attribute name; groups 2-6 carry the value depending on the syntactic
// form, all empty for bare flags.
func (s *Set) Attribute() *regexp.Regexp { return s.attribute }

// HookCall matches hook-based field registration with a literal name.
// Groups 1/2 carry the field name, group 3 the optional rule-flag body.
func (s *Set) HookCall() *regexp.Regexp { return s.hookCall }

// RequestCall matches the generic two-argument request form with a literal
// URL. Groups 1/2 carry the URL, group 3 the optional options object text.
func (s *Set) RequestCall() *regexp.Regexp { return s.requestCall }

// MemberCall matches the namespaced request-method family. Group 1 is the
// method name, groups 2/3 the literal URL.
func (s *Set) MemberCall() *regexp.Regexp { return s.memberCall }

// Option matches <option> elements inside a select body. Group 1 is the
// attribute text, group 2 the label.
func (s *Set) Option() *regexp.Regexp { return s.option }

// CustomTags returns the recognised custom component tag names.
func (s *Set) CustomTags() []string {
	return append([]string(nil), s.customTags...)
}

// FieldTypeForName infers a field type from the field's name using the
// fragment table. Returns text when no rule matches.
func (s *Set) FieldTypeForName(name string) schema.FieldType {
	lowered := strings.ToLower(name)
	for _, rule := range s.nameRules {
		for _, fragment := range rule.Fragments {
			if strings.Contains(lowered, fragment) {
				return rule.Type
			}
		}
	}
	return schema.FieldTypeText
}

func quoteAll(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, regexp.QuoteMeta(tag))
	}
	return out
}
