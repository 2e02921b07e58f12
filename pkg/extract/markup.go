package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// attrSet is the parsed attribute text of one element: lowercase attribute
// name to literal value, with bare flags mapped to the empty string.
type attrSet map[string]string

func (a attrSet) has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a attrSet) get(name string) string {
	return a[name]
}

// scanMarkup collects fields from raw input/textarea/select elements.
// Elements without a name attribute are skipped, not defaulted.
func (e *extractor) scanMarkup(source string) []schema.FormField {
	var fields []schema.FormField
	for _, match := range e.patterns.MarkupField().FindAllStringSubmatchIndex(source, -1) {
		tag := source[match[2]:match[3]]
		attrs := e.parseAttributes(source[match[4]:match[5]])
		name := attrs.get("name")
		if name == "" {
			continue
		}

		field := schema.FormField{
			Name:        name,
			Type:        markupFieldType(tag, attrs),
			Label:       sanitizeText(attrs.get("label")),
			Placeholder: sanitizeText(attrs.get("placeholder")),
			Validation:  validationFromAttrs(name, attrs),
		}
		if tag == "select" {
			field.Options = e.scanOptions(source[match[1]:])
		}
		fields = append(fields, field)
	}
	return fields
}

// scanCustomComponents applies the markup attribute mapping to the closed
// list of custom field-component tags.
func (e *extractor) scanCustomComponents(source string) []schema.FormField {
	var fields []schema.FormField
	for _, match := range e.patterns.CustomComponent().FindAllStringSubmatch(source, -1) {
		tag, attrText := match[1], match[2]
		attrs := e.parseAttributes(attrText)
		name := attrs.get("name")
		if name == "" {
			continue
		}
		fields = append(fields, schema.FormField{
			Name:        name,
			Type:        e.customComponentType(tag, name, attrs),
			Label:       sanitizeText(attrs.get("label")),
			Placeholder: sanitizeText(attrs.get("placeholder")),
			Validation:  validationFromAttrs(name, attrs),
		})
	}
	return fields
}

// scanOptions reads <option> children up to the closing select tag.
func (e *extractor) scanOptions(rest string) []schema.FieldOption {
	end := strings.Index(rest, "</select>")
	if end < 0 {
		return nil
	}
	var options []schema.FieldOption
	for _, match := range e.patterns.Option().FindAllStringSubmatch(rest[:end], -1) {
		attrs := e.parseAttributes(match[1])
		label := sanitizeText(strings.TrimSpace(match[2]))
		value := attrs.get("value")
		if value == "" {
			value = label
		}
		if value == "" {
			continue
		}
		if label == "" {
			label = value
		}
		options = append(options, schema.FieldOption{Label: label, Value: value})
	}
	return options
}

// parseAttributes handles the literal string, JSX-expression-wrapped string,
// numeric, and bare-flag attribute forms.
func (e *extractor) parseAttributes(attrText string) attrSet {
	attrs := make(attrSet)
	for _, match := range e.patterns.Attribute().FindAllStringSubmatch(attrText, -1) {
		name := strings.ToLower(match[1])
		if _, seen := attrs[name]; seen {
			continue
		}
		value := ""
		for _, group := range match[2:] {
			if group != "" {
				value = group
				break
			}
		}
		attrs[name] = strings.TrimSpace(value)
	}
	return attrs
}

func markupFieldType(tag string, attrs attrSet) schema.FieldType {
	switch tag {
	case "textarea":
		return schema.FieldTypeTextarea
	case "select":
		return schema.FieldTypeSelect
	}
	switch attrs.get("type") {
	case "email":
		return schema.FieldTypeEmail
	case "password":
		return schema.FieldTypePassword
	case "number":
		return schema.FieldTypeNumber
	case "date":
		return schema.FieldTypeDate
	case "checkbox":
		return schema.FieldTypeCheckbox
	case "radio":
		return schema.FieldTypeRadio
	}
	return schema.FieldTypeText
}

func (e *extractor) customComponentType(tag, name string, attrs attrSet) schema.FieldType {
	switch tag {
	case "Select":
		return schema.FieldTypeSelect
	case "Checkbox":
		return schema.FieldTypeCheckbox
	case "RadioGroup":
		return schema.FieldTypeRadio
	case "DatePicker":
		return schema.FieldTypeDate
	}
	if explicit := markupFieldType("", attrs); explicit != schema.FieldTypeText || attrs.get("type") == "text" {
		return explicit
	}
	return e.patterns.FieldTypeForName(name)
}

// validationFromAttrs maps native validation attributes to at most one rule.
// The matching order is fixed: required, then pattern, then length, then
// range. This is an ordering, not a merge.
func validationFromAttrs(name string, attrs attrSet) *schema.ValidationRule {
	if attrs.has("required") && attrs.get("required") != "false" {
		return &schema.ValidationRule{
			Field:  name,
			Type:   schema.RuleRequired,
			Config: schema.RuleConfig{Message: fmt.Sprintf("%s is required", name)},
		}
	}
	if pattern := attrs.get("pattern"); pattern != "" {
		return &schema.ValidationRule{
			Field: name,
			Type:  schema.RulePattern,
			Config: schema.RuleConfig{
				Pattern: pattern,
				Message: fmt.Sprintf("%s format is invalid", name),
			},
		}
	}
	if attrs.has("minlength") || attrs.has("maxlength") {
		config := schema.RuleConfig{Message: fmt.Sprintf("%s length is out of bounds", name)}
		config.Min = parseBound(attrs.get("minlength"))
		config.Max = parseBound(attrs.get("maxlength"))
		if config.Min != nil || config.Max != nil {
			return &schema.ValidationRule{Field: name, Type: schema.RuleLength, Config: config}
		}
	}
	if attrs.has("min") || attrs.has("max") {
		config := schema.RuleConfig{Message: fmt.Sprintf("%s is out of range", name)}
		config.Min = parseBound(attrs.get("min"))
		config.Max = parseBound(attrs.get("max"))
		if config.Min != nil || config.Max != nil {
			return &schema.ValidationRule{Field: name, Type: schema.RuleRange, Config: config}
		}
	}
	return nil
}

func parseBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
