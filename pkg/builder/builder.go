// Package builder fuses extracted form fields and API calls into the unified
// data schema and renders its TypeScript and JSON-Schema views.
package builder

import (
	"sort"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// Build merges form-field descriptors and API request-body shapes into one
// data schema. Form-field-derived properties always win on key conflicts;
// API-derived shapes only contribute keys the form did not declare.
func Build(fields []schema.FormField, calls []schema.APICall) *schema.DataSchema {
	out := &schema.DataSchema{
		Type:       schema.TypeObject,
		Properties: make(map[string]schema.PropertySchema, len(fields)),
	}

	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		if _, exists := out.Properties[field.Name]; exists {
			continue
		}
		out.Properties[field.Name] = FieldToPropertySchema(field)
		if field.Validation != nil && field.Validation.Type == schema.RuleRequired {
			out.Required = append(out.Required, field.Name)
		}
	}

	for _, call := range calls {
		mergeRequestBody(out, call.RequestBody)
	}

	return out
}

// FieldToPropertySchema maps one form field onto a schema node using the
// fixed field-type table, copying bounds and patterns from any attached rule.
func FieldToPropertySchema(field schema.FormField) schema.PropertySchema {
	var prop schema.PropertySchema
	switch field.Type {
	case schema.FieldTypeNumber:
		prop = schema.PropertySchema{Type: schema.TypeNumber}
	case schema.FieldTypeCheckbox:
		prop = schema.PropertySchema{Type: schema.TypeBoolean}
	case schema.FieldTypeEmail:
		prop = schema.PropertySchema{Type: schema.TypeString, Format: schema.FormatEmail}
	case schema.FieldTypeDate:
		prop = schema.PropertySchema{Type: schema.TypeString, Format: schema.FormatDate}
	case schema.FieldTypeSelect:
		prop = schema.PropertySchema{Type: schema.TypeString}
		if len(field.Options) > 0 {
			for _, option := range field.Options {
				prop.Enum = append(prop.Enum, option.Value)
			}
		}
	default:
		prop = schema.PropertySchema{Type: schema.TypeString}
	}

	if rule := field.Validation; rule != nil {
		applyRule(&prop, *rule)
		attached := rule.Clone()
		prop.Validation = &attached
	}
	return prop
}

func applyRule(prop *schema.PropertySchema, rule schema.ValidationRule) {
	switch rule.Type {
	case schema.RulePattern:
		if prop.Type == schema.TypeString {
			prop.Pattern = rule.Config.Pattern
		}
	case schema.RuleLength:
		if prop.Type != schema.TypeString {
			return
		}
		if rule.Config.Min != nil {
			value := int(*rule.Config.Min)
			prop.MinLength = &value
		}
		if rule.Config.Max != nil {
			value := int(*rule.Config.Max)
			prop.MaxLength = &value
		}
	case schema.RuleRange:
		if prop.Type != schema.TypeNumber {
			return
		}
		if rule.Config.Min != nil {
			value := *rule.Config.Min
			prop.Minimum = &value
		}
		if rule.Config.Max != nil {
			value := *rule.Config.Max
			prop.Maximum = &value
		}
	}
}

// mergeRequestBody adds one level of request-body keys to the schema. The
// mapping is intentionally shallower than the general inferer: each key takes
// its immediate value type, nothing recurses.
func mergeRequestBody(out *schema.DataSchema, body any) {
	object, ok := body.(map[string]any)
	if !ok || len(object) == 0 {
		return
	}
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, exists := out.Properties[key]; exists {
			continue
		}
		out.Properties[key] = shallowSchema(object[key])
	}
}

func shallowSchema(value any) schema.PropertySchema {
	switch value.(type) {
	case bool:
		return schema.PropertySchema{Type: schema.TypeBoolean}
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return schema.PropertySchema{Type: schema.TypeNumber}
	case []any:
		return schema.PropertySchema{Type: schema.TypeArray}
	case map[string]any:
		return schema.PropertySchema{Type: schema.TypeObject}
	default:
		return schema.PropertySchema{Type: schema.TypeString}
	}
}
