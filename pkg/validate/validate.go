// Package validate checks arbitrary data against a data schema and reports
// every violation, not just the first. Validation never panics and never
// returns an error: a violation is the normal, expected outcome, and any
// internal inconsistency (such as a malformed pattern) fails closed as a
// reported violation on that single check.
package validate

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// Violation kinds reported in Violation.Type.
const (
	KindRequired   = "required"
	KindType       = "type"
	KindPattern    = "pattern"
	KindMinLength  = "minLength"
	KindMaxLength  = "maxLength"
	KindFormat     = "format"
	KindMinimum    = "minimum"
	KindMaximum    = "maximum"
	KindEnum       = "enum"
	KindAdditional = "additional"
	KindLength     = "length"
	KindRange      = "range"
	KindCustom     = "custom"
)

// Violation is one failed check, addressed by field path.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Result is the outcome of one validation pass.
type Result struct {
	Valid  bool        `json:"valid"`
	Errors []Violation `json:"errors"`
}

// Validate checks data against the schema. The data is expected to be an
// object (map); anything else reports a single root type violation.
func Validate(data any, ds *schema.DataSchema) Result {
	var errs []Violation
	if ds == nil {
		return Result{Valid: true, Errors: []Violation{}}
	}

	object, ok := asObject(data)
	if !ok {
		errs = append(errs, Violation{
			Field:   "",
			Message: "expected an object",
			Type:    KindType,
		})
		return result(errs)
	}

	for _, name := range ds.Required {
		if value, present := object[name]; !present || value == nil {
			errs = append(errs, Violation{
				Field:   name,
				Message: fmt.Sprintf("%s is required", name),
				Type:    KindRequired,
			})
		}
	}

	for name, prop := range ds.Properties {
		value, present := object[name]
		if !present || value == nil {
			continue
		}
		errs = append(errs, checkProperty(name, value, prop)...)
	}

	if ds.AdditionalProperties != nil && !*ds.AdditionalProperties {
		for name := range object {
			if _, declared := ds.Properties[name]; !declared {
				errs = append(errs, Violation{
					Field:   name,
					Message: fmt.Sprintf("%s is not a declared property", name),
					Type:    KindAdditional,
				})
			}
		}
	}

	return result(errs)
}

// checkProperty validates one present value. The type check runs first; on a
// type mismatch no further checks cascade for that property.
func checkProperty(path string, value any, prop schema.PropertySchema) []Violation {
	var errs []Violation

	if !typeMatches(value, prop.Type) {
		return []Violation{{
			Field:   path,
			Message: fmt.Sprintf("%s must be of type %s", path, prop.Type),
			Type:    KindType,
		}}
	}

	switch prop.Type {
	case schema.TypeString:
		errs = append(errs, checkString(path, value.(string), prop)...)
	case schema.TypeNumber:
		errs = append(errs, checkNumber(path, numberValue(value), prop)...)
	case schema.TypeArray:
		errs = append(errs, checkArray(path, value, prop)...)
	case schema.TypeObject:
		errs = append(errs, checkObject(path, value, prop)...)
	}

	if len(prop.Enum) > 0 && !enumContains(prop.Enum, value) {
		errs = append(errs, Violation{
			Field:   path,
			Message: fmt.Sprintf("%s must be one of the allowed values", path),
			Type:    KindEnum,
		})
	}

	if prop.Validation != nil {
		errs = append(errs, checkRule(path, value, *prop.Validation)...)
	}

	return errs
}

func checkString(path, value string, prop schema.PropertySchema) []Violation {
	var errs []Violation
	if prop.Pattern != "" {
		re, err := regexp.Compile(prop.Pattern)
		if err != nil || !re.MatchString(value) {
			// A pattern that does not compile fails closed.
			errs = append(errs, Violation{
				Field:   path,
				Message: fmt.Sprintf("%s does not match the expected pattern", path),
				Type:    KindPattern,
			})
		}
	}
	if prop.MinLength != nil && len(value) < *prop.MinLength {
		errs = append(errs, Violation{
			Field:   path,
			Message: fmt.Sprintf("%s must be at least %d characters", path, *prop.MinLength),
			Type:    KindMinLength,
		})
	}
	if prop.MaxLength != nil && len(value) > *prop.MaxLength {
		errs = append(errs, Violation{
			Field:   path,
			Message: fmt.Sprintf("%s must be at most %d characters", path, *prop.MaxLength),
			Type:    KindMaxLength,
		})
	}
	if prop.Format != "" && !formatMatches(prop.Format, value) {
		errs = append(errs, Violation{
			Field:   path,
			Message: fmt.Sprintf("%s must be a valid %s", path, prop.Format),
			Type:    KindFormat,
		})
	}
	return errs
}

func checkNumber(path string, value float64, prop schema.PropertySchema) []Violation {
	var errs []Violation
	if prop.Minimum != nil && value < *prop.Minimum {
		errs = append(errs, Violation{
			Field:   path,
			Message: fmt.Sprintf("%s must be at least %v", path, *prop.Minimum),
			Type:    KindMinimum,
		})
	}
	if prop.Maximum != nil && value > *prop.Maximum {
		errs = append(errs, Violation{
			Field:   path,
			Message: fmt.Sprintf("%s must be at most %v", path, *prop.Maximum),
			Type:    KindMaximum,
		})
	}
	return errs
}

func checkArray(path string, value any, prop schema.PropertySchema) []Violation {
	if prop.Items == nil {
		return nil
	}
	var errs []Violation
	for index, element := range asArray(value) {
		if element == nil {
			continue
		}
		errs = append(errs, checkProperty(fmt.Sprintf("%s[%d]", path, index), element, *prop.Items)...)
	}
	return errs
}

func checkObject(path string, value any, prop schema.PropertySchema) []Violation {
	object, _ := asObject(value)
	var errs []Violation

	for _, name := range prop.Required {
		if nested, present := object[name]; !present || nested == nil {
			errs = append(errs, Violation{
				Field:   path + "." + name,
				Message: fmt.Sprintf("%s.%s is required", path, name),
				Type:    KindRequired,
			})
		}
	}

	for name, nestedProp := range prop.Properties {
		nested, present := object[name]
		if !present || nested == nil {
			continue
		}
		errs = append(errs, checkProperty(path+"."+name, nested, nestedProp)...)
	}
	return errs
}

// checkRule evaluates the rule attached to a schema node. Pattern, length,
// and range rules duplicate the structural checks against the rule's own
// bounds; both layers may fire independently.
func checkRule(path string, value any, rule schema.ValidationRule) []Violation {
	message := rule.Config.Message
	switch rule.Type {
	case schema.RuleCustom:
		if rule.Config.Validator == nil {
			return nil
		}
		if !safePredicate(rule.Config.Validator, value) {
			if message == "" {
				message = fmt.Sprintf("%s failed custom validation", path)
			}
			return []Violation{{Field: path, Message: message, Type: KindCustom}}
		}
	case schema.RulePattern:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		re, err := regexp.Compile(rule.Config.Pattern)
		if err != nil || !re.MatchString(s) {
			if message == "" {
				message = fmt.Sprintf("%s does not match the expected pattern", path)
			}
			return []Violation{{Field: path, Message: message, Type: KindPattern}}
		}
	case schema.RuleLength:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		length := float64(len(s))
		if (rule.Config.Min != nil && length < *rule.Config.Min) ||
			(rule.Config.Max != nil && length > *rule.Config.Max) {
			if message == "" {
				message = fmt.Sprintf("%s length is out of bounds", path)
			}
			return []Violation{{Field: path, Message: message, Type: KindLength}}
		}
	case schema.RuleRange:
		if !typeMatches(value, schema.TypeNumber) {
			return nil
		}
		number := numberValue(value)
		if (rule.Config.Min != nil && number < *rule.Config.Min) ||
			(rule.Config.Max != nil && number > *rule.Config.Max) {
			if message == "" {
				message = fmt.Sprintf("%s is out of range", path)
			}
			return []Violation{{Field: path, Message: message, Type: KindRange}}
		}
	}
	return nil
}

func safePredicate(predicate func(any) bool, value any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return predicate(value)
}

func result(errs []Violation) Result {
	if errs == nil {
		errs = []Violation{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func typeMatches(value any, t schema.PropertyType) bool {
	switch t {
	case schema.TypeString:
		_, ok := value.(string)
		return ok
	case schema.TypeBoolean:
		_, ok := value.(bool)
		return ok
	case schema.TypeNumber:
		switch value.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		}
		return false
	case schema.TypeArray:
		if _, ok := value.([]any); ok {
			return true
		}
		kind := reflect.ValueOf(value).Kind()
		return kind == reflect.Slice || kind == reflect.Array
	case schema.TypeObject:
		_, ok := asObject(value)
		return ok
	}
	return false
}

func numberValue(value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

func asObject(value any) (map[string]any, bool) {
	if object, ok := value.(map[string]any); ok {
		return object, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	object := make(map[string]any, rv.Len())
	for _, key := range rv.MapKeys() {
		object[key.String()] = rv.MapIndex(key).Interface()
	}
	return object, true
}

func asArray(value any) []any {
	if list, ok := value.([]any); ok {
		return list
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func enumContains(enum []any, value any) bool {
	for _, candidate := range enum {
		if reflect.DeepEqual(candidate, value) {
			return true
		}
		// 2 and 2.0 compare equal the way the schema's own type model does.
		if typeMatches(candidate, schema.TypeNumber) && typeMatches(value, schema.TypeNumber) &&
			numberValue(candidate) == numberValue(value) {
			return true
		}
	}
	return false
}
