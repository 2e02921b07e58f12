package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemex/pkg/schema"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func violationTypes(result Result) []string {
	types := make([]string, 0, len(result.Errors))
	for _, violation := range result.Errors {
		types = append(types, violation.Type)
	}
	return types
}

func TestValidate_RequiredMissing(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"name":  {Type: schema.TypeString},
			"email": {Type: schema.TypeString, Format: schema.FormatEmail},
		},
		Required: []string{"name", "email"},
	}

	result := Validate(map[string]any{"name": "John"}, ds)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	want := []Violation{{Field: "email", Message: "email is required", Type: KindRequired}}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_NilValueCountsAsMissing(t *testing.T) {
	ds := &schema.DataSchema{
		Type:       schema.TypeObject,
		Properties: map[string]schema.PropertySchema{"name": {Type: schema.TypeString}},
		Required:   []string{"name"},
	}

	result := Validate(map[string]any{"name": nil}, ds)
	if result.Valid || result.Errors[0].Type != KindRequired {
		t.Fatalf("expected required violation for nil value, got %+v", result)
	}
}

func TestValidate_NonObjectRoot(t *testing.T) {
	ds := &schema.DataSchema{Type: schema.TypeObject}
	result := Validate("not an object", ds)
	if result.Valid || len(result.Errors) != 1 || result.Errors[0].Type != KindType {
		t.Fatalf("expected one root type violation, got %+v", result)
	}
}

func TestValidate_NilSchemaIsValid(t *testing.T) {
	result := Validate(map[string]any{"anything": true}, nil)
	if !result.Valid || result.Errors == nil {
		t.Fatalf("nil schema must validate with an empty error list, got %+v", result)
	}
}

func TestValidate_TypeMismatchShortCircuits(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"age": {Type: schema.TypeNumber, Minimum: floatPtr(18)},
		},
	}

	result := Validate(map[string]any{"age": "nineteen"}, ds)
	// Only the type violation: the minimum check must not cascade.
	if diff := cmp.Diff([]string{KindType}, violationTypes(result)); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_MinLengthBoundary(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"username": {Type: schema.TypeString, MinLength: intPtr(3)},
		},
	}

	if result := Validate(map[string]any{"username": "jo"}, ds); result.Valid {
		t.Fatal("length 2 must fail a minLength of 3")
	}
	if result := Validate(map[string]any{"username": "joe"}, ds); !result.Valid {
		t.Fatalf("length 3 must pass a minLength of 3, got %+v", result.Errors)
	}
}

func TestValidate_MaxLength(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"code": {Type: schema.TypeString, MaxLength: intPtr(4)},
		},
	}
	if result := Validate(map[string]any{"code": "abcde"}, ds); result.Valid || result.Errors[0].Type != KindMaxLength {
		t.Fatalf("expected maxLength violation, got %+v", result)
	}
}

func TestValidate_Formats(t *testing.T) {
	cases := []struct {
		format string
		good   string
		bad    string
	}{
		{schema.FormatEmail, "a@b.co", "not-an-email"},
		{schema.FormatURL, "https://example.com", "example.com"},
		{schema.FormatDate, "2024-01-15", "15/01/2024"},
		{schema.FormatTime, "14:30", "2pm"},
		{schema.FormatDateTime, "2024-01-15T10:30:00Z", "2024-01-15"},
		{schema.FormatUUID, "550e8400-e29b-41d4-a716-446655440000", "550e8400"},
	}

	for _, tc := range cases {
		ds := &schema.DataSchema{
			Type: schema.TypeObject,
			Properties: map[string]schema.PropertySchema{
				"v": {Type: schema.TypeString, Format: tc.format},
			},
		}
		if result := Validate(map[string]any{"v": tc.good}, ds); !result.Valid {
			t.Fatalf("%s: %q should pass, got %+v", tc.format, tc.good, result.Errors)
		}
		if result := Validate(map[string]any{"v": tc.bad}, ds); result.Valid {
			t.Fatalf("%s: %q should fail", tc.format, tc.bad)
		}
	}
}

func TestValidate_UnknownFormatPasses(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"phone": {Type: schema.TypeString, Format: schema.FormatPhone},
		},
	}
	if result := Validate(map[string]any{"phone": "whatever"}, ds); !result.Valid {
		t.Fatalf("formats without a check must pass, got %+v", result.Errors)
	}
}

func TestValidate_MalformedPatternFailsClosed(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"v": {Type: schema.TypeString, Pattern: "([unclosed"},
		},
	}
	result := Validate(map[string]any{"v": "anything"}, ds)
	if result.Valid || result.Errors[0].Type != KindPattern {
		t.Fatalf("malformed pattern must fail closed, got %+v", result)
	}
}

func TestValidate_NumberBoundaries(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"age": {Type: schema.TypeNumber, Minimum: floatPtr(18), Maximum: floatPtr(120)},
		},
	}

	if result := Validate(map[string]any{"age": 18}, ds); !result.Valid {
		t.Fatalf("boundary value must pass, got %+v", result.Errors)
	}
	if result := Validate(map[string]any{"age": 17.9}, ds); result.Valid || result.Errors[0].Type != KindMinimum {
		t.Fatalf("expected minimum violation, got %+v", result)
	}
	if result := Validate(map[string]any{"age": 121}, ds); result.Valid || result.Errors[0].Type != KindMaximum {
		t.Fatalf("expected maximum violation, got %+v", result)
	}
}

func TestValidate_Enum(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"role": {Type: schema.TypeString, Enum: []any{"admin", "user"}},
		},
	}
	if result := Validate(map[string]any{"role": "admin"}, ds); !result.Valid {
		t.Fatalf("allowed value must pass, got %+v", result.Errors)
	}
	if result := Validate(map[string]any{"role": "root"}, ds); result.Valid || result.Errors[0].Type != KindEnum {
		t.Fatalf("expected enum violation, got %+v", result)
	}
}

func TestValidate_EnumCrossNumeric(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"level": {Type: schema.TypeNumber, Enum: []any{float64(1), float64(2)}},
		},
	}
	if result := Validate(map[string]any{"level": 2}, ds); !result.Valid {
		t.Fatalf("int 2 must match float64 2 in the enum, got %+v", result.Errors)
	}
}

func TestValidate_ArrayElementPaths(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"scores": {
				Type:  schema.TypeArray,
				Items: &schema.PropertySchema{Type: schema.TypeNumber},
			},
		},
	}

	result := Validate(map[string]any{"scores": []any{float64(1), "two", float64(3)}}, ds)
	if result.Valid || len(result.Errors) != 1 {
		t.Fatalf("expected one violation, got %+v", result.Errors)
	}
	if result.Errors[0].Field != "scores[1]" {
		t.Fatalf("expected indexed path, got %q", result.Errors[0].Field)
	}
}

func TestValidate_NestedObjectRequired(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"addr": {
				Type: schema.TypeObject,
				Properties: map[string]schema.PropertySchema{
					"street": {Type: schema.TypeString},
					"city":   {Type: schema.TypeString},
				},
				Required: []string{"street"},
			},
		},
	}

	result := Validate(map[string]any{"addr": map[string]any{"city": "Lisbon"}}, ds)
	if result.Valid || result.Errors[0].Field != "addr.street" {
		t.Fatalf("expected addr.street required violation, got %+v", result)
	}
}

func TestValidate_AdditionalProperties(t *testing.T) {
	ds := &schema.DataSchema{
		Type:                 schema.TypeObject,
		Properties:           map[string]schema.PropertySchema{"name": {Type: schema.TypeString}},
		AdditionalProperties: boolPtr(false),
	}

	result := Validate(map[string]any{"name": "ok", "extra": 1}, ds)
	if result.Valid || result.Errors[0].Type != KindAdditional || result.Errors[0].Field != "extra" {
		t.Fatalf("expected additional-property violation, got %+v", result)
	}
}

func TestValidate_CustomRule(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"even": {
				Type: schema.TypeNumber,
				Validation: &schema.ValidationRule{
					Field: "even",
					Type:  schema.RuleCustom,
					Config: schema.RuleConfig{
						Validator: func(v any) bool { return int(v.(float64))%2 == 0 },
						Message:   "even must be divisible by two",
					},
				},
			},
		},
	}

	if result := Validate(map[string]any{"even": float64(4)}, ds); !result.Valid {
		t.Fatalf("4 should pass, got %+v", result.Errors)
	}
	result := Validate(map[string]any{"even": float64(3)}, ds)
	if result.Valid || result.Errors[0].Message != "even must be divisible by two" {
		t.Fatalf("expected the rule message, got %+v", result)
	}
}

func TestValidate_CustomRulePanicFailsClosed(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"v": {
				Type: schema.TypeString,
				Validation: &schema.ValidationRule{
					Field:  "v",
					Type:   schema.RuleCustom,
					Config: schema.RuleConfig{Validator: func(v any) bool { panic("boom") }},
				},
			},
		},
	}
	result := Validate(map[string]any{"v": "x"}, ds)
	if result.Valid || result.Errors[0].Type != KindCustom {
		t.Fatalf("a panicking predicate must fail closed, got %+v", result)
	}
}

func TestValidate_RuleAndStructuralBothFire(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"username": {
				Type:      schema.TypeString,
				MinLength: intPtr(3),
				Validation: &schema.ValidationRule{
					Field:  "username",
					Type:   schema.RuleLength,
					Config: schema.RuleConfig{Min: floatPtr(3), Message: "username too short"},
				},
			},
		},
	}

	result := Validate(map[string]any{"username": "jo"}, ds)
	want := []string{KindMinLength, KindLength}
	if diff := cmp.Diff(want, violationTypes(result)); diff != "" {
		t.Fatalf("expected both layers to fire (-want +got):\n%s", diff)
	}
	if result.Errors[1].Message != "username too short" {
		t.Fatalf("expected the rule's own message, got %q", result.Errors[1].Message)
	}
}

func TestValidate_RangeRule(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"age": {
				Type: schema.TypeNumber,
				Validation: &schema.ValidationRule{
					Field:  "age",
					Type:   schema.RuleRange,
					Config: schema.RuleConfig{Min: floatPtr(0), Max: floatPtr(120)},
				},
			},
		},
	}
	if result := Validate(map[string]any{"age": float64(130)}, ds); result.Valid || result.Errors[0].Type != KindRange {
		t.Fatalf("expected range violation, got %+v", result)
	}
}

func TestValidate_TypedMapAndSlice(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"tags": {Type: schema.TypeArray, Items: &schema.PropertySchema{Type: schema.TypeString}},
		},
		Required: []string{"tags"},
	}

	// A typed Go slice, not the JSON-decoded []any shape.
	result := Validate(map[string]any{"tags": []string{"a", "b"}}, ds)
	if !result.Valid {
		t.Fatalf("typed slices must validate through reflection, got %+v", result.Errors)
	}
}
