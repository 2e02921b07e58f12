package builder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemex/pkg/schema"
)

func requiredRule(field string) *schema.ValidationRule {
	return &schema.ValidationRule{
		Field:  field,
		Type:   schema.RuleRequired,
		Config: schema.RuleConfig{Message: field + " is required"},
	}
}

func TestBuild_FieldTypeTable(t *testing.T) {
	fields := []schema.FormField{
		{Name: "email", Type: schema.FieldTypeEmail},
		{Name: "age", Type: schema.FieldTypeNumber},
		{Name: "active", Type: schema.FieldTypeCheckbox},
		{Name: "birthday", Type: schema.FieldTypeDate},
		{Name: "bio", Type: schema.FieldTypeTextarea},
	}

	ds := Build(fields, nil)

	cases := []struct {
		name       string
		wantType   schema.PropertyType
		wantFormat string
	}{
		{"email", schema.TypeString, schema.FormatEmail},
		{"age", schema.TypeNumber, ""},
		{"active", schema.TypeBoolean, ""},
		{"birthday", schema.TypeString, schema.FormatDate},
		{"bio", schema.TypeString, ""},
	}
	for _, tc := range cases {
		prop := ds.Properties[tc.name]
		if prop.Type != tc.wantType || prop.Format != tc.wantFormat {
			t.Fatalf("%s: got {%s %s}, want {%s %s}", tc.name, prop.Type, prop.Format, tc.wantType, tc.wantFormat)
		}
	}
}

func TestBuild_SelectEnum(t *testing.T) {
	fields := []schema.FormField{{
		Name: "color",
		Type: schema.FieldTypeSelect,
		Options: []schema.FieldOption{
			{Label: "Red", Value: "red"},
			{Label: "Blue", Value: "blue"},
		},
	}}

	ds := Build(fields, nil)
	if diff := cmp.Diff([]any{"red", "blue"}, ds.Properties["color"].Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RequiredOnlyFromRequiredRule(t *testing.T) {
	three := 3.0
	fields := []schema.FormField{
		{Name: "username", Type: schema.FieldTypeText, Validation: requiredRule("username")},
		{Name: "nickname", Type: schema.FieldTypeText, Validation: &schema.ValidationRule{
			Field:  "nickname",
			Type:   schema.RuleLength,
			Config: schema.RuleConfig{Min: &three},
		}},
	}

	ds := Build(fields, nil)
	if diff := cmp.Diff([]string{"username"}, ds.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if got := ds.Properties["nickname"].MinLength; got == nil || *got != 3 {
		t.Fatalf("expected minLength 3 copied from the rule, got %v", got)
	}
}

func TestBuild_PatternCopied(t *testing.T) {
	fields := []schema.FormField{{
		Name: "zip",
		Type: schema.FieldTypeText,
		Validation: &schema.ValidationRule{
			Field:  "zip",
			Type:   schema.RulePattern,
			Config: schema.RuleConfig{Pattern: `\d{5}`},
		},
	}}

	ds := Build(fields, nil)
	if got := ds.Properties["zip"].Pattern; got != `\d{5}` {
		t.Fatalf("expected pattern copied, got %q", got)
	}
	if ds.Properties["zip"].Validation == nil {
		t.Fatal("expected the rule to stay attached for validation time")
	}
}

func TestBuild_APIBodyMergeDoesNotOverwrite(t *testing.T) {
	fields := []schema.FormField{{Name: "username", Type: schema.FieldTypeText}}
	calls := []schema.APICall{{
		Method:   "POST",
		Endpoint: "/api/users",
		RequestBody: map[string]any{
			"username": 42, // conflicting shape; the form field wins
			"role":     "admin",
			"retries":  float64(3),
		},
	}}

	ds := Build(fields, calls)
	if got := ds.Properties["username"].Type; got != schema.TypeString {
		t.Fatalf("form-derived schema must win on conflict, got %q", got)
	}
	if got := ds.Properties["role"].Type; got != schema.TypeString {
		t.Fatalf("expected role string, got %q", got)
	}
	if got := ds.Properties["retries"].Type; got != schema.TypeNumber {
		t.Fatalf("expected retries number, got %q", got)
	}
}

func TestRenderTypeScript_OptionalMarkers(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"username": {Type: schema.TypeString},
			"age":      {Type: schema.TypeNumber},
		},
		Required: []string{"username"},
	}

	out := RenderTypeScript("Login", ds)
	if !strings.Contains(out, "export interface LoginData {") {
		t.Fatalf("unexpected interface header:\n%s", out)
	}
	if !strings.Contains(out, "  username: string;\n") {
		t.Fatalf("expected required username line:\n%s", out)
	}
	if !strings.Contains(out, "  age?: number;\n") {
		t.Fatalf("expected optional age line:\n%s", out)
	}
}

func TestRenderTypeScript_ComplexTypes(t *testing.T) {
	ds := &schema.DataSchema{
		Type: schema.TypeObject,
		Properties: map[string]schema.PropertySchema{
			"tags":   {Type: schema.TypeArray, Items: &schema.PropertySchema{Type: schema.TypeString}},
			"extras": {Type: schema.TypeArray},
			"role":   {Type: schema.TypeString, Enum: []any{"admin", "user"}},
			"meta":   {Type: schema.TypeObject},
			"address": {
				Type:       schema.TypeObject,
				Properties: map[string]schema.PropertySchema{"city": {Type: schema.TypeString}},
				Required:   []string{"city"},
			},
		},
	}

	out := RenderTypeScript("Profile", ds)
	for _, want := range []string{
		"tags?: string[];",
		"extras?: any[];",
		"role?: 'admin' | 'user';",
		"meta?: Record<string, any>;",
		"address?: { city: string };",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderJSONSchema(t *testing.T) {
	ds := &schema.DataSchema{
		Type:       schema.TypeObject,
		Properties: map[string]schema.PropertySchema{"name": {Type: schema.TypeString}},
		Required:   []string{"name"},
	}

	out := RenderJSONSchema(ds)
	if out["$schema"] != Draft07URI {
		t.Fatalf("expected draft-07 marker, got %v", out["$schema"])
	}
	if out["type"] != "object" {
		t.Fatalf("expected object type, got %v", out["type"])
	}
	if _, ok := out["properties"].(map[string]schema.PropertySchema); !ok {
		t.Fatalf("expected properties map, got %T", out["properties"])
	}
}
