package schema

// PropertyType enumerates the structural types a schema node can take. There
// is exactly one type per node; refinement happens through Format, never
// through unions.
type PropertyType string

const (
	TypeString  PropertyType = "string"
	TypeNumber  PropertyType = "number"
	TypeBoolean PropertyType = "boolean"
	TypeObject  PropertyType = "object"
	TypeArray   PropertyType = "array"
)

// String formats recognised by the inferer and checked by the validator.
const (
	FormatEmail    = "email"
	FormatURL      = "url"
	FormatDate     = "date"
	FormatTime     = "time"
	FormatDateTime = "date-time"
	FormatUUID     = "uuid"
	FormatPhone    = "phone"
)

// PropertySchema is a node in a structural schema tree. Items and Properties
// are mutually exclusive: Items is set only for arrays, Properties and
// Required only for objects.
type PropertySchema struct {
	Type       PropertyType              `json:"type"`
	Format     string                    `json:"format,omitempty"`
	Pattern    string                    `json:"pattern,omitempty"`
	MinLength  *int                      `json:"minLength,omitempty"`
	MaxLength  *int                      `json:"maxLength,omitempty"`
	Minimum    *float64                  `json:"minimum,omitempty"`
	Maximum    *float64                  `json:"maximum,omitempty"`
	Enum       []any                     `json:"enum,omitempty"`
	Items      *PropertySchema           `json:"items,omitempty"`
	Properties map[string]PropertySchema `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
	Validation *ValidationRule           `json:"validation,omitempty"`
}

// DataSchema is the root of a unified schema produced by the builder. It is
// rebuilt fully on every extraction and must be treated as immutable once
// returned; use Clone before mutating a cached instance.
type DataSchema struct {
	Type                 PropertyType              `json:"type"`
	Properties           map[string]PropertySchema `json:"properties"`
	Required             []string                  `json:"required,omitempty"`
	AdditionalProperties *bool                     `json:"additionalProperties,omitempty"`
}

// FieldType enumerates the form-facing input kinds recovered from component
// source.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePassword FieldType = "password"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeTextarea FieldType = "textarea"
)

// FieldOption is a single choice offered by select and radio fields.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FormField describes one input discovered in a component. Name is unique
// within a component after deduplication.
type FormField struct {
	Name        string          `json:"name"`
	Type        FieldType       `json:"type"`
	Label       string          `json:"label,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Validation  *ValidationRule `json:"validation,omitempty"`
	Options     []FieldOption   `json:"options,omitempty"`
}

// RuleType enumerates validation rule kinds. A field carries at most one rule
// per extraction; when multiple constraints match, the first in scanning
// order wins.
type RuleType string

const (
	RuleRequired RuleType = "required"
	RulePattern  RuleType = "pattern"
	RuleLength   RuleType = "length"
	RuleRange    RuleType = "range"
	RuleCustom   RuleType = "custom"
)

// RuleConfig holds the parameters for a ValidationRule. Validator is only
// populated for custom rules registered programmatically; it never survives
// JSON round-trips.
type RuleConfig struct {
	Pattern   string         `json:"pattern,omitempty"`
	Min       *float64       `json:"min,omitempty"`
	Max       *float64       `json:"max,omitempty"`
	Validator func(any) bool `json:"-"`
	Message   string         `json:"message"`
}

// ValidationRule constrains a single named field.
type ValidationRule struct {
	Field  string     `json:"field"`
	Type   RuleType   `json:"type"`
	Config RuleConfig `json:"config"`
}

// APICall describes one outbound request recovered from component source.
// Only literal endpoints are recovered; interpolated URLs are skipped.
type APICall struct {
	Method       string            `json:"method"`
	Endpoint     string            `json:"endpoint"`
	RequestBody  any               `json:"requestBody,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
	ResponseType string            `json:"responseType,omitempty"`
}

// ExtractionResult bundles everything recovered from one component: the
// unified schema, the raw descriptors it was built from, and the rendered
// TypeScript and JSON-Schema views.
type ExtractionResult struct {
	DataSchema  *DataSchema      `json:"dataSchema"`
	FormFields  []FormField      `json:"formFields"`
	APICalls    []APICall        `json:"apiCalls"`
	Validations []ValidationRule `json:"validations"`
	TypeScript  string           `json:"typescript"`
	JSONSchema  map[string]any   `json:"jsonSchema"`
}
