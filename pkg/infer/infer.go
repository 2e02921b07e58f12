// Package infer maps concrete runtime values to structural schemas. It is
// the value-based half of the extraction pipeline: the builder uses it for
// API request-body shapes and callers can feed it sample payloads directly.
package infer

import (
	"reflect"
	"sort"
	"time"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// Options tunes inference behaviour.
type Options struct {
	// DetectPatterns additionally tests string values against the fixed
	// pattern library and attaches the first matching pattern source.
	DetectPatterns bool
	// MarkRequired records non-null object keys in the Required set of
	// inferred object schemas.
	MarkRequired bool
}

// InferFromValue infers a schema for a single concrete value. Nil infers to a
// string schema: absent data carries no shape information and string is the
// documented default, not an error.
func InferFromValue(value any, opts Options) schema.PropertySchema {
	switch v := value.(type) {
	case nil:
		return schema.PropertySchema{Type: schema.TypeString}
	case bool:
		return schema.PropertySchema{Type: schema.TypeBoolean}
	case string:
		return inferString(v, opts)
	case time.Time:
		return schema.PropertySchema{Type: schema.TypeString, Format: schema.FormatDateTime}
	case []any:
		return inferArray(v, opts)
	case map[string]any:
		return inferObject(v, opts)
	}

	if isNumeric(value) {
		return schema.PropertySchema{Type: schema.TypeNumber}
	}

	// Fall back through reflection for typed slices and maps.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		generic := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			generic[i] = rv.Index(i).Interface()
		}
		return inferArray(generic, opts)
	case reflect.Map:
		generic := make(map[string]any, rv.Len())
		for _, key := range rv.MapKeys() {
			if key.Kind() != reflect.String {
				continue
			}
			generic[key.String()] = rv.MapIndex(key).Interface()
		}
		return inferObject(generic, opts)
	}

	return schema.PropertySchema{Type: schema.TypeString}
}

// InferFromSamples infers each sample independently and merges the results.
// Samples that disagree on the top-level type collapse to the most permissive
// schema, a bare string; this is deliberately lossy, not a union.
func InferFromSamples(samples []any) schema.PropertySchema {
	if len(samples) == 0 {
		return schema.PropertySchema{Type: schema.TypeString}
	}
	inferred := make([]schema.PropertySchema, 0, len(samples))
	for _, sample := range samples {
		inferred = append(inferred, InferFromValue(sample, Options{}))
	}
	first := inferred[0].Type
	for _, s := range inferred[1:] {
		if s.Type != first {
			return schema.PropertySchema{Type: schema.TypeString}
		}
	}
	return MergeSchemas(inferred)
}

// CreateDataSchema builds a root object schema from sample objects. A key is
// required iff it carries a non-null value in every sample; a missing key is
// treated as absent, not null. Note the asymmetry with MergeSchemas, which
// unions Required across inputs: the two policies coexist on purpose.
func CreateDataSchema(samples []map[string]any) *schema.DataSchema {
	out := &schema.DataSchema{
		Type:       schema.TypeObject,
		Properties: make(map[string]schema.PropertySchema),
	}
	if len(samples) == 0 {
		return out
	}

	values := make(map[string][]any)
	counts := make(map[string]int)
	for _, sample := range samples {
		for key, value := range sample {
			if value != nil {
				counts[key]++
			}
			values[key] = append(values[key], value)
		}
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		out.Properties[key] = InferFromSamples(values[key])
		if counts[key] == len(samples) {
			out.Required = append(out.Required, key)
		}
	}
	return out
}

func inferString(value string, opts Options) schema.PropertySchema {
	out := schema.PropertySchema{Type: schema.TypeString}
	if format := detectFormat(value); format != "" {
		out.Format = format
		return out
	}
	if opts.DetectPatterns {
		out.Pattern = detectPattern(value)
	}
	return out
}

func inferArray(values []any, opts Options) schema.PropertySchema {
	out := schema.PropertySchema{Type: schema.TypeArray}
	if len(values) == 0 {
		return out
	}
	inferred := make([]schema.PropertySchema, 0, len(values))
	for _, element := range values {
		inferred = append(inferred, InferFromValue(element, opts))
	}
	items := MergeSchemas(inferred)
	out.Items = &items
	return out
}

func inferObject(value map[string]any, opts Options) schema.PropertySchema {
	out := schema.PropertySchema{
		Type:       schema.TypeObject,
		Properties: make(map[string]schema.PropertySchema, len(value)),
	}
	keys := make([]string, 0, len(value))
	for key := range value {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out.Properties[key] = InferFromValue(value[key], opts)
		if opts.MarkRequired && value[key] != nil {
			out.Required = append(out.Required, key)
		}
	}
	return out
}

func isNumeric(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
