package infer

import (
	"sort"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// MergeSchemas folds a list of schemas into one. Object schemas union their
// keys, recursively merging keys observed more than once, and union their
// Required sets ("required in any input" — intersection semantics live in
// CreateDataSchema, not here). Array schemas merge their item schemas. Inputs
// that disagree on type collapse to a bare string schema.
func MergeSchemas(schemas []schema.PropertySchema) schema.PropertySchema {
	if len(schemas) == 0 {
		return schema.PropertySchema{Type: schema.TypeString}
	}
	if len(schemas) == 1 {
		return schemas[0].Clone()
	}

	first := schemas[0].Type
	for _, s := range schemas[1:] {
		if s.Type != first {
			return schema.PropertySchema{Type: schema.TypeString}
		}
	}

	switch first {
	case schema.TypeObject:
		return mergeObjects(schemas)
	case schema.TypeArray:
		return mergeArrays(schemas)
	}

	merged := schemas[0].Clone()
	// Format survives only when every input agrees; a mixed batch is just a
	// plain value of the shared type.
	for _, s := range schemas[1:] {
		if s.Format != merged.Format {
			merged.Format = ""
		}
		if s.Pattern != merged.Pattern {
			merged.Pattern = ""
		}
	}
	return merged
}

func mergeObjects(schemas []schema.PropertySchema) schema.PropertySchema {
	out := schema.PropertySchema{
		Type:       schema.TypeObject,
		Properties: make(map[string]schema.PropertySchema),
	}

	grouped := make(map[string][]schema.PropertySchema)
	requiredSet := make(map[string]struct{})
	for _, s := range schemas {
		for key, prop := range s.Properties {
			grouped[key] = append(grouped[key], prop)
		}
		for _, key := range s.Required {
			requiredSet[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out.Properties[key] = MergeSchemas(grouped[key])
	}

	if len(requiredSet) > 0 {
		required := make([]string, 0, len(requiredSet))
		for key := range requiredSet {
			required = append(required, key)
		}
		sort.Strings(required)
		out.Required = required
	}
	return out
}

func mergeArrays(schemas []schema.PropertySchema) schema.PropertySchema {
	out := schema.PropertySchema{Type: schema.TypeArray}
	var items []schema.PropertySchema
	for _, s := range schemas {
		if s.Items != nil {
			items = append(items, *s.Items)
		}
	}
	if len(items) > 0 {
		merged := MergeSchemas(items)
		out.Items = &merged
	}
	return out
}
