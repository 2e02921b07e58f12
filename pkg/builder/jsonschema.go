package builder

import "github.com/goliatone/go-schemex/pkg/schema"

// Draft07URI is the schema-dialect marker attached to rendered JSON Schemas.
const Draft07URI = "http://json-schema.org/draft-07/schema#"

// RenderJSONSchema returns the data schema spread under a draft-07 $schema
// key. No further transformation is applied; PropertySchema nodes already
// serialise with JSON-Schema-compatible keywords.
func RenderJSONSchema(ds *schema.DataSchema) map[string]any {
	out := map[string]any{
		"$schema": Draft07URI,
		"type":    string(schema.TypeObject),
	}
	if ds == nil {
		out["properties"] = map[string]schema.PropertySchema{}
		return out
	}
	out["properties"] = ds.Properties
	if len(ds.Required) > 0 {
		out["required"] = ds.Required
	}
	if ds.AdditionalProperties != nil {
		out["additionalProperties"] = *ds.AdditionalProperties
	}
	return out
}
