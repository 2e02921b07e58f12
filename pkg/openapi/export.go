// Package openapi projects extraction results into OpenAPI 3 documents so
// recovered component schemas can flow into API tooling.
package openapi

import (
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// Info captures the document metadata for an export.
type Info struct {
	Title   string
	Version string
}

// Export builds an OpenAPI document from one extraction result: a path item
// per extracted endpoint and a components entry for the unified schema named
// after the component.
func Export(componentName string, result *schema.ExtractionResult, info Info) (*openapi3.T, error) {
	if result == nil {
		return nil, errors.New("openapi export: extraction result is required")
	}
	name := strings.TrimSpace(componentName)
	if name == "" {
		name = "Component"
	}
	if info.Title == "" {
		info.Title = name
	}
	if info.Version == "" {
		info.Version = "0.0.0"
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: info.Title, Version: info.Version},
		Paths:   openapi3.NewPaths(),
	}

	if result.DataSchema != nil {
		doc.Components = &openapi3.Components{
			Schemas: openapi3.Schemas{
				name + "Data": openapi3.NewSchemaRef("", dataSchemaToOpenAPI(result.DataSchema)),
			},
		}
	}

	for _, call := range result.APICalls {
		if call.Endpoint == "" {
			continue
		}
		item := doc.Paths.Value(call.Endpoint)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(call.Endpoint, item)
		}

		operation := &openapi3.Operation{
			OperationID: operationID(call),
			Responses:   openapi3.NewResponses(),
		}
		if body, ok := call.RequestBody.(map[string]any); ok && len(body) > 0 {
			operation.RequestBody = &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithJSONSchema(requestBodySchema(body)),
			}
		}
		item.SetOperation(strings.ToUpper(call.Method), operation)
	}

	return doc, nil
}

func operationID(call schema.APICall) string {
	segments := strings.FieldsFunc(call.Endpoint, func(r rune) bool {
		return r == '/' || r == '-' || r == '_'
	})
	var b strings.Builder
	b.WriteString(strings.ToLower(call.Method))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}
	return b.String()
}

func dataSchemaToOpenAPI(ds *schema.DataSchema) *openapi3.Schema {
	out := &openapi3.Schema{
		Type:       &openapi3.Types{string(schema.TypeObject)},
		Properties: make(openapi3.Schemas, len(ds.Properties)),
	}
	for name, prop := range ds.Properties {
		out.Properties[name] = openapi3.NewSchemaRef("", propertyToOpenAPI(prop))
	}
	if len(ds.Required) > 0 {
		out.Required = append([]string(nil), ds.Required...)
	}
	return out
}

func propertyToOpenAPI(prop schema.PropertySchema) *openapi3.Schema {
	out := &openapi3.Schema{
		Type:    &openapi3.Types{string(prop.Type)},
		Format:  prop.Format,
		Pattern: prop.Pattern,
	}
	if prop.MinLength != nil {
		out.MinLength = uint64(*prop.MinLength)
	}
	if prop.MaxLength != nil {
		value := uint64(*prop.MaxLength)
		out.MaxLength = &value
	}
	if prop.Minimum != nil {
		value := *prop.Minimum
		out.Min = &value
	}
	if prop.Maximum != nil {
		value := *prop.Maximum
		out.Max = &value
	}
	if len(prop.Enum) > 0 {
		out.Enum = append([]any(nil), prop.Enum...)
	}
	if prop.Items != nil {
		out.Items = openapi3.NewSchemaRef("", propertyToOpenAPI(*prop.Items))
	}
	if len(prop.Properties) > 0 {
		out.Properties = make(openapi3.Schemas, len(prop.Properties))
		for name, nested := range prop.Properties {
			out.Properties[name] = openapi3.NewSchemaRef("", propertyToOpenAPI(nested))
		}
	}
	if len(prop.Required) > 0 {
		out.Required = append([]string(nil), prop.Required...)
	}
	return out
}

func requestBodySchema(body map[string]any) *openapi3.Schema {
	out := &openapi3.Schema{
		Type:       &openapi3.Types{string(schema.TypeObject)},
		Properties: make(openapi3.Schemas, len(body)),
	}
	for name, value := range body {
		var t schema.PropertyType
		switch value.(type) {
		case bool:
			t = schema.TypeBoolean
		case float64, int:
			t = schema.TypeNumber
		case []any:
			t = schema.TypeArray
		case map[string]any:
			t = schema.TypeObject
		default:
			t = schema.TypeString
		}
		out.Properties[name] = openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{string(t)}})
	}
	return out
}
