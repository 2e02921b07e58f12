package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-schemex/pkg/schema"
)

// RenderTypeScript renders the data schema as a TypeScript interface. Keys
// absent from Required carry the optional marker. Properties are emitted in
// sorted order for stable output.
func RenderTypeScript(name string, ds *schema.DataSchema) string {
	interfaceName := strings.TrimSpace(name)
	if interfaceName == "" {
		interfaceName = "Component"
	}
	interfaceName += "Data"

	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", interfaceName)
	if ds != nil {
		required := make(map[string]struct{}, len(ds.Required))
		for _, key := range ds.Required {
			required[key] = struct{}{}
		}
		keys := make([]string, 0, len(ds.Properties))
		for key := range ds.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			marker := "?"
			if _, ok := required[key]; ok {
				marker = ""
			}
			fmt.Fprintf(&b, "  %s%s: %s;\n", key, marker, tsType(ds.Properties[key]))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func tsType(prop schema.PropertySchema) string {
	switch prop.Type {
	case schema.TypeNumber:
		return "number"
	case schema.TypeBoolean:
		return "boolean"
	case schema.TypeArray:
		if prop.Items == nil {
			return "any[]"
		}
		element := tsType(*prop.Items)
		if strings.ContainsAny(element, " |{") {
			return fmt.Sprintf("(%s)[]", element)
		}
		return element + "[]"
	case schema.TypeObject:
		if len(prop.Properties) == 0 {
			return "Record<string, any>"
		}
		return tsObject(prop)
	default:
		if len(prop.Enum) > 0 {
			return tsEnum(prop.Enum)
		}
		return "string"
	}
}

func tsObject(prop schema.PropertySchema) string {
	required := make(map[string]struct{}, len(prop.Required))
	for _, key := range prop.Required {
		required[key] = struct{}{}
	}
	keys := make([]string, 0, len(prop.Properties))
	for key := range prop.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		marker := "?"
		if _, ok := required[key]; ok {
			marker = ""
		}
		parts = append(parts, fmt.Sprintf("%s%s: %s", key, marker, tsType(prop.Properties[key])))
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func tsEnum(values []any) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok {
			parts = append(parts, fmt.Sprintf("'%s'", s))
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", value))
	}
	if len(parts) == 0 {
		return "string"
	}
	return strings.Join(parts, " | ")
}
