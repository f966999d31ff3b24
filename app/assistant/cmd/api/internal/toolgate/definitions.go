package toolgate

import (
	openai "github.com/sashabaranov/go-openai"
)

// Definitions renders the schema table into the tool list advertised to the
// LLM, so the model only ever sees exactly what the gate will accept.
func Definitions() []openai.Tool {
	tools := make([]openai.Tool, 0, len(schemas))
	for _, name := range AllTools() {
		schema := schemas[name]

		properties := map[string]any{}
		required := []string{}
		for _, f := range schema.Fields {
			prop := map[string]any{
				"type":        jsonType(f.Kind),
				"description": f.Desc,
			}
			switch f.Kind {
			case KindString:
				if f.MaxLen > 0 {
					prop["maxLength"] = f.MaxLen
				}
			case KindInt:
				prop["minimum"] = f.Min
				prop["maximum"] = f.Max
			}
			properties[f.Name] = prop
			if f.Required {
				required = append(required, f.Name)
			}
		}

		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        string(name),
				Description: schema.Desc,
				Parameters: map[string]any{
					"type":       "object",
					"properties": properties,
					"required":   required,
				},
			},
		})
	}
	return tools
}

func jsonType(kind FieldKind) string {
	if kind == KindInt {
		return "integer"
	}
	return "string"
}
