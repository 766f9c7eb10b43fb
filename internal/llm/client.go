package llm

import (
	"context"
)

// Client defines the interface for LLM providers.
type Client interface {
	// Complete sends one request and returns the raw text of the answer.
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is a single structured-output completion request.
type Request struct {
	System string
	Prompt string
	Schema Schema
}

// Schema describes the JSON object the model must answer with. Each provider
// renders it in its own dialect.
type Schema struct {
	Name       string
	Properties []Property
}

// PropertyType is a JSON schema primitive type.
type PropertyType string

// Supported property types.
const (
	TypeString  PropertyType = "string"
	TypeInteger PropertyType = "integer"
)

// Property is one required field of a Schema.
type Property struct {
	Name        string
	Type        PropertyType
	Description string
	Enum        []string
}

// jsonSchema renders the schema as standard JSON schema.
func (s Schema) jsonSchema() map[string]any {
	properties := make(map[string]any, len(s.Properties))
	required := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		prop := map[string]any{
			"type":        string(p.Type),
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop
		required = append(required, p.Name)
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}
