package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response schemas, one per consumed endpoint. A 2xx body that fails its
// schema is an error, never partially read.

var quizResponseSchema = responseSchema{
	name: "quiz-generate-response",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"answer":   map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
						"solution": map[string]any{"type": "string"},
						"hint":     map[string]any{"type": "string"},
					},
					"required": []any{"question", "options", "answer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

var recommendationsResponseSchema = responseSchema{
	name: "quiz-recommendations-response",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"summary":        map[string]any{"type": "string"},
					"breakdown":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"learning_path":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"strong_topics":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"needs_practice": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required": []any{"summary"},
			},
		},
		"required": []any{"recommendations"},
	},
}

var studyPlanResponseSchema = responseSchema{
	name: "study-plan-response",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"study_plan": map[string]any{"type": "object"},
		},
		"required": []any{"study_plan"},
	},
}

var authResponseSchema = responseSchema{
	name: "auth-response",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"token": map[string]any{"type": "string", "minLength": 1},
			"user": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"role": map[string]any{"type": "string", "enum": []any{"student", "teacher"}},
				},
				"required": []any{"role"},
			},
		},
		"required": []any{"token", "user"},
	},
}

type responseSchema struct {
	name       string
	definition map[string]any
}

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validate checks raw against the schema, failing closed on mismatch.
func (s responseSchema) validate(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := s.compiled()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func (s responseSchema) compiled() (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library wants a parsed JSON value, not a Go map
	// with arbitrary types. Round-trip through encoding/json.
	defBytes, err := json.Marshal(s.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", s.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(s.name, compiled)
	return compiled, nil
}
