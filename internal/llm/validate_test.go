package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A test question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"marks":    map[string]any{"type": "integer", "minimum": 0},
				"answer":   map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
			},
			"required": []any{"question", "marks"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question":"What is 2+2?","marks":1,"answer":"B"}`, false},
		{"optional field omitted", `{"question":"Name a prime.","marks":2}`, false},
		{"required field missing", `{"question":"Incomplete"}`, true},
		{"wrong type", `{"question":"Bad marks","marks":"one"}`, true},
		{"letter outside enum", `{"question":"Pick one","marks":1,"answer":"E"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty output", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tt.raw))
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Errorf("error type = %T, want ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_NestedStructures(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"quiz": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"subject": map[string]any{"type": "string"},
					},
					"required": []any{"subject"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"quiz", "scores"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"quiz":{"subject":"Maths"},"scores":[3,4,5]}`)); err != nil {
		t.Fatalf("valid nested payload rejected: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"quiz":{"subject":"Maths"},"scores":["not","ints"]}`)); err == nil {
		t.Fatal("wrong array item type should fail validation")
	}
}
