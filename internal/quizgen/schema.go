package quizgen

import "github.com/hcl-ram/AI-Tutor-sf/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "practice-quiz",
	Description: "A multiple-choice practice quiz with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, in plain ASCII text",
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
							"description": "Exactly 4 answer options in display order",
						},
						"answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "The letter of the correct option",
						},
						"solution": map[string]any{
							"type":        "string",
							"description": "Step-by-step worked solution shown after submit",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short scaffolding hint, may be empty",
						},
					},
					"required":             []any{"question", "options", "answer", "solution", "hint"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
