package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every LLM API call so `ai-tutor llm` can
// report usage and surface failures.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("anthropic, openai, gemini, or mock"),
		field.String("model").
			Comment("Model ID the provider actually served"),
		field.String("purpose").
			Comment("Caller-supplied label, e.g. quiz-gen"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt token count"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion token count"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the call"),
		field.Bool("success").
			Comment("True when the call returned a usable response"),
		field.String("error_message").
			Default("").
			Comment("Failure detail, empty on success"),
		field.Text("request_body").
			Default("").
			Comment("Serialized prompt, kept for debugging"),
		field.Text("response_body").
			Default("").
			Comment("Raw model output, kept for debugging"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
