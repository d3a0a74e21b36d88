package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz attempt lifecycle events (start/submit).
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events for one quiz attempt"),
		field.String("action").
			NotEmpty().
			Comment("start or submit"),
		field.String("class_level").
			NotEmpty().
			Comment("Class level as sent on the wire, e.g. 10"),
		field.String("subject").
			NotEmpty(),
		field.String("chapter").
			NotEmpty(),
		field.String("source").
			NotEmpty().
			Comment("remote or llm"),
		field.Int("total_questions").
			Default(0),
		field.Int("score").
			Default(0).
			Comment("Correct answers (on submit only)"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("action"),
		index.Fields("subject"),
	}
}
