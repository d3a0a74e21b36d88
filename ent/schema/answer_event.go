package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a quiz attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to QuizEvent"),
		field.Int("question_index").
			Comment("Zero-based position in the quiz"),
		field.String("question_text").
			NotEmpty(),
		field.Int("selected_index").
			Default(-1).
			Comment("-1 when the question was left unanswered"),
		field.Int("correct_index"),
		field.Bool("correct"),
		field.String("rationale").
			Default("").
			Comment("Learner's stated reasoning, if any"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("correct"),
	}
}
