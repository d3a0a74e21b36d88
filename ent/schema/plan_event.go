package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent records a generated study plan.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_name").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("grade_level").
			Default(""),
		field.String("exam_date").
			Default("").
			Comment("YYYY-MM-DD"),
		field.Int("days_until_exam").
			Default(0),
		field.Int("weeks").
			Default(0).
			Comment("Number of weeks in the schedule"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
	}
}
