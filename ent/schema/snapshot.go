package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot stores the most recently fetched performance summary so the
// history view can show something meaningful while offline.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Global sequence at capture time"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("data", map[string]any{}).
			Comment("Serialized recommendation summary"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
