package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillFeedback holds the schema definition for the SkillFeedback
// entity: gate-rejection lessons recorded against an agent role.
type SkillFeedback struct {
	ent.Schema
}

// Fields of the SkillFeedback.
func (SkillFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("agent_role"),
		field.String("task_id"),
		field.String("gate_id").
			Optional(),
		field.Text("comment").
			Optional().
			Comment("Raw reviewer comment"),
		field.Text("lesson").
			Comment("Extracted lesson, one sentence"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the SkillFeedback.
func (SkillFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_role", "created_at"),
		index.Fields("task_id"),
	}
}

// Annotations of the SkillFeedback.
func (SkillFeedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "skill_feedback"},
	}
}
