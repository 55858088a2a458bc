package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HumanGate holds the schema definition for the HumanGate entity: a
// human checkpoint blocking progression past a stage. Gates are never
// re-opened; each retry round creates a fresh row.
type HumanGate struct {
	ent.Schema
}

// Fields of the HumanGate.
func (HumanGate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gate_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("stage_name").
			Comment("Stage the gate follows"),
		field.String("agent_role").
			Optional(),
		field.Enum("gate_type").
			Values("human_approve", "plan_review", "confidence_review"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "revised").
			Default("pending"),
		field.String("reviewer").
			Optional().
			Nillable(),
		field.Text("comment").
			Optional(),
		field.Text("revised_content").
			Optional(),
		field.Int("retry_count").
			Default(0).
			Comment("Which retry round this gate belongs to"),
		field.Bool("is_dynamic").
			Default(false).
			Comment("Inserted at runtime on low confidence"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the HumanGate.
func (HumanGate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("gates").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HumanGate.
func (HumanGate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("task_id"),
		index.Fields("gate_type"),
	}
}
