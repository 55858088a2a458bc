package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriggerEvent holds the schema definition for the TriggerEvent entity:
// provenance of a task creation (manual, cron or webhook).
type TriggerEvent struct {
	ent.Schema
}

// Fields of the TriggerEvent.
func (TriggerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("rule_id").
			Optional().
			Nillable(),
		field.String("source").
			Comment("'manual', 'cron', 'webhook'"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("task_id").
			Optional().
			Comment("Task created from the event, if any"),
		field.Enum("status").
			Values("received", "task_created", "ignored", "error").
			Default("received"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the TriggerEvent.
func (TriggerEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("rule", TriggerRule.Type).
			Ref("events").
			Field("rule_id").
			Unique(),
	}
}

// Indexes of the TriggerEvent.
func (TriggerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("created_at"),
	}
}
