package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriggerRule holds the schema definition for the TriggerRule entity:
// a declarative rule that turns external events into tasks.
type TriggerRule struct {
	ent.Schema
}

// Fields of the TriggerRule.
func (TriggerRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Enum("rule_type").
			Values("cron", "webhook"),
		field.String("expression").
			Comment("Cron expression or webhook path token"),
		field.String("template_id"),
		field.String("project_id").
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the TriggerRule.
func (TriggerRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", TriggerEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TriggerRule.
func (TriggerRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
	}
}
