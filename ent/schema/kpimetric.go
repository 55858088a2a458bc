package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KPIMetric holds the schema definition for the KPIMetric entity:
// per-task metric samples recorded at terminal transitions.
type KPIMetric struct {
	ent.Schema
}

// Fields of the KPIMetric.
func (KPIMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("kpi_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("name").
			Comment("e.g. 'duration_seconds', 'total_tokens'"),
		field.Float("value"),
		field.String("unit").
			Optional(),
		field.Time("recorded_at").
			Default(time.Now),
	}
}

// Edges of the KPIMetric.
func (KPIMetric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("kpis").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KPIMetric.
func (KPIMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("name", "recorded_at"),
	}
}
