package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CircuitBreaker holds the schema definition for the CircuitBreaker
// entity: one tripped resource guard.
type CircuitBreaker struct {
	ent.Schema
}

// Fields of the CircuitBreaker.
func (CircuitBreaker) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("breaker_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("level").
			Default(1).
			Comment("Escalation level, 1..k"),
		field.String("triggered_by").
			Comment("'tokens' or 'cost'"),
		field.Text("reason"),
		field.Time("triggered_at").
			Default(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("resolved_by").
			Optional().
			Nillable(),
	}
}

// Edges of the CircuitBreaker.
func (CircuitBreaker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("breakers").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CircuitBreaker.
func (CircuitBreaker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("resolved_at"),
	}
}
