package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/stewardhq/steward/pkg/models"
)

// TaskTemplate holds the schema definition for the TaskTemplate entity.
// Templates are immutable; a new version is a new row chained through
// parent_id.
type TaskTemplate struct {
	ent.Schema
}

// Fields of the TaskTemplate.
func (TaskTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Int("version").
			Default(1),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Previous version in the history chain"),
		field.Text("description").
			Optional(),
		field.JSON("stages", []models.StageDef{}).
			Comment("Ordered stage definitions"),
		field.JSON("gates", []models.GateDef{}).
			Optional().
			Comment("Gate declarations keyed by after_stage"),
		field.Bool("interactive").
			Default(false).
			Comment("Pause for plan review after the parse stage"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the TaskTemplate.
func (TaskTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type),
	}
}

// Indexes of the TaskTemplate.
func (TaskTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").
			Unique(),
	}
}
