package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/stewardhq/steward/pkg/models"
)

// Task holds the schema definition for the Task entity: one unit of
// work consumed from the durable queue.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("external_id").
			Optional().
			Nillable().
			Comment("Correlation id from the triggering system"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "claimed", "running", "planning", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("total_tokens").
			Default(0).
			Comment("Cumulative tokens across all stage executions"),
		field.Float("total_cost").
			Default(0).
			Comment("Cumulative cost in RMB"),
		field.String("template_id").
			Immutable(),
		field.Int("template_version").
			Default(1).
			Comment("Snapshot of the template version at creation"),
		field.String("project_id").
			Optional().
			Nillable(),
		field.Text("plan").
			Optional().
			Comment("Raw plan text, set during interactive planning"),
		field.JSON("routing_decisions", []models.RoutingDecision{}).
			Optional().
			Comment("Ordered audit trail of dynamic routing decisions"),
		field.String("branch_name").
			Optional().
			Nillable().
			Comment("Worktree branch, set after push"),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Worker id holding the claim, for multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When processing began (pending/claimed to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", TaskTemplate.Type).
			Ref("tasks").
			Field("template_id").
			Unique().
			Required().
			Immutable(),
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique(),
		edge.To("stages", TaskStage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("gates", HumanGate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("logs", StageLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("breakers", CircuitBreaker.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("kpis", KPIMetric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("project_id"),

		// Claim scans oldest pending first.
		index.Fields("status", "created_at"),
		// Orphan detection scans by heartbeat age.
		index.Fields("status", "heartbeat_at"),
	}
}
