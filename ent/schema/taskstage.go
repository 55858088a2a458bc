package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/stewardhq/steward/pkg/models"
)

// TaskStage holds the schema definition for the TaskStage entity: one
// step of a task, materialized from the template at task creation.
type TaskStage struct {
	ent.Schema
}

// Fields of the TaskStage.
func (TaskStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("name").
			Comment("Stage name from the template, unique within the task"),
		field.String("agent_role").
			Comment("e.g. 'architect', 'coder', 'tester'"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.Int("exec_order").
			Comment("Template order; equal values form a parallel group"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Default(0),
		field.Int("turns_used").
			Default(0),
		field.Text("output").
			Optional().
			Comment("Raw agent output text"),
		field.JSON("structured", &models.StructuredOutput{}).
			Optional().
			Comment("Typed contract extracted from the output"),
		field.String("error").
			Optional().
			Nillable(),
		field.Enum("failure_category").
			Values("transient", "tool_error", "resource", "semantic", "gate_rejected", "unknown").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional().
			Nillable().
			Comment("Self-assessed confidence 0..1 from the structured output"),
		field.Int("retry_count").
			Default(0).
			Comment("Same-execution retries (transient/tool_error/semantic)"),
		field.Int("execution_count").
			Default(0).
			Comment("Graph re-entries; bounded by the template's max_executions"),
	}
}

// Edges of the TaskStage.
func (TaskStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("stages").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskStage.
func (TaskStage) Indexes() []ent.Index {
	return []ent.Index{
		// One row per stage name within a task; re-execution reuses the row.
		index.Fields("task_id", "name").
			Unique(),
		index.Fields("task_id", "exec_order"),
		index.Fields("status"),
	}
}
