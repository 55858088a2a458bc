package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageLog holds the schema definition for the StageLog entity: the
// append-only per-task event log. Sequence numbers are assigned by the
// store and are contiguous per task starting at 1.
type StageLog struct {
	ent.Schema
}

// Fields of the StageLog.
func (StageLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("stage_id").
			Optional().
			Nillable().
			Comment("Null for task-level events"),
		field.String("correlation_id").
			Optional().
			Comment("Threads all records of one sub-operation"),
		field.Int("sequence").
			Comment("Monotonic per task, starting at 1"),
		field.String("event_type"),
		field.Enum("source").
			Values("system", "llm", "tool").
			Default("system"),
		field.Enum("status").
			Values("running", "success", "failed", "cancelled").
			Default("running"),
		field.Text("request").
			Optional(),
		field.Text("response").
			Optional(),
		field.String("command").
			Optional(),
		field.JSON("command_args", map[string]interface{}{}).
			Optional(),
		field.String("workspace").
			Optional(),
		field.String("execution_mode").
			Optional().
			Comment("'in_process' or 'sandbox'"),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.Text("result").
			Optional(),
		field.Text("summary").
			Optional(),
		field.Bool("truncated").
			Default(false).
			Comment("Set when request/response/result exceeded 50 KB"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Optional().
			Nillable(),
	}
}

// Edges of the StageLog.
func (StageLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("logs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageLog.
func (StageLog) Indexes() []ent.Index {
	return []ent.Index{
		// Canonical read order and the sequence uniqueness backstop.
		index.Fields("task_id", "sequence").
			Unique(),
		index.Fields("task_id", "created_at"),
		index.Fields("correlation_id"),
	}
}

// Annotations of the StageLog.
func (StageLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "task_stage_logs"},
	}
}
