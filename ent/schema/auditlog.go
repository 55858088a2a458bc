package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Audit rows are not cascaded from tasks; they outlive their subject.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Optional().
			Comment("Plain reference, intentionally not a foreign key"),
		field.String("action"),
		field.JSON("detail", map[string]interface{}{}).
			Optional(),
		field.Enum("risk_level").
			Values("low", "medium", "high").
			Default("low"),
		field.String("actor").
			Optional().
			Comment("'engine' or an operator identity"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("action"),
		index.Fields("created_at"),
	}
}
