// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_task_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6]},
			},
		},
	}
	// CircuitBreakersColumns holds the columns for the "circuit_breakers" table.
	CircuitBreakersColumns = []*schema.Column{
		{Name: "breaker_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "triggered_by", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "triggered_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// CircuitBreakersTable holds the schema information for the "circuit_breakers" table.
	CircuitBreakersTable = &schema.Table{
		Name:       "circuit_breakers",
		Columns:    CircuitBreakersColumns,
		PrimaryKey: []*schema.Column{CircuitBreakersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "circuit_breakers_tasks_breakers",
				Columns:    []*schema.Column{CircuitBreakersColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "circuitbreaker_task_id",
				Unique:  false,
				Columns: []*schema.Column{CircuitBreakersColumns[7]},
			},
			{
				Name:    "circuitbreaker_resolved_at",
				Unique:  false,
				Columns: []*schema.Column{CircuitBreakersColumns[5]},
			},
		},
	}
	// HumanGatesColumns holds the columns for the "human_gates" table.
	HumanGatesColumns = []*schema.Column{
		{Name: "gate_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "agent_role", Type: field.TypeString, Nullable: true},
		{Name: "gate_type", Type: field.TypeEnum, Enums: []string{"human_approve", "plan_review", "confidence_review"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "revised"}, Default: "pending"},
		{Name: "reviewer", Type: field.TypeString, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "revised_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "is_dynamic", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// HumanGatesTable holds the schema information for the "human_gates" table.
	HumanGatesTable = &schema.Table{
		Name:       "human_gates",
		Columns:    HumanGatesColumns,
		PrimaryKey: []*schema.Column{HumanGatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "human_gates_tasks_gates",
				Columns:    []*schema.Column{HumanGatesColumns[12]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "humangate_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{HumanGatesColumns[4], HumanGatesColumns[10]},
			},
			{
				Name:    "humangate_task_id",
				Unique:  false,
				Columns: []*schema.Column{HumanGatesColumns[12]},
			},
			{
				Name:    "humangate_gate_type",
				Unique:  false,
				Columns: []*schema.Column{HumanGatesColumns[3]},
			},
		},
	}
	// KpiMetricsColumns holds the columns for the "kpi_metrics" table.
	KpiMetricsColumns = []*schema.Column{
		{Name: "kpi_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// KpiMetricsTable holds the schema information for the "kpi_metrics" table.
	KpiMetricsTable = &schema.Table{
		Name:       "kpi_metrics",
		Columns:    KpiMetricsColumns,
		PrimaryKey: []*schema.Column{KpiMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "kpi_metrics_tasks_kpis",
				Columns:    []*schema.Column{KpiMetricsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "kpimetric_task_id",
				Unique:  false,
				Columns: []*schema.Column{KpiMetricsColumns[5]},
			},
			{
				Name:    "kpimetric_name_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{KpiMetricsColumns[1], KpiMetricsColumns[4]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "repo_url", Type: field.TypeString, Nullable: true},
		{Name: "tech_stack", Type: field.TypeJSON, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// SkillFeedbackColumns holds the columns for the "skill_feedback" table.
	SkillFeedbackColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "agent_role", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "gate_id", Type: field.TypeString, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "lesson", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SkillFeedbackTable holds the schema information for the "skill_feedback" table.
	SkillFeedbackTable = &schema.Table{
		Name:       "skill_feedback",
		Columns:    SkillFeedbackColumns,
		PrimaryKey: []*schema.Column{SkillFeedbackColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillfeedback_agent_role_created_at",
				Unique:  false,
				Columns: []*schema.Column{SkillFeedbackColumns[1], SkillFeedbackColumns[6]},
			},
			{
				Name:    "skillfeedback_task_id",
				Unique:  false,
				Columns: []*schema.Column{SkillFeedbackColumns[2]},
			},
		},
	}
	// TaskStageLogsColumns holds the columns for the "task_stage_logs" table.
	TaskStageLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "stage_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"system", "llm", "tool"}, Default: "system"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "success", "failed", "cancelled"}, Default: "running"},
		{Name: "request", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "command", Type: field.TypeString, Nullable: true},
		{Name: "command_args", Type: field.TypeJSON, Nullable: true},
		{Name: "workspace", Type: field.TypeString, Nullable: true},
		{Name: "execution_mode", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "truncated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskStageLogsTable holds the schema information for the "task_stage_logs" table.
	TaskStageLogsTable = &schema.Table{
		Name:       "task_stage_logs",
		Columns:    TaskStageLogsColumns,
		PrimaryKey: []*schema.Column{TaskStageLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_stage_logs_tasks_logs",
				Columns:    []*schema.Column{TaskStageLogsColumns[19]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stagelog_task_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{TaskStageLogsColumns[19], TaskStageLogsColumns[3]},
			},
			{
				Name:    "stagelog_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskStageLogsColumns[19], TaskStageLogsColumns[17]},
			},
			{
				Name:    "stagelog_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{TaskStageLogsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "claimed", "running", "planning", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "template_version", Type: field.TypeInt, Default: 1},
		{Name: "plan", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "routing_decisions", Type: field.TypeJSON, Nullable: true},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "template_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[19]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_task_templates_tasks",
				Columns:    []*schema.Column{TasksColumns[20]},
				RefColumns: []*schema.Column{TaskTemplatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_project_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[19]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[14]},
			},
			{
				Name:    "task_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[18]},
			},
		},
	}
	// TaskStagesColumns holds the columns for the "task_stages" table.
	TaskStagesColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "agent_role", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "exec_order", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "turns_used", Type: field.TypeInt, Default: 0},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "structured", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "failure_category", Type: field.TypeEnum, Nullable: true, Enums: []string{"transient", "tool_error", "resource", "semantic", "gate_rejected", "unknown"}},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "execution_count", Type: field.TypeInt, Default: 0},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskStagesTable holds the schema information for the "task_stages" table.
	TaskStagesTable = &schema.Table{
		Name:       "task_stages",
		Columns:    TaskStagesColumns,
		PrimaryKey: []*schema.Column{TaskStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_stages_tasks_stages",
				Columns:    []*schema.Column{TaskStagesColumns[17]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskstage_task_id_name",
				Unique:  true,
				Columns: []*schema.Column{TaskStagesColumns[17], TaskStagesColumns[1]},
			},
			{
				Name:    "taskstage_task_id_exec_order",
				Unique:  false,
				Columns: []*schema.Column{TaskStagesColumns[17], TaskStagesColumns[4]},
			},
			{
				Name:    "taskstage_status",
				Unique:  false,
				Columns: []*schema.Column{TaskStagesColumns[3]},
			},
		},
	}
	// TaskTemplatesColumns holds the columns for the "task_templates" table.
	TaskTemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stages", Type: field.TypeJSON},
		{Name: "gates", Type: field.TypeJSON, Nullable: true},
		{Name: "interactive", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TaskTemplatesTable holds the schema information for the "task_templates" table.
	TaskTemplatesTable = &schema.Table{
		Name:       "task_templates",
		Columns:    TaskTemplatesColumns,
		PrimaryKey: []*schema.Column{TaskTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tasktemplate_name_version",
				Unique:  true,
				Columns: []*schema.Column{TaskTemplatesColumns[1], TaskTemplatesColumns[2]},
			},
		},
	}
	// TriggerEventsColumns holds the columns for the "trigger_events" table.
	TriggerEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "task_created", "ignored", "error"}, Default: "received"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "rule_id", Type: field.TypeString, Nullable: true},
	}
	// TriggerEventsTable holds the schema information for the "trigger_events" table.
	TriggerEventsTable = &schema.Table{
		Name:       "trigger_events",
		Columns:    TriggerEventsColumns,
		PrimaryKey: []*schema.Column{TriggerEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trigger_events_trigger_rules_events",
				Columns:    []*schema.Column{TriggerEventsColumns[6]},
				RefColumns: []*schema.Column{TriggerRulesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "triggerevent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TriggerEventsColumns[3]},
			},
			{
				Name:    "triggerevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TriggerEventsColumns[5]},
			},
		},
	}
	// TriggerRulesColumns holds the columns for the "trigger_rules" table.
	TriggerRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "rule_type", Type: field.TypeEnum, Enums: []string{"cron", "webhook"}},
		{Name: "expression", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TriggerRulesTable holds the schema information for the "trigger_rules" table.
	TriggerRulesTable = &schema.Table{
		Name:       "trigger_rules",
		Columns:    TriggerRulesColumns,
		PrimaryKey: []*schema.Column{TriggerRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "triggerrule_enabled",
				Unique:  false,
				Columns: []*schema.Column{TriggerRulesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CircuitBreakersTable,
		HumanGatesTable,
		KpiMetricsTable,
		ProjectsTable,
		SkillFeedbackTable,
		TaskStageLogsTable,
		TasksTable,
		TaskStagesTable,
		TaskTemplatesTable,
		TriggerEventsTable,
		TriggerRulesTable,
	}
)

func init() {
	CircuitBreakersTable.ForeignKeys[0].RefTable = TasksTable
	HumanGatesTable.ForeignKeys[0].RefTable = TasksTable
	KpiMetricsTable.ForeignKeys[0].RefTable = TasksTable
	SkillFeedbackTable.Annotation = &entsql.Annotation{
		Table: "skill_feedback",
	}
	TaskStageLogsTable.ForeignKeys[0].RefTable = TasksTable
	TaskStageLogsTable.Annotation = &entsql.Annotation{
		Table: "task_stage_logs",
	}
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[1].RefTable = TaskTemplatesTable
	TaskStagesTable.ForeignKeys[0].RefTable = TasksTable
	TriggerEventsTable.ForeignKeys[0].RefTable = TriggerRulesTable
}
