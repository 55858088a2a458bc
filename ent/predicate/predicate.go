// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// CircuitBreaker is the predicate function for circuitbreaker builders.
type CircuitBreaker func(*sql.Selector)

// HumanGate is the predicate function for humangate builders.
type HumanGate func(*sql.Selector)

// KPIMetric is the predicate function for kpimetric builders.
type KPIMetric func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// SkillFeedback is the predicate function for skillfeedback builders.
type SkillFeedback func(*sql.Selector)

// StageLog is the predicate function for stagelog builders.
type StageLog func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskStage is the predicate function for taskstage builders.
type TaskStage func(*sql.Selector)

// TaskTemplate is the predicate function for tasktemplate builders.
type TaskTemplate func(*sql.Selector)

// TriggerEvent is the predicate function for triggerevent builders.
type TriggerEvent func(*sql.Selector)

// TriggerRule is the predicate function for triggerrule builders.
type TriggerRule func(*sql.Selector)
