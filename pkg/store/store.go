// Package store implements the durable persistence layer over the Ent
// client: tasks, stages, gates, the per-task event log, and the
// supporting entities around them. All methods return plain model
// structs; Ent types never cross the package boundary.
package store

import (
	"github.com/stewardhq/steward/ent"
)

// Store bundles all entity stores over one Ent client.
type Store struct {
	Tasks     *TaskStore
	Stages    *StageStore
	Gates     *GateStore
	Logs      *LogStore
	Audit     *AuditStore
	Breakers  *BreakerStore
	KPIs      *KPIStore
	Skills    *SkillStore
	Templates *TemplateStore
	Projects  *ProjectStore
	Triggers  *TriggerStore
}

// New creates the store bundle.
func New(client *ent.Client) *Store {
	return &Store{
		Tasks:     NewTaskStore(client),
		Stages:    NewStageStore(client),
		Gates:     NewGateStore(client),
		Logs:      NewLogStore(client),
		Audit:     NewAuditStore(client),
		Breakers:  NewBreakerStore(client),
		KPIs:      NewKPIStore(client),
		Skills:    NewSkillStore(client),
		Templates: NewTemplateStore(client),
		Projects:  NewProjectStore(client),
		Triggers:  NewTriggerStore(client),
	}
}
