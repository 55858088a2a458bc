package models

import (
	"time"
)

// Template is an immutable task blueprint. New versions are new rows
// chained through ParentID.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Version     int        `json:"version"`
	ParentID    string     `json:"parent_id,omitempty"`
	Description string     `json:"description,omitempty"`
	Stages      []StageDef `json:"stages"`
	Gates       []GateDef  `json:"gates,omitempty"`
	Interactive bool       `json:"interactive"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GateAfter returns the gate definition placed after the named stage, or nil.
func (t *Template) GateAfter(stageName string) *GateDef {
	for i := range t.Gates {
		if t.Gates[i].AfterStage == stageName {
			return &t.Gates[i]
		}
	}
	return nil
}

// StageDefByName returns the stage definition with the given name, or nil.
func (t *Template) StageDefByName(name string) *StageDef {
	for i := range t.Stages {
		if t.Stages[i].Name == name {
			return &t.Stages[i]
		}
	}
	return nil
}

// UsesDependsOn reports whether any stage declares explicit dependencies,
// which switches the engine to graph execution when enabled.
func (t *Template) UsesDependsOn() bool {
	for i := range t.Stages {
		if len(t.Stages[i].DependsOn) > 0 {
			return true
		}
	}
	return false
}

// CreateTemplateRequest contains fields for creating a template version.
type CreateTemplateRequest struct {
	Name        string     `json:"name"`
	ParentID    string     `json:"parent_id,omitempty"`
	Description string     `json:"description,omitempty"`
	Stages      []StageDef `json:"stages"`
	Gates       []GateDef  `json:"gates,omitempty"`
	Interactive bool       `json:"interactive"`
}
