package models

import (
	"time"
)

// Project groups tasks and scopes memory buckets and repositories.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RepoURL     string    `json:"repo_url,omitempty"`
	TechStack   []string  `json:"tech_stack,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest contains fields for creating a project.
type CreateProjectRequest struct {
	Name        string   `json:"name"`
	RepoURL     string   `json:"repo_url,omitempty"`
	TechStack   []string `json:"tech_stack,omitempty"`
	Description string   `json:"description,omitempty"`
}
