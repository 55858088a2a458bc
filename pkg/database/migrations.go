package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over task titles/descriptions and stage
// outputs from the dashboard.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_title_description_gin
		ON tasks USING gin(to_tsvector('english', title || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create tasks GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_task_stages_output_gin
		ON task_stages USING gin(to_tsvector('english', COALESCE(output, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create stage output GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes
// that Ent cannot express. At most one pending gate may exist per
// (task, stage) at any time; resolved gates from earlier retry rounds
// are exempt.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS humangate_task_stage_pending
		ON human_gates (task_id, stage_name)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending gate index: %w", err)
	}

	return nil
}
