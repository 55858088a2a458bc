package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a *database.Client against an isolated test
// schema, with the raw-SQL indexes the migrations normally apply. The
// gate store's one-pending-per-stage guarantee depends on the partial
// unique index, so store tests must come through here rather than
// using an ent client migrated with Schema.Create alone.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))

	// Schema drop and connection close ride on SetupTestDatabase's
	// cleanup.
	return database.NewClientFromEnt(entClient, db)
}
