package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_CreatesCredentialsTable(t *testing.T) {
	ctx := context.Background()

	database, err := InitDatabase(ctx, "file:initdb?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.ExecContext(ctx, `INSERT INTO credentials(key, value) VALUES('authToken', x'01')`)
	assert.NoError(t, err)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	ctx := context.Background()

	database, err := InitDatabase(ctx, "file:initdb2?mode=memory&cache=shared")
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, database))
	_ = database.Close()
}
