package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "codes.db")
	ctx := context.Background()

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	// Migrations created both tables.
	for _, table := range []string{"settings", "history"} {
		var name string
		err := repos.DB.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}

	// Repositories work against the migrated schema.
	s, err := repos.Settings.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	h, err := repos.History.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, h)
}
