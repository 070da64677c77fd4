package history

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/okarpushin/otpdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE history (
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL,
  generated_at INTEGER NOT NULL,
  expires_at INTEGER NOT NULL,
  length INTEGER NOT NULL,
  type TEXT NOT NULL,
  position INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func entry(id, code string, t0 time.Time, expiry time.Duration) models.HistoryEntry {
	e := models.HistoryEntry{
		Id:          id,
		Code:        code,
		GeneratedAt: t0,
		Length:      len(code),
		Type:        models.CodeTypeNumeric,
	}
	if expiry > 0 {
		e.ExpiresAt = t0.Add(expiry)
	}
	return e
}

func TestReplaceAllGetAll_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	t0 := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	in := []models.HistoryEntry{
		entry("c", "333333", t0.Add(2*time.Second), 5*time.Minute),
		entry("b", "222222", t0.Add(time.Second), 5*time.Minute),
		entry("a", "111111", t0, 0), // never expires
	}
	require.NoError(t, r.ReplaceAll(ctx, in))

	out, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.True(t, out[2].ExpiresAt.IsZero())
}

func TestReplaceAll_OverwritesSnapshot(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	t0 := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.ReplaceAll(ctx, []models.HistoryEntry{
		entry("a", "1111", t0, time.Minute),
		entry("b", "2222", t0, time.Minute),
	}))
	require.NoError(t, r.ReplaceAll(ctx, []models.HistoryEntry{
		entry("c", "3333", t0, time.Minute),
	}))

	out, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Id)
}

func TestClear(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	t0 := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, r.ReplaceAll(ctx, []models.HistoryEntry{entry("a", "1234", t0, time.Minute)}))
	require.NoError(t, r.Clear(ctx))

	out, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetAll_PreservesOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	t0 := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	var in []models.HistoryEntry
	for i := 0; i < models.HistoryLimit; i++ {
		in = append(in, entry(string(rune('a'+i)), "123456", t0.Add(time.Duration(i)*time.Second), time.Minute))
	}
	require.NoError(t, r.ReplaceAll(ctx, in))

	out, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, models.HistoryLimit)
	for i := range in {
		assert.Equal(t, in[i].Id, out[i].Id)
	}
}
