package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/okarpushin/otpdesk/internal/dbx"
	"github.com/okarpushin/otpdesk/internal/models"
)

// SQLiteRepository implements Repository over a history table. Timestamps are
// stored as epoch milliseconds; zero expiry means the code never expires.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetAll lists entries ordered by their snapshot position (newest first).
// Rows that fail to scan are skipped so one malformed row cannot take the
// whole history down.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.HistoryEntry, error) {
	query := `select id, code, generated_at, expires_at, length, type from history order by position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select history: %w", err)
	}
	defer rows.Close()

	var result []models.HistoryEntry
	for rows.Next() {
		var item models.HistoryEntry
		var generatedAt, expiresAt int64
		if err := rows.Scan(&item.Id, &item.Code, &generatedAt, &expiresAt, &item.Length, &item.Type); err != nil {
			continue
		}
		item.GeneratedAt = time.UnixMilli(generatedAt).UTC()
		if expiresAt != 0 {
			item.ExpiresAt = time.UnixMilli(expiresAt).UTC()
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceAll writes the snapshot inside one transaction: delete everything,
// then insert the entries with their positions.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, entries []models.HistoryEntry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		query := ` INSERT INTO history (id, code, generated_at, expires_at, length, type, position)
				values (?, ?, ?, ?, ?, ?, ?)
		`
		for pos, e := range entries {
			var expiresAt int64
			if !e.ExpiresAt.IsZero() {
				expiresAt = e.ExpiresAt.UnixMilli()
			}
			_, err := tx.ExecContext(ctx, query,
				e.Id, e.Code, e.GeneratedAt.UnixMilli(), expiresAt, e.Length, e.Type, pos)
			if err != nil {
				return fmt.Errorf("failed to insert history entry: %w", err)
			}
		}
		return nil
	})
}

// Clear removes the persisted snapshot.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
