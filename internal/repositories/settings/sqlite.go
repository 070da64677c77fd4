package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okarpushin/otpdesk/internal/dbx"
	"github.com/okarpushin/otpdesk/internal/models"
)

// SQLiteRepository implements Repository over a single-row settings table.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load reads the settings record. A missing record is not an error; nil is
// returned so the caller can fall back to defaults.
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Settings, error) {
	query := `select expiry_minutes, auto_refresh, sound_enabled, batch_count, length, type
			from settings where id = 1`
	row := r.db.QueryRowContext(ctx, query)

	s := &models.Settings{}
	var autoRefresh, soundEnabled int
	err := row.Scan(&s.ExpiryMinutes, &autoRefresh, &soundEnabled, &s.BatchCount, &s.Length, &s.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	s.AutoRefresh = autoRefresh != 0
	s.SoundEnabled = soundEnabled != 0
	return s, nil
}

// Save upserts the single settings row.
func (r *SQLiteRepository) Save(ctx context.Context, s *models.Settings) error {
	query := ` INSERT INTO settings (id, expiry_minutes, auto_refresh, sound_enabled, batch_count, length, type)
			values (1, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET expiry_minutes = excluded.expiry_minutes,
				auto_refresh = excluded.auto_refresh,
				sound_enabled = excluded.sound_enabled,
				batch_count = excluded.batch_count,
				length = excluded.length,
				type = excluded.type
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ExpiryMinutes, boolToInt(s.AutoRefresh), boolToInt(s.SoundEnabled), s.BatchCount, s.Length, s.Type)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
