// Package storage opens the local SQLite database, applies the embedded
// migrations and wires up the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okarpushin/otpdesk/internal/migrations"
	"github.com/okarpushin/otpdesk/internal/repositories/history"
	"github.com/okarpushin/otpdesk/internal/repositories/settings"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Settings settings.Repository
	History  history.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	repos := &Repositories{
		Settings: settings.NewSQLiteRepository(db),
		History:  history.NewSQLiteRepository(db),
		DB:       db,
	}
	return repos, nil
}
