package history

import (
	"context"

	"github.com/okarpushin/otpdesk/internal/models"
)

// Repository persists the bounded history log as a full snapshot.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// GetAll returns all entries, newest first.
	GetAll(ctx context.Context) ([]models.HistoryEntry, error)

	// ReplaceAll overwrites the persisted snapshot with the given entries,
	// preserving their order.
	ReplaceAll(ctx context.Context, entries []models.HistoryEntry) error

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
