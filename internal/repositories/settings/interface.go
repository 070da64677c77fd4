package settings

import (
	"context"

	"github.com/okarpushin/otpdesk/internal/models"
)

// Repository persists the single settings record.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Load returns the persisted settings record, or nil when none has been
	// saved yet.
	Load(ctx context.Context) (*models.Settings, error)

	// Save overwrites the settings record wholesale.
	Save(ctx context.Context, s *models.Settings) error
}
