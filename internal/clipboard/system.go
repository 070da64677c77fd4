package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/okarpushin/otpdesk/internal/common"
)

// System writes to the platform clipboard.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return common.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", common.ErrClipboardUnavailable, err)
	}
	return nil
}
