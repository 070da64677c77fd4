package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okarpushin/otpdesk/internal/common"
)

// Export is a rendered text document ready to be written to disk.
type Export struct {
	// FileName carries the current date, e.g. "otpdesk-codes-2026-08-25.txt".
	FileName string
	// Body holds one block per code: index, code, generated time, expiry time.
	Body string
}

const (
	exportTimeLayout   = "2006-01-02 15:04:05"
	exportNameTemplate = "otpdesk-codes-%s.txt"
)

// Export renders the active code set. Construction is total over in-memory
// state; the only error is having nothing to export.
func (s *sessionService) Export(ctx context.Context) (*Export, error) {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active == nil {
		return nil, common.ErrorNoActiveCode
	}

	expires := "never"
	if !active.NeverExpires() {
		expires = active.ExpiresAt.Format(exportTimeLayout)
	}

	var b strings.Builder
	for i, code := range active.Codes {
		fmt.Fprintf(&b, "Code %d: %s\n", i+1, code)
		fmt.Fprintf(&b, "Generated: %s\n", active.GeneratedAt.Format(exportTimeLayout))
		fmt.Fprintf(&b, "Expires: %s\n", expires)
		if i < len(active.Codes)-1 {
			b.WriteString("\n")
		}
	}

	return &Export{
		FileName: fmt.Sprintf(exportNameTemplate, s.now().Format(time.DateOnly)),
		Body:     b.String(),
	}, nil
}
