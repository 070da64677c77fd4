// Package clipboard abstracts the write-only system clipboard so the session
// manager can be tested without touching the platform.
package clipboard

import "context"

// Clipboard writes text to a clipboard. The only failure mode is a
// platform-reported denial, surfaced as common.ErrClipboardUnavailable.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}
