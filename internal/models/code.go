package models

import (
	"strings"
	"time"
)

// ActiveCode is the currently displayed code set: a single code or a batch
// sharing one generation time and expiry. Generating again replaces it
// wholesale; the prior set survives only through the history log.
type ActiveCode struct {
	Codes       []string
	GeneratedAt time.Time
	ExpiresAt   time.Time
}

// Single reports whether the set holds exactly one code.
func (a *ActiveCode) Single() bool {
	return len(a.Codes) == 1
}

// NeverExpires reports whether the countdown is disabled for this set.
func (a *ActiveCode) NeverExpires() bool {
	return a.ExpiresAt.IsZero()
}

// Joined returns all codes as one newline-separated string, the form used
// for clipboard writes of a whole batch.
func (a *ActiveCode) Joined() string {
	return strings.Join(a.Codes, "\n")
}

// Remaining returns the time left until expiry at the given instant,
// clamped at zero. Sets without an expiry always report zero.
func (a *ActiveCode) Remaining(now time.Time) time.Duration {
	if a.NeverExpires() {
		return 0
	}
	rem := a.ExpiresAt.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}
