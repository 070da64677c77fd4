package models

import "time"

// HistoryEntry is one generated code kept in the bounded, most-recent-first
// history log.
type HistoryEntry struct {
	// Id is a globally unique identifier for the entry.
	Id string

	// Code is the generated code text.
	Code string

	// GeneratedAt is when the code was drawn, in UTC.
	GeneratedAt time.Time

	// ExpiresAt is GeneratedAt plus the expiry window. Zero means the code
	// never expires.
	ExpiresAt time.Time

	// Length is the character count the code was drawn with.
	Length int

	// Type is the alphabet the code was drawn from.
	Type CodeType
}

// Expired reports whether the entry's expiry has passed at the given time.
// Entries without an expiry never report expired.
func (e HistoryEntry) Expired(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(e.ExpiresAt)
}
