// Package models defines the data types owned by the code session manager:
// user settings, the active code set and the generation history.
package models

import "time"

// CodeType selects the alphabet codes are drawn from.
type CodeType string

const (
	CodeTypeNumeric      CodeType = "numeric"
	CodeTypeAlphanumeric CodeType = "alphanumeric"
)

// Valid reports whether t is a known code type.
func (t CodeType) Valid() bool {
	return t == CodeTypeNumeric || t == CodeTypeAlphanumeric
}

// Supported code lengths.
var CodeLengths = []int{4, 6, 8}

// Batch size bounds.
const (
	MinBatchCount = 1
	MaxBatchCount = 10
)

// HistoryLimit caps the number of retained history entries. Oldest entries
// are evicted first.
const HistoryLimit = 20

// Settings is the single persisted settings record. It is loaded once at
// startup and overwritten wholesale on every change.
type Settings struct {
	// ExpiryMinutes is the code lifetime in minutes. Zero disables expiry.
	ExpiryMinutes int `json:"expiry_minutes"`

	// AutoRefresh allows regeneration when an expired code is ticked while
	// auto mode is on.
	AutoRefresh bool `json:"auto_refresh"`

	// SoundEnabled plays a short tone on successful generation.
	SoundEnabled bool `json:"sound_enabled"`

	// BatchCount is how many codes one generation produces (1..10).
	BatchCount int `json:"batch_count"`

	// Length is the number of characters per code (4, 6 or 8).
	Length int `json:"length"`

	// Type selects the code alphabet.
	Type CodeType `json:"type"`
}

// DefaultSettings returns the settings used on first run and as the fallback
// for malformed persisted records.
func DefaultSettings() *Settings {
	return &Settings{
		ExpiryMinutes: 5,
		AutoRefresh:   false,
		SoundEnabled:  true,
		BatchCount:    1,
		Length:        6,
		Type:          CodeTypeNumeric,
	}
}

// Normalize clamps out-of-range fields back to their defaults so a malformed
// persisted record degrades gracefully instead of failing the load.
func (s *Settings) Normalize() {
	def := DefaultSettings()

	if s.ExpiryMinutes < 0 {
		s.ExpiryMinutes = def.ExpiryMinutes
	}
	if s.BatchCount < MinBatchCount || s.BatchCount > MaxBatchCount {
		s.BatchCount = def.BatchCount
	}
	if !validLength(s.Length) {
		s.Length = def.Length
	}
	if !s.Type.Valid() {
		s.Type = def.Type
	}
}

// ExpiryDuration converts ExpiryMinutes to a time.Duration.
func (s *Settings) ExpiryDuration() time.Duration {
	return time.Duration(s.ExpiryMinutes) * time.Minute
}

func validLength(l int) bool {
	for _, known := range CodeLengths {
		if l == known {
			return true
		}
	}
	return false
}
