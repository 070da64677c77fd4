// Package common defines shared constants and sentinel errors used across
// otpdesk components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session-level errors.
	ErrorNoActiveCode = errors.New("no active code")

	// ErrClipboardUnavailable reports that the platform clipboard refused or
	// cannot accept a write. It is surfaced to the caller and never retried.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
