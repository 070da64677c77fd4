// Package cli implements the interactive terminal front-end: a small REPL
// bound to the code session manager, plus a background watcher that feeds the
// manager clock ticks and announces expiry and auto-refresh events.
package cli
