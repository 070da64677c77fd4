// Package services contains the code session manager: the component that owns
// generation, expiry timing, history and settings persistence. A presentation
// layer (the CLI) binds to its state and actions; time is fed in from the
// outside so the expiry logic stays testable.
package services
