package sound

import "context"

// Beeper plays the notification tone.
type Beeper interface {
	Play(ctx context.Context) error
}

// Nop is a Beeper that does nothing, for tests and headless environments.
type Nop struct{}

func (Nop) Play(ctx context.Context) error { return nil }
