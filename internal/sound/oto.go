package sound

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// OtoBeeper plays the notification tone through the system audio device.
// The underlying oto context is created lazily on the first Play and reused
// afterwards; oto allows at most one context per process.
type OtoBeeper struct {
	mu  sync.Mutex
	ctx *oto.Context
}

func NewOtoBeeper() *OtoBeeper {
	return &OtoBeeper{}
}

func (b *OtoBeeper) Play(ctx context.Context) error {
	audioCtx, err := b.context(ctx)
	if err != nil {
		return err
	}

	player := audioCtx.NewPlayer(bytes.NewReader(NotifyTone()))
	defer player.Close()
	player.Play()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
	return nil
}

func (b *OtoBeeper) context(ctx context.Context) (*oto.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctx != nil {
		return b.ctx, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	audioCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	select {
	case <-ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	b.ctx = audioCtx
	return b.ctx, nil
}
