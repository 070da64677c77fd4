package cli

import (
	"context"
	"time"
)

// StartCountdownWatcher feeds the session manager clock ticks at the given
// interval and announces the transitions the user should see: expiry and
// auto-refresh. It returns when ctx is done.
func (a *App) StartCountdownWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			res := a.svc.Tick(ctx, time.Now())

			if res.Regenerated {
				printlnFn("Code expired, auto-refreshed:")
				printActive(res.Active)
				continue
			}
			if res.JustExpired {
				printlnFn("Code expired")
			}

		case <-ctx.Done():
			return
		}
	}
}
