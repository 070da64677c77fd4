package cli

import (
	"context"
	"sync"
	"time"

	"github.com/okarpushin/otpdesk/internal/models"
	"github.com/okarpushin/otpdesk/internal/services"
)

// fakeSession is a scripted SessionService for command-level tests.
type fakeSession struct {
	mu sync.Mutex

	active   *models.ActiveCode
	history  []models.HistoryEntry
	settings models.Settings
	state    services.SessionState
	auto     bool

	copied   string
	copyErr  error
	export   *services.Export
	exportErr error
	cleared  bool

	tickResults []services.TickResult
	tickDone    chan struct{}
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		settings: *models.DefaultSettings(),
		state:    services.StateIdle,
		tickDone: make(chan struct{}),
	}
}

func (f *fakeSession) Load(ctx context.Context) error { return nil }

func (f *fakeSession) Generate(ctx context.Context) *models.ActiveCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == nil {
		f.active = &models.ActiveCode{Codes: []string{"111111"}, GeneratedAt: time.Now()}
	}
	f.state = services.StateActive
	return f.active
}

func (f *fakeSession) Tick(ctx context.Context, now time.Time) services.TickResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tickResults) == 0 {
		select {
		case <-f.tickDone:
		default:
			close(f.tickDone)
		}
		return services.TickResult{State: f.state}
	}
	res := f.tickResults[0]
	f.tickResults = f.tickResults[1:]
	return res
}

func (f *fakeSession) Copy(ctx context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.copyErr != nil {
		return f.copyErr
	}
	if code == "" && f.active != nil {
		code = f.active.Joined()
	}
	f.copied = code
	return nil
}

func (f *fakeSession) Export(ctx context.Context) (*services.Export, error) {
	return f.export, f.exportErr
}

func (f *fakeSession) ClearHistory(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = nil
	f.cleared = true
	return nil
}

func (f *fakeSession) ToggleAuto() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auto = !f.auto
	return f.auto
}

func (f *fakeSession) AutoEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auto
}

func (f *fakeSession) UpdateSettings(ctx context.Context, mutate func(*models.Settings)) models.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.settings)
	f.settings.Normalize()
	return f.settings
}

func (f *fakeSession) Settings() models.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

func (f *fakeSession) History() []models.HistoryEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.history
}

func (f *fakeSession) Active() *models.ActiveCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *fakeSession) State() services.SessionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}
