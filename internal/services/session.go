package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okarpushin/otpdesk/internal/clipboard"
	"github.com/okarpushin/otpdesk/internal/codegen"
	"github.com/okarpushin/otpdesk/internal/common"
	"github.com/okarpushin/otpdesk/internal/logging"
	"github.com/okarpushin/otpdesk/internal/models"
	historyrepo "github.com/okarpushin/otpdesk/internal/repositories/history"
	settingsrepo "github.com/okarpushin/otpdesk/internal/repositories/settings"
	"github.com/okarpushin/otpdesk/internal/sound"
)

// SessionState describes the lifecycle of the active code set.
type SessionState string

const (
	// StateIdle means no code has been generated yet.
	StateIdle SessionState = "idle"
	// StateActive means a code set is displayed and not yet expired.
	StateActive SessionState = "active"
	// StateExpired means the code set is still displayed but past its expiry.
	StateExpired SessionState = "expired"
)

// TickResult is what one clock tick reports back to the presentation layer.
type TickResult struct {
	// State after the tick.
	State SessionState
	// Remaining time until expiry, clamped at zero. Always zero when the
	// countdown is disabled or no code is active.
	Remaining time.Duration
	// JustExpired is set on the tick that moved Active to Expired.
	JustExpired bool
	// Regenerated is set when auto-refresh produced a fresh code set.
	Regenerated bool
	// Active is the code set after the tick, nil while idle.
	Active *models.ActiveCode
}

// SessionService is the code session manager.
//
// All operations are safe for concurrent use; the REPL goroutine and the
// countdown watcher both enter the manager.
type SessionService interface {
	// Load restores persisted settings and history. Malformed records fall
	// back to defaults instead of failing.
	Load(ctx context.Context) error

	// Generate draws a fresh code set from the current settings, prepends the
	// codes to history (capped) and persists both snapshots. It always
	// succeeds; persistence failures are logged, not returned.
	Generate(ctx context.Context) *models.ActiveCode

	// Tick recomputes the remaining time at now. On reaching zero the state
	// moves to Expired and, when auto mode and auto-refresh are both on, a
	// fresh set is generated. Idempotent for a given now.
	Tick(ctx context.Context, now time.Time) TickResult

	// Copy writes the given code to the clipboard. An empty code copies the
	// whole active set, newline-joined.
	Copy(ctx context.Context, code string) error

	// Export renders the active code set into a flat text document.
	Export(ctx context.Context) (*Export, error)

	// ClearHistory empties the history and its persisted snapshot.
	ClearHistory(ctx context.Context) error

	// ToggleAuto flips the auto-run flag and returns the new value. The flag
	// is session-local and never persisted.
	ToggleAuto() bool

	// AutoEnabled reports the auto-run flag.
	AutoEnabled() bool

	// UpdateSettings applies mutate to the settings, normalizes the result
	// and persists it wholesale. The updated record is returned.
	UpdateSettings(ctx context.Context, mutate func(*models.Settings)) models.Settings

	// Settings returns a copy of the current settings.
	Settings() models.Settings

	// History returns a copy of the history, newest first.
	History() []models.HistoryEntry

	// Active returns the current code set, nil while idle.
	Active() *models.ActiveCode

	// State returns the current lifecycle state.
	State() SessionState
}

type sessionService struct {
	gen          *codegen.Generator
	settingsRepo settingsrepo.Repository
	historyRepo  historyrepo.Repository
	clip         clipboard.Clipboard
	beeper       sound.Beeper
	log          logging.Logger

	// now is a test seam for the generation timestamp. Tick gets its time
	// from the caller.
	now func() time.Time

	mu       sync.Mutex
	settings models.Settings
	history  []models.HistoryEntry
	active   *models.ActiveCode
	state    SessionState
	auto     bool
}

func NewSessionService(
	gen *codegen.Generator,
	settingsRepo settingsrepo.Repository,
	historyRepo historyrepo.Repository,
	clip clipboard.Clipboard,
	beeper sound.Beeper,
	log logging.Logger,
) SessionService {
	return &sessionService{
		gen:          gen,
		settingsRepo: settingsRepo,
		historyRepo:  historyRepo,
		clip:         clip,
		beeper:       beeper,
		log:          log,
		now:          time.Now,
		settings:     *models.DefaultSettings(),
		state:        StateIdle,
	}
}

func (s *sessionService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.settingsRepo.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load settings, falling back to defaults", "error", err)
	}
	if loaded != nil {
		loaded.Normalize()
		s.settings = *loaded
	}

	entries, err := s.historyRepo.GetAll(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load history, starting empty", "error", err)
		return nil
	}
	if len(entries) > models.HistoryLimit {
		entries = entries[:models.HistoryLimit]
	}
	s.history = entries
	return nil
}

func (s *sessionService) Generate(ctx context.Context) *models.ActiveCode {
	s.mu.Lock()
	ac := s.generateLocked(ctx, s.now())
	chime := s.settings.SoundEnabled
	s.mu.Unlock()

	if chime {
		go s.chime(ctx)
	}
	return ac
}

// generateLocked draws the batch, replaces the active set, updates history
// and persists both snapshots. Caller holds s.mu.
func (s *sessionService) generateLocked(ctx context.Context, now time.Time) *models.ActiveCode {
	st := s.settings

	codes := make([]string, st.BatchCount)
	for i := range codes {
		codes[i] = s.gen.Draw(st.Length, st.Type)
	}

	var expiresAt time.Time
	if st.ExpiryMinutes > 0 {
		expiresAt = now.Add(st.ExpiryDuration())
	}

	ac := &models.ActiveCode{Codes: codes, GeneratedAt: now, ExpiresAt: expiresAt}
	s.active = ac
	s.state = StateActive

	entries := make([]models.HistoryEntry, len(codes))
	for i, code := range codes {
		entries[i] = models.HistoryEntry{
			Id:          uuid.NewString(),
			Code:        code,
			GeneratedAt: now,
			ExpiresAt:   expiresAt,
			Length:      st.Length,
			Type:        st.Type,
		}
	}
	s.history = append(entries, s.history...)
	if len(s.history) > models.HistoryLimit {
		s.history = s.history[:models.HistoryLimit]
	}

	s.persistLocked(ctx)
	s.log.Info(ctx, "generated code set", "batch", len(codes), "length", st.Length, "type", st.Type)
	return ac
}

func (s *sessionService) Tick(ctx context.Context, now time.Time) TickResult {
	s.mu.Lock()

	res := TickResult{State: s.state, Active: s.active}
	if s.active == nil {
		s.mu.Unlock()
		return res
	}

	if s.active.NeverExpires() {
		// Countdown disabled: the set stays Active forever.
		s.mu.Unlock()
		return res
	}

	res.Remaining = s.active.Remaining(now)
	chime := false

	if res.Remaining == 0 {
		if s.state == StateActive {
			s.state = StateExpired
			res.JustExpired = true
			s.log.Info(ctx, "code set expired")
		}
		res.State = StateExpired

		if s.auto && s.settings.AutoRefresh {
			ac := s.generateLocked(ctx, now)
			res.Regenerated = true
			res.Active = ac
			res.State = StateActive
			res.Remaining = ac.Remaining(now)
			chime = s.settings.SoundEnabled
		}
	}

	s.mu.Unlock()

	if chime {
		go s.chime(ctx)
	}
	return res
}

func (s *sessionService) Copy(ctx context.Context, code string) error {
	if code == "" {
		s.mu.Lock()
		if s.active == nil {
			s.mu.Unlock()
			return common.ErrorNoActiveCode
		}
		code = s.active.Joined()
		s.mu.Unlock()
	}
	return s.clip.Write(ctx, code)
}

func (s *sessionService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()

	return s.historyRepo.Clear(ctx)
}

func (s *sessionService) ToggleAuto() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto = !s.auto
	return s.auto
}

func (s *sessionService) AutoEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auto
}

func (s *sessionService) UpdateSettings(ctx context.Context, mutate func(*models.Settings)) models.Settings {
	s.mu.Lock()
	mutate(&s.settings)
	s.settings.Normalize()
	updated := s.settings
	s.mu.Unlock()

	if err := s.settingsRepo.Save(ctx, &updated); err != nil {
		s.log.Error(ctx, "failed to persist settings", "error", err)
	}
	return updated
}

func (s *sessionService) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *sessionService) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *sessionService) Active() *models.ActiveCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *sessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// persistLocked writes both snapshots, fire-and-forget: the snapshots are
// idempotent and overwritten again on the next mutation, so failures are
// logged and the operation proceeds. Caller holds s.mu.
func (s *sessionService) persistLocked(ctx context.Context) {
	st := s.settings
	if err := s.settingsRepo.Save(ctx, &st); err != nil {
		s.log.Error(ctx, "failed to persist settings", "error", err)
	}
	if err := s.historyRepo.ReplaceAll(ctx, s.history); err != nil {
		s.log.Error(ctx, "failed to persist history", "error", err)
	}
}

func (s *sessionService) chime(ctx context.Context) {
	if err := s.beeper.Play(ctx); err != nil {
		s.log.Warn(ctx, "failed to play notification tone", "error", err)
	}
}
