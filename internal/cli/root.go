package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/okarpushin/otpdesk/internal/services"
)

// getStatus renders the prompt status: lifecycle state, remaining time while
// counting down, and an auto marker while auto mode is on.
func (a *App) getStatus() string {
	s := string(a.svc.State())

	if active := a.svc.Active(); active != nil && !active.NeverExpires() && a.svc.State() == services.StateActive {
		s = s + " " + formatRemaining(active.Remaining(time.Now()))
	}
	if a.svc.AutoEnabled() {
		s = s + " auto"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to otpdesk (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
