package cli

import (
	"fmt"
	"time"

	"github.com/okarpushin/otpdesk/internal/models"
)

// formatRemaining renders a countdown as MM:SS (hours fold into minutes).
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// printActive lists the codes of a set with their 1-based indices.
func printActive(ac *models.ActiveCode) {
	if ac == nil {
		return
	}
	for i, code := range ac.Codes {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, code))
	}
	if ac.NeverExpires() {
		printlnFn("  never expires")
		return
	}
	printlnFn(fmt.Sprintf("  expires at %s", ac.ExpiresAt.Format("15:04:05")))
}

// historyLine renders one history entry for the list view.
func historyLine(i int, e models.HistoryEntry, now time.Time) string {
	mark := ""
	if e.Expired(now) {
		mark = " (expired)"
	}
	return fmt.Sprintf("%2d. %-10s %s  %s/%d%s",
		i+1, e.Code, e.GeneratedAt.Format("2006-01-02 15:04:05"), e.Type, e.Length, mark)
}
