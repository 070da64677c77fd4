package cli

import (
	"context"
	"os"
	"time"
)

// History lists previously generated codes, newest first.
func (a *App) History(ctx context.Context) error {
	entries := a.svc.History()
	if len(entries) == 0 {
		printlnFn("History is empty")
		return nil
	}

	now := time.Now()
	for i, e := range entries {
		printlnFn(historyLine(i, e, now))
	}
	return nil
}

// Clear empties the history after a confirmation in interactive sessions.
func (a *App) Clear(ctx context.Context) error {
	if a.interactive {
		answer, err := GetSimpleText(a.reader, "Clear history? (y/N)", os.Stdout)
		if err != nil {
			return err
		}
		if answer != "y" && answer != "Y" {
			printlnFn("Cancelled")
			return nil
		}
	}

	if err := a.svc.ClearHistory(ctx); err != nil {
		printlnFn("Clear failed:", err)
		return err
	}
	printlnFn("History cleared")
	return nil
}
