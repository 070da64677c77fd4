package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/okarpushin/otpdesk/internal/common"
)

// Generate draws a fresh code set and shows it.
func (a *App) Generate(ctx context.Context) error {
	ac := a.svc.Generate(ctx)
	if ac.Single() {
		printlnFn("Generated code:")
	} else {
		printlnFn(fmt.Sprintf("Generated %d codes:", len(ac.Codes)))
	}
	printActive(ac)
	return nil
}

// Copy puts the active set (or one code of it, selected by a 1-based index
// argument) on the system clipboard.
func (a *App) Copy(ctx context.Context, args []string) error {
	code := ""
	if len(args) > 0 {
		active := a.svc.Active()
		if active == nil {
			printlnFn("Nothing to copy, generate a code first")
			return common.ErrorNoActiveCode
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > len(active.Codes) {
			printlnFn(fmt.Sprintf("Usage: copy [1-%d]", len(active.Codes)))
			return fmt.Errorf("invalid code index: %q", args[0])
		}
		code = active.Codes[n-1]
	}

	if err := a.svc.Copy(ctx, code); err != nil {
		switch {
		case errors.Is(err, common.ErrorNoActiveCode):
			printlnFn("Nothing to copy, generate a code first")
		case errors.Is(err, common.ErrClipboardUnavailable):
			printlnFn("Clipboard is unavailable on this system")
		default:
			printlnFn("Copy failed:", err)
		}
		return err
	}

	printlnFn("Copied to clipboard")
	return nil
}
