package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/okarpushin/otpdesk/internal/common"
	"github.com/okarpushin/otpdesk/internal/filex"
)

// Export writes the active code set to a dated text file in the configured
// export directory.
func (a *App) Export(ctx context.Context) error {
	out, err := a.svc.Export(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNoActiveCode) {
			printlnFn("Nothing to export, generate a code first")
		} else {
			printlnFn("Export failed:", err)
		}
		return err
	}

	dir, err := filex.EnsureDir(a.config.ExportDir)
	if err != nil {
		printlnFn("Export failed:", err)
		return err
	}

	path := filepath.Join(dir, out.FileName)
	if err := os.WriteFile(path, []byte(out.Body), 0o600); err != nil {
		printlnFn("Export failed:", err)
		return err
	}

	printlnFn("Exported to", path)
	return nil
}
