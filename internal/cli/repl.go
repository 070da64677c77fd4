package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Generate(ctx context.Context) error
	Copy(ctx context.Context, args []string) error
	Export(ctx context.Context) error
	History(ctx context.Context) error
	Clear(ctx context.Context) error
	Auto(ctx context.Context) error
	Settings(ctx context.Context) error
	Set(ctx context.Context, args []string) error
}

// runREPL starts the interactive command loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("otp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (g)enerate, copy [n], export, (h)istory, clear, auto, settings, set <name> <value>, exit")

		case "g", "generate":
			_ = a.Generate(ctx)

		case "copy":
			_ = a.Copy(ctx, args)

		case "export":
			_ = a.Export(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "auto":
			_ = a.Auto(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "set":
			_ = a.Set(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
