package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type outputRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *outputRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "")
}

// captureOutput swaps the printlnFn seam for the duration of the test.
func captureOutput(t *testing.T) *outputRecorder {
	t.Helper()
	rec := &outputRecorder{}
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.lines = append(rec.lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return rec
}

type stubExec struct {
	calls   []string
	setArgs []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Generate(ctx context.Context) error { return s.record("generate") }
func (s *stubExec) Copy(ctx context.Context, args []string) error {
	s.setArgs = args
	return s.record("copy")
}
func (s *stubExec) Export(ctx context.Context) error   { return s.record("export") }
func (s *stubExec) History(ctx context.Context) error  { return s.record("history") }
func (s *stubExec) Clear(ctx context.Context) error    { return s.record("clear") }
func (s *stubExec) Auto(ctx context.Context) error     { return s.record("auto") }
func (s *stubExec) Settings(ctx context.Context) error { return s.record("settings") }
func (s *stubExec) Set(ctx context.Context, args []string) error {
	s.setArgs = args
	return s.record("set")
}

func runScript(t *testing.T, script string) (*stubExec, *outputRecorder) {
	t.Helper()
	rec := captureOutput(t)
	stub := &stubExec{}
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "(idle)" }, scanner)
	return stub, rec
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub, _ := runScript(t, "generate\ncopy 2\nexport\nhistory\nclear\nauto\nsettings\nexit\n")

	assert.Equal(t, []string{"generate", "copy", "export", "history", "clear", "auto", "settings"}, stub.calls)
	assert.Equal(t, []string{"2"}, stub.setArgs)
}

func TestRunREPL_ShortForms(t *testing.T) {
	stub, _ := runScript(t, "g\nh\nquit\n")
	assert.Equal(t, []string{"generate", "history"}, stub.calls)
}

func TestRunREPL_SetArguments(t *testing.T) {
	stub, _ := runScript(t, "set length 8\nexit\n")
	assert.Equal(t, []string{"set"}, stub.calls)
	assert.Equal(t, []string{"length", "8"}, stub.setArgs)
}

func TestRunREPL_UnknownAndEmpty(t *testing.T) {
	stub, rec := runScript(t, "\nbogus\nexit\n")
	assert.Empty(t, stub.calls)
	assert.Contains(t, rec.String(), "Unknown command: bogus")
	assert.Contains(t, rec.String(), "Bye!")
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	stub, _ := runScript(t, "generate\n")
	assert.Equal(t, []string{"generate"}, stub.calls)
}

func TestRunREPL_Help(t *testing.T) {
	_, rec := runScript(t, "help\nexit\n")
	assert.Contains(t, rec.String(), "Available commands")
}
