package clipboard

import (
	"context"
	"sync"
)

// Memory is an in-process Clipboard used in tests and headless environments.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

func NewMemory() *Memory {
	return &Memory{}
}

// Fail makes subsequent writes return err.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Memory) Write(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
