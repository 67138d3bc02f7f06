// Package clipboard provides text stores for the "+ and "* registers.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// ErrUnavailable indicates the system clipboard could not be initialized.
var ErrUnavailable = errors.New("system clipboard unavailable")

// System reads and writes the operating system clipboard.
// Initialization is deferred to first use so that headless sessions that
// never touch "+ pay nothing.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem creates a system clipboard provider.
func NewSystem() *System {
	return &System{}
}

func (s *System) init() error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			s.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	return s.initErr
}

// Available reports whether the system clipboard can be used.
func (s *System) Available() bool {
	return s.init() == nil
}

// Read returns the clipboard text.
func (s *System) Read() (string, error) {
	if err := s.init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// Write replaces the clipboard text.
func (s *System) Write(text string) error {
	if err := s.init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Memory is an in-process clipboard, used when the system clipboard is
// unavailable.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Write replaces the stored text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Provider is the text store used by the register manager.
type Provider interface {
	Read() (string, error)
	Write(text string) error
}

// Open returns the system clipboard when it initializes, and an in-process
// clipboard otherwise. The second result reports whether the system
// clipboard is in use.
func Open() (Provider, bool) {
	s := NewSystem()
	if s.Available() {
		return s, true
	}
	return NewMemory(), false
}
