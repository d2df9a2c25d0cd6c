package ui

import (
	"fmt"
	"sync"

	"github.com/fatih/color"
)

// ConsoleSink is an output sink backed by the terminal. Stdout lines are
// written plainly; error lines are dimmed red on stderr. The terminal is
// always visible, so Show and ShowAndActivate are no-ops — they exist for
// sinks owned by embedding surfaces (editors, panes) that can be raised.
type ConsoleSink struct {
	mu sync.Mutex
}

// NewConsoleSink returns a sink writing to the process's terminal.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{}
}

// WriteLine writes one line of output.
func (s *ConsoleSink) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(color.Output, line)
}

// WriteErrorLine writes one line of error output.
func (s *ConsoleSink) WriteErrorLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = color.New(color.FgRed).Fprintln(color.Error, line)
}

// Show is a no-op for a terminal sink.
func (s *ConsoleSink) Show() {}

// ShowAndActivate is a no-op for a terminal sink.
func (s *ConsoleSink) ShowAndActivate() {}
