package models

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleSurface renders display updates as text lines, for headless runs
// where no windowing system is available.
type ConsoleSurface struct {
	mutex  sync.Mutex
	out    io.Writer
	closed bool
}

func NewConsoleSurface(out io.Writer) *ConsoleSurface {
	return &ConsoleSurface{out: out}
}

// Update writes one line with the fields in display order.
func (s *ConsoleSurface) Update(values map[string]string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return
	}
	for i, field := range DisplayFields {
		if i > 0 {
			fmt.Fprint(s.out, "  ")
		}
		fmt.Fprintf(s.out, "%s: %s", field, values[field])
	}
	fmt.Fprintln(s.out)
}

// IsOpen reports whether the surface still accepts updates.
func (s *ConsoleSurface) IsOpen() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return !s.closed
}

// Close makes further updates silent no-ops.
func (s *ConsoleSurface) Close() {
	s.mutex.Lock()
	s.closed = true
	s.mutex.Unlock()
}
