package models

import (
	"sync"
	"time"
)

// LogEntry is one timestamped activity record. Immutable once appended.
type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// ActivityLog is an ordered, append-only record of carpark events.
// With maxEntries > 0 it keeps only the most recent entries; 0 means
// unbounded, matching the reference behavior.
type ActivityLog struct {
	clock      Clock
	maxEntries int
	sink       func(LogEntry)
	mutex      sync.Mutex
	entries    []LogEntry
}

// NewActivityLog creates a log stamping entries with clock. sink, if not nil,
// receives each entry as it is appended (e.g. a UI log console); it may be nil.
func NewActivityLog(clock Clock, maxEntries int, sink func(LogEntry)) *ActivityLog {
	if clock == nil {
		clock = SystemClock
	}
	return &ActivityLog{
		clock:      clock,
		maxEntries: maxEntries,
		sink:       sink,
	}
}

// Append records message with the current timestamp.
func (l *ActivityLog) Append(message string) {
	entry := LogEntry{Timestamp: l.clock(), Message: message}

	l.mutex.Lock()
	l.entries = append(l.entries, entry)
	if l.maxEntries > 0 && len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
	l.mutex.Unlock()

	if l.sink != nil {
		l.sink(entry)
	}
}

// Snapshot returns a copy of all entries in append order. Mutating the
// returned slice does not affect the log.
func (l *ActivityLog) Snapshot() []LogEntry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of retained entries.
func (l *ActivityLog) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.entries)
}
