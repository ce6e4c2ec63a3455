package reconcile

import "strings"

// Recorder is a Diagnostics that keeps every message in order.
// It is not safe for concurrent use.
type Recorder struct {
	entries []Entry
}

// Log records an informational message.
func (r *Recorder) Log(msg string) {
	r.entries = append(r.entries, Entry{Level: LevelInfo, Message: msg})
}

// Error records a non-fatal problem.
func (r *Recorder) Error(msg string) {
	r.entries = append(r.entries, Entry{Level: LevelError, Message: msg})
}

// Entries returns all recorded diagnostics.
func (r *Recorder) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Errors returns the messages recorded at error level.
func (r *Recorder) Errors() []string {
	var out []string
	for _, e := range r.entries {
		if e.Level == LevelError {
			out = append(out, e.Message)
		}
	}
	return out
}

// Count returns how many entries at level contain substr.
func (r *Recorder) Count(level Level, substr string) int {
	n := 0
	for _, e := range r.entries {
		if e.Level == level && strings.Contains(e.Message, substr) {
			n++
		}
	}
	return n
}

type tee []Diagnostics

// Tee sends every message to all sinks in order.
func Tee(sinks ...Diagnostics) Diagnostics {
	return tee(sinks)
}

func (t tee) Log(msg string) {
	for _, d := range t {
		d.Log(msg)
	}
}

func (t tee) Error(msg string) {
	for _, d := range t {
		d.Error(msg)
	}
}
