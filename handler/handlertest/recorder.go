// Package handlertest provides a recording Handler for tests of code
// that logs through nlogfacade.
package handlertest

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// Record is one delivered entry. Msg is kept exactly as received.
type Record struct {
	Level core.Level
	Msg   any
	Err   error
	// Dispatched is true when the entry arrived through Dispatch
	// rather than Write.
	Dispatched bool
}

// Text materializes the record message.
func (r Record) Text() (string, error) {
	return core.Materialize(r.Msg)
}

// Recorder is a Handler and Dispatcher that keeps every entry in memory.
// It is safe for concurrent use.
type Recorder struct {
	levels handler.Enabler

	enabledCalls atomic.Uint64
	closed       atomic.Bool

	mu      sync.Mutex
	records []Record
}

// NewRecorder returns a Recorder that asks en for enablement. A nil en
// enables every level.
func NewRecorder(en handler.Enabler) *Recorder {
	return &Recorder{levels: en}
}

// Enabled implements handler.Handler and counts the query.
func (r *Recorder) Enabled(level core.Level) bool {
	r.enabledCalls.Inc()
	if r.levels == nil {
		return true
	}
	return r.levels.Enabled(level)
}

// Write implements handler.Handler.
func (r *Recorder) Write(level core.Level, msg any, err error) {
	r.add(Record{Level: level, Msg: msg, Err: err})
}

// Dispatch implements handler.Dispatcher.
func (r *Recorder) Dispatch(level core.Level, msg any, err error) {
	r.add(Record{Level: level, Msg: msg, Err: err, Dispatched: true})
}

func (r *Recorder) add(rec Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

// Close marks the recorder closed. It never fails.
func (r *Recorder) Close() error {
	r.closed.Store(true)
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	return r.closed.Load()
}

// EnabledCalls returns how many times Enabled was asked.
func (r *Recorder) EnabledCalls() uint64 {
	return r.enabledCalls.Load()
}

// Records returns a copy of the recorded entries in arrival order.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Texts materializes every recorded message. A failed materialization
// yields the error text.
func (r *Recorder) Texts() []string {
	recs := r.Records()
	out := make([]string, len(recs))
	for i, rec := range recs {
		s, err := rec.Text()
		if err != nil {
			s = err.Error()
		}
		out[i] = s
	}
	return out
}

// Reset forgets all recorded entries and counters.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
	r.enabledCalls.Store(0)
}

// WriteOnly returns a view of r that does not implement
// handler.Dispatcher, so a Logger built on it binds Write.
func (r *Recorder) WriteOnly() handler.Handler {
	return writeOnly{r: r}
}

type writeOnly struct {
	r *Recorder
}

func (w writeOnly) Enabled(level core.Level) bool             { return w.r.Enabled(level) }
func (w writeOnly) Write(level core.Level, msg any, err error) { w.r.Write(level, msg, err) }
func (w writeOnly) Close() error                               { return w.r.Close() }
