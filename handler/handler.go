package handler

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/nlogfacade/core"
)

// Enabler answers whether a level is currently enabled. *levels.Set
// implements it.
type Enabler interface {
	Enabled(level core.Level) bool
}

// Handler is what a backend implements to receive log calls.
type Handler interface {
	// Enabled is asked on every log call before anything else happens.
	// It must be cheap and free of side effects.
	Enabled(level core.Level) bool

	// Write receives an entry for a level that Enabled accepted. msg is
	// either a raw value or a *core.Message; the handler decides if and
	// when to produce its text (see core.Materialize).
	Write(level core.Level, msg any, err error)

	// Close releases the handler's resources
	Close() error
}

// Dispatcher is an optional interface for handlers with a specialized
// entry point. When a Handler implements it, the Logger binds Dispatch
// instead of Write once at construction.
type Dispatcher interface {
	Dispatch(level core.Level, msg any, err error)
}

// StatsProvider is implemented by handlers that keep delivery counters.
type StatsProvider interface {
	Stats() Snapshot
}

// DispatchFunc is the bound form of Write or Dispatch.
type DispatchFunc func(level core.Level, msg any, err error)

// Bind returns h.Dispatch if h is a Dispatcher and h.Write otherwise.
func Bind(h Handler) DispatchFunc {
	if d, ok := h.(Dispatcher); ok {
		return d.Dispatch
	}
	return h.Write
}

// ErrorFunc receives internal handler failures: write errors, message
// text failures and overflow fallbacks. It must not log through the
// handler that reported the error.
type ErrorFunc func(err error)

// StderrErrors is the default ErrorFunc: one line on os.Stderr.
func StderrErrors(err error) {
	fmt.Fprintf(os.Stderr, "nlogfacade: handler error: %v\n", err)
}

// DiscardErrors ignores handler errors.
func DiscardErrors(error) {}

// NewStoppedTimer returns a timer that is stopped and drained, ready for
// Reset.
func NewStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}

// Discard is a Handler that accepts levels per its Enabler and drops
// every entry without producing any text.
type Discard struct {
	Levels Enabler
}

// Enabled reports d.Levels.Enabled(level); a nil Levels enables all.
func (d Discard) Enabled(level core.Level) bool {
	if d.Levels == nil {
		return true
	}
	return d.Levels.Enabled(level)
}

// Write drops the entry.
func (Discard) Write(core.Level, any, error) {}

// Close does nothing.
func (Discard) Close() error { return nil }
