package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
	dispatch []handler.DispatchFunc // bound once per child
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{
		handlers: make([]handler.Handler, 0, len(handlers)),
		dispatch: make([]handler.DispatchFunc, 0, len(handlers)),
	}
	for _, h := range handlers {
		if h == nil {
			continue
		}
		m.handlers = append(m.handlers, h)
		m.dispatch = append(m.dispatch, handler.Bind(h))
	}
	return m
}

// Handlers returns the child handlers.
func (m *MultiHandler) Handlers() []handler.Handler {
	return m.handlers
}

// Enabled reports whether any child accepts level.
func (m *MultiHandler) Enabled(level core.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(level) {
			return true
		}
	}
	return false
}

// Write forwards the entry to every child's Write for which level is
// enabled. msg is shared, so a *core.Message is rendered at most once
// for all children.
func (m *MultiHandler) Write(level core.Level, msg any, err error) {
	for _, h := range m.handlers {
		if h.Enabled(level) {
			h.Write(level, msg, err)
		}
	}
}

// Dispatch is Write through each child's bound entry point.
func (m *MultiHandler) Dispatch(level core.Level, msg any, err error) {
	for i, h := range m.handlers {
		if h.Enabled(level) {
			m.dispatch[i](level, msg, err)
		}
	}
}

// Stats sums the statistics of every child that keeps them.
func (m *MultiHandler) Stats() handler.Snapshot {
	sum := handler.Snapshot{Dropped: make(map[core.Level]uint64, len(core.Levels()))}
	for _, h := range m.handlers {
		sp, ok := h.(handler.StatsProvider)
		if !ok {
			continue
		}
		s := sp.Stats()
		for l, n := range s.Dropped {
			sum.Dropped[l] += n
		}
		sum.Blocked += s.Blocked
		sum.Processed += s.Processed
		sum.Failed += s.Failed
	}
	return sum
}

// Close closes all handlers and returns every error they reported.
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
