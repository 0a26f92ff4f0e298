// Package benchmark compares nlogfacade against other Go loggers and
// measures its own handlers.
package benchmark

import (
	"go.uber.org/atomic"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// noopHandler enables every level and renders each message, so a
// benchmark pays for text but not for formatting or I/O.
type noopHandler struct {
	n atomic.Int64
}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Enabled(core.Level) bool { return true }

func (h *noopHandler) Write(_ core.Level, msg any, _ error) {
	text, _ := core.Materialize(msg)
	h.n.Add(int64(len(text)))
}

func (h *noopHandler) Close() error {
	return nil
}
