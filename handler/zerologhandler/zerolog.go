// Package zerologhandler writes nlogfacade entries into a
// github.com/rs/zerolog logger.
package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// ToZerolog maps a core level onto zerolog's levels.
func ToZerolog(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

// Handler writes entries into a zerolog.Logger.
type Handler struct {
	logger zerolog.Logger
	levels handler.Enabler
}

// New returns a Handler writing to l. A non-nil en further restricts
// the levels l enables.
func New(l zerolog.Logger, en handler.Enabler) *Handler {
	return &Handler{logger: l, levels: en}
}

// Enabled asks en, if set, and then compares against the logger and
// global zerolog levels.
func (h *Handler) Enabled(level core.Level) bool {
	if h.levels != nil && !h.levels.Enabled(level) {
		return false
	}
	zl := ToZerolog(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Write materializes msg into the zerolog message. WithLevel is used
// for every level, so Fatal does not exit.
func (h *Handler) Write(level core.Level, msg any, err error) {
	ev := h.logger.WithLevel(ToZerolog(level))
	if ev == nil {
		return
	}
	text, textErr := core.Materialize(msg)
	if textErr != nil {
		text = "!FORMAT_ERROR(" + textErr.Error() + ")"
		ev = ev.Str("format_error", textErr.Error())
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(text)
}

// Close does nothing; the zerolog writer belongs to the caller.
func (h *Handler) Close() error {
	return nil
}
