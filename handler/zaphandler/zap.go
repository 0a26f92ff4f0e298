// Package zaphandler writes nlogfacade entries into a go.uber.org/zap
// core.
//
// Enablement is the zap core's own level check. Entries are written
// through zapcore.Core directly, so a Fatal entry is recorded at
// zapcore.FatalLevel without zap's exit hook.
package zaphandler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// ToZap maps a core level onto zap's levels. zap has no trace level, so
// Trace shares zap's debug level.
func ToZap(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

// Options configures a Handler.
type Options struct {
	// Levels further restricts the levels the zap core enables.
	Levels handler.Enabler
	// ErrorKey is the field key of the entry error (default: "error").
	ErrorKey string
	// OnError receives text and zap write failures (default:
	// handler.StderrErrors).
	OnError handler.ErrorFunc
}

// Handler writes entries into a zapcore.Core.
type Handler struct {
	core     zapcore.Core
	levels   handler.Enabler
	errorKey string
	onError  handler.ErrorFunc
}

// New returns a Handler writing to c.
func New(c zapcore.Core, opts Options) *Handler {
	if opts.ErrorKey == "" {
		opts.ErrorKey = "error"
	}
	if opts.OnError == nil {
		opts.OnError = handler.StderrErrors
	}
	return &Handler{
		core:     c,
		levels:   opts.Levels,
		errorKey: opts.ErrorKey,
		onError:  opts.OnError,
	}
}

// NewFromLogger returns a Handler writing to l's core, fields included.
func NewFromLogger(l *zap.Logger, opts Options) *Handler {
	return New(l.Core(), opts)
}

// Enabled asks Options.Levels, if set, and then the zap core.
func (h *Handler) Enabled(level core.Level) bool {
	if h.levels != nil && !h.levels.Enabled(level) {
		return false
	}
	return h.core.Enabled(ToZap(level))
}

// Write materializes msg into the zap entry message.
func (h *Handler) Write(level core.Level, msg any, err error) {
	text, textErr := core.Materialize(msg)
	if textErr != nil {
		h.onError(textErr)
		text = "!FORMAT_ERROR(" + textErr.Error() + ")"
	}

	ent := zapcore.Entry{
		Level:   ToZap(level),
		Time:    time.Now(),
		Message: text,
	}
	ce := h.core.Check(ent, nil)
	if ce == nil {
		return
	}
	if err != nil {
		ce.Write(zap.NamedError(h.errorKey, err))
		return
	}
	ce.Write()
}

// Close flushes the zap core.
func (h *Handler) Close() error {
	return h.core.Sync()
}
