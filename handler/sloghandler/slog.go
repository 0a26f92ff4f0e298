package sloghandler

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// Slog levels for the two core levels slog has no name for.
const (
	LevelTrace = slog.LevelDebug - 4
	LevelFatal = slog.LevelError + 4
)

// ToSlog maps a core level onto the slog level scale.
func ToSlog(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return LevelFatal
	}
}

// FromSlog converts a slog.Level to a core.Level.
func FromSlog(level slog.Level) core.Level {
	switch {
	case level >= LevelFatal:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// Options configures a Handler.
type Options struct {
	// Levels further restricts the levels the slog handler enables.
	Levels handler.Enabler
	// ErrorKey is the attribute key of the entry error (default: "error").
	ErrorKey string
	// OnError receives text and slog.Handler failures (default:
	// handler.StderrErrors).
	OnError handler.ErrorFunc
}

// Handler writes entries into a slog.Handler.
type Handler struct {
	h        slog.Handler
	levels   handler.Enabler
	errorKey string
	onError  handler.ErrorFunc
}

// New returns a Handler writing to h.
func New(h slog.Handler, opts Options) *Handler {
	if opts.ErrorKey == "" {
		opts.ErrorKey = "error"
	}
	if opts.OnError == nil {
		opts.OnError = handler.StderrErrors
	}
	return &Handler{
		h:        h,
		levels:   opts.Levels,
		errorKey: opts.ErrorKey,
		onError:  opts.OnError,
	}
}

// Enabled asks Options.Levels, if set, and then the slog handler.
func (s *Handler) Enabled(level core.Level) bool {
	if s.levels != nil && !s.levels.Enabled(level) {
		return false
	}
	return s.h.Enabled(context.Background(), ToSlog(level))
}

// Write materializes msg into the record message.
func (s *Handler) Write(level core.Level, msg any, err error) {
	text, textErr := core.Materialize(msg)
	if textErr != nil {
		s.onError(textErr)
		text = "!FORMAT_ERROR(" + textErr.Error() + ")"
	}

	r := slog.NewRecord(time.Now(), ToSlog(level), text, 0)
	if err != nil {
		r.AddAttrs(slog.Any(s.errorKey, err))
	}
	if hErr := s.h.Handle(context.Background(), r); hErr != nil {
		s.onError(hErr)
	}
}

// Close does nothing; the slog handler owns its output.
func (s *Handler) Close() error {
	return nil
}
