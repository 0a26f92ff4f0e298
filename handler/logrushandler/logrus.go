// Package logrushandler writes nlogfacade entries into a
// github.com/sirupsen/logrus logger.
//
// Enablement is logrus's own level check. Entries go through
// logrus.Entry.Log, which records Fatal without calling the logger's
// exit function.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// ToLogrus maps a core level onto logrus's levels.
func ToLogrus(level core.Level) logrus.Level {
	switch level {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

// Handler writes entries into a *logrus.Logger.
type Handler struct {
	logger *logrus.Logger
	levels handler.Enabler
}

// New returns a Handler writing to l. A non-nil en further restricts
// the levels l enables.
func New(l *logrus.Logger, en handler.Enabler) *Handler {
	return &Handler{logger: l, levels: en}
}

// Enabled asks en, if set, and then the logrus logger.
func (h *Handler) Enabled(level core.Level) bool {
	if h.levels != nil && !h.levels.Enabled(level) {
		return false
	}
	return h.logger.IsLevelEnabled(ToLogrus(level))
}

// Write materializes msg into the logrus message. The entry error is
// attached under logrus.ErrorKey.
func (h *Handler) Write(level core.Level, msg any, err error) {
	entry := logrus.NewEntry(h.logger)
	text, textErr := core.Materialize(msg)
	if textErr != nil {
		text = "!FORMAT_ERROR(" + textErr.Error() + ")"
		entry = entry.WithField("format_error", textErr.Error())
	}
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(ToLogrus(level), text)
}

// Close does nothing; the logrus logger owns its output.
func (h *Handler) Close() error {
	return nil
}
