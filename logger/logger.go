package logger

import (
	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

const (
	// kindRaw marks a payload that is handed to the handler unchanged.
	kindRaw core.Kind = 0

	kindTemplate = core.KindTemplate
	kindCallback = core.KindCallback
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler  handler.Handler
	dispatch handler.DispatchFunc
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler  handler.Handler
	dispatch handler.DispatchFunc
	custom   bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the handler. Its Dispatch method is bound when it
// implements handler.Dispatcher, its Write method otherwise.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	if !b.custom {
		b.dispatch = nil
		if h != nil {
			b.dispatch = handler.Bind(h)
		}
	}
	return b
}

// WithDispatch sets the function entries are delivered to, overriding
// the binding chosen by WithHandler. Enablement is still asked of the
// handler.
func (b *Builder) WithDispatch(fn handler.DispatchFunc) *Builder {
	b.dispatch = fn
	b.custom = fn != nil
	if fn == nil && b.handler != nil {
		b.dispatch = handler.Bind(b.handler)
	}
	return b
}

// Build creates the Logger instance. Without a handler (or without a
// dispatch target) the Logger is a valid no-op logger.
func (b *Builder) Build() *Logger {
	if b.handler == nil || b.dispatch == nil {
		return &Logger{}
	}
	return &Logger{
		handler:  b.handler,
		dispatch: b.dispatch,
	}
}

// New is shorthand for NewBuilder().WithHandler(h).Build().
func New(h handler.Handler) *Logger {
	return NewBuilder().WithHandler(h).Build()
}

// Nop returns a Logger with every level disabled.
func Nop() *Logger {
	return &Logger{}
}

// Enabled reports whether the handler currently accepts level.
func (l *Logger) Enabled(level core.Level) bool {
	if l == nil || l.handler == nil {
		return false
	}
	return l.handler.Enabled(level)
}

// Handler returns the handler the Logger asks for enablement, or nil.
func (l *Logger) Handler() handler.Handler {
	if l == nil {
		return nil
	}
	return l.handler
}

// emit is the single gated entry point behind every logging method.
//
// Nothing but the enablement query happens for a disabled level. For an
// enabled level the payload is built according to kind and delivered to
// the bound dispatch function:
//
//   - kindRaw: msg is passed through unchanged
//   - core.KindTemplate: a *core.Message over format, c and a shallow
//     copy of args
//   - core.KindCallback: a *core.Message over fn, which is not called here
func (l *Logger) emit(level core.Level, kind core.Kind, err error, c core.Culture, msg any, format string, args []any, fn func() string) {
	if l == nil || l.handler == nil || !l.handler.Enabled(level) {
		return
	}

	payload := msg
	switch kind {
	case core.KindTemplate:
		var captured []any
		if len(args) > 0 {
			captured = make([]any, len(args))
			copy(captured, args)
		}
		payload = core.NewTemplateMessage(c, format, captured)
	case core.KindCallback:
		payload = core.NewCallbackMessage(fn)
	}

	l.dispatch(level, payload, err)
}

// Log logs msg at level. msg is passed to the handler as is.
func (l *Logger) Log(level core.Level, msg any) {
	l.emit(level, kindRaw, nil, nil, msg, "", nil, nil)
}

// LogErr logs msg and err at level.
func (l *Logger) LogErr(level core.Level, msg any, err error) {
	l.emit(level, kindRaw, err, nil, msg, "", nil, nil)
}

// Logf logs a composite-format template at level. The text is produced
// only if a handler asks for it.
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	l.emit(level, kindTemplate, nil, nil, nil, format, args, nil)
}

// LogfErr is Logf with an error.
func (l *Logger) LogfErr(level core.Level, err error, format string, args ...any) {
	l.emit(level, kindTemplate, err, nil, nil, format, args, nil)
}

// LogfIn is Logf rendered with culture c.
func (l *Logger) LogfIn(level core.Level, c core.Culture, format string, args ...any) {
	l.emit(level, kindTemplate, nil, c, nil, format, args, nil)
}

// LogfInErr is LogfIn with an error.
func (l *Logger) LogfInErr(level core.Level, c core.Culture, err error, format string, args ...any) {
	l.emit(level, kindTemplate, err, c, nil, format, args, nil)
}

// LogFunc logs the text returned by fn at level. fn runs at most once,
// and only if a handler asks for the text.
func (l *Logger) LogFunc(level core.Level, fn func() string) {
	l.emit(level, kindCallback, nil, nil, nil, "", nil, fn)
}

// LogFuncErr is LogFunc with an error.
func (l *Logger) LogFuncErr(level core.Level, err error, fn func() string) {
	l.emit(level, kindCallback, err, nil, nil, "", nil, fn)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l != nil && l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
