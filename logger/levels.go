package logger

import (
	"github.com/philipp01105/nlogfacade/core"
)

// Per-level methods. Each one is a direct call into emit with the level
// fixed; none of them calls another.

// IsTraceEnabled reports whether Trace is currently enabled.
func (l *Logger) IsTraceEnabled() bool {
	return l.Enabled(core.TraceLevel)
}

// Trace logs msg at Trace level.
func (l *Logger) Trace(msg any) {
	l.emit(core.TraceLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// TraceErr logs msg and err at Trace level.
func (l *Logger) TraceErr(msg any, err error) {
	l.emit(core.TraceLevel, kindRaw, err, nil, msg, "", nil, nil)
}

// Tracef logs a composite-format template at Trace level.
func (l *Logger) Tracef(format string, args ...any) {
	l.emit(core.TraceLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// TracefErr logs a template and err at Trace level.
func (l *Logger) TracefErr(err error, format string, args ...any) {
	l.emit(core.TraceLevel, kindTemplate, err, nil, nil, format, args, nil)
}

// TracefIn logs a template rendered with culture c at Trace level.
func (l *Logger) TracefIn(c core.Culture, format string, args ...any) {
	l.emit(core.TraceLevel, kindTemplate, nil, c, nil, format, args, nil)
}

// TracefInErr logs a template rendered with culture c and err at Trace level.
func (l *Logger) TracefInErr(c core.Culture, err error, format string, args ...any) {
	l.emit(core.TraceLevel, kindTemplate, err, c, nil, format, args, nil)
}

// TraceFunc logs the text returned by fn at Trace level.
func (l *Logger) TraceFunc(fn func() string) {
	l.emit(core.TraceLevel, kindCallback, nil, nil, nil, "", nil, fn)
}

// TraceFuncErr logs the text returned by fn and err at Trace level.
func (l *Logger) TraceFuncErr(err error, fn func() string) {
	l.emit(core.TraceLevel, kindCallback, err, nil, nil, "", nil, fn)
}

// IsDebugEnabled reports whether Debug is currently enabled.
func (l *Logger) IsDebugEnabled() bool {
	return l.Enabled(core.DebugLevel)
}

// Debug logs msg at Debug level.
func (l *Logger) Debug(msg any) {
	l.emit(core.DebugLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// DebugErr logs msg and err at Debug level.
func (l *Logger) DebugErr(msg any, err error) {
	l.emit(core.DebugLevel, kindRaw, err, nil, msg, "", nil, nil)
}

// Debugf logs a composite-format template at Debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.emit(core.DebugLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// DebugfErr logs a template and err at Debug level.
func (l *Logger) DebugfErr(err error, format string, args ...any) {
	l.emit(core.DebugLevel, kindTemplate, err, nil, nil, format, args, nil)
}

// DebugfIn logs a template rendered with culture c at Debug level.
func (l *Logger) DebugfIn(c core.Culture, format string, args ...any) {
	l.emit(core.DebugLevel, kindTemplate, nil, c, nil, format, args, nil)
}

// DebugfInErr logs a template rendered with culture c and err at Debug level.
func (l *Logger) DebugfInErr(c core.Culture, err error, format string, args ...any) {
	l.emit(core.DebugLevel, kindTemplate, err, c, nil, format, args, nil)
}

// DebugFunc logs the text returned by fn at Debug level.
func (l *Logger) DebugFunc(fn func() string) {
	l.emit(core.DebugLevel, kindCallback, nil, nil, nil, "", nil, fn)
}

// DebugFuncErr logs the text returned by fn and err at Debug level.
func (l *Logger) DebugFuncErr(err error, fn func() string) {
	l.emit(core.DebugLevel, kindCallback, err, nil, nil, "", nil, fn)
}

// IsInfoEnabled reports whether Info is currently enabled.
func (l *Logger) IsInfoEnabled() bool {
	return l.Enabled(core.InfoLevel)
}

// Info logs msg at Info level.
func (l *Logger) Info(msg any) {
	l.emit(core.InfoLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// InfoErr logs msg and err at Info level.
func (l *Logger) InfoErr(msg any, err error) {
	l.emit(core.InfoLevel, kindRaw, err, nil, msg, "", nil, nil)
}

// Infof logs a composite-format template at Info level.
func (l *Logger) Infof(format string, args ...any) {
	l.emit(core.InfoLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// InfofErr logs a template and err at Info level.
func (l *Logger) InfofErr(err error, format string, args ...any) {
	l.emit(core.InfoLevel, kindTemplate, err, nil, nil, format, args, nil)
}

// InfofIn logs a template rendered with culture c at Info level.
func (l *Logger) InfofIn(c core.Culture, format string, args ...any) {
	l.emit(core.InfoLevel, kindTemplate, nil, c, nil, format, args, nil)
}

// InfofInErr logs a template rendered with culture c and err at Info level.
func (l *Logger) InfofInErr(c core.Culture, err error, format string, args ...any) {
	l.emit(core.InfoLevel, kindTemplate, err, c, nil, format, args, nil)
}

// InfoFunc logs the text returned by fn at Info level.
func (l *Logger) InfoFunc(fn func() string) {
	l.emit(core.InfoLevel, kindCallback, nil, nil, nil, "", nil, fn)
}

// InfoFuncErr logs the text returned by fn and err at Info level.
func (l *Logger) InfoFuncErr(err error, fn func() string) {
	l.emit(core.InfoLevel, kindCallback, err, nil, nil, "", nil, fn)
}

// IsWarnEnabled reports whether Warn is currently enabled.
func (l *Logger) IsWarnEnabled() bool {
	return l.Enabled(core.WarnLevel)
}

// Warn logs msg at Warn level.
func (l *Logger) Warn(msg any) {
	l.emit(core.WarnLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// WarnErr logs msg and err at Warn level.
func (l *Logger) WarnErr(msg any, err error) {
	l.emit(core.WarnLevel, kindRaw, err, nil, msg, "", nil, nil)
}

// Warnf logs a composite-format template at Warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(core.WarnLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// WarnfErr logs a template and err at Warn level.
func (l *Logger) WarnfErr(err error, format string, args ...any) {
	l.emit(core.WarnLevel, kindTemplate, err, nil, nil, format, args, nil)
}

// WarnfIn logs a template rendered with culture c at Warn level.
func (l *Logger) WarnfIn(c core.Culture, format string, args ...any) {
	l.emit(core.WarnLevel, kindTemplate, nil, c, nil, format, args, nil)
}

// WarnfInErr logs a template rendered with culture c and err at Warn level.
func (l *Logger) WarnfInErr(c core.Culture, err error, format string, args ...any) {
	l.emit(core.WarnLevel, kindTemplate, err, c, nil, format, args, nil)
}

// WarnFunc logs the text returned by fn at Warn level.
func (l *Logger) WarnFunc(fn func() string) {
	l.emit(core.WarnLevel, kindCallback, nil, nil, nil, "", nil, fn)
}

// WarnFuncErr logs the text returned by fn and err at Warn level.
func (l *Logger) WarnFuncErr(err error, fn func() string) {
	l.emit(core.WarnLevel, kindCallback, err, nil, nil, "", nil, fn)
}

// IsErrorEnabled reports whether Error is currently enabled.
func (l *Logger) IsErrorEnabled() bool {
	return l.Enabled(core.ErrorLevel)
}

// Error logs msg at Error level.
func (l *Logger) Error(msg any) {
	l.emit(core.ErrorLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// ErrorErr logs msg and err at Error level.
func (l *Logger) ErrorErr(msg any, err error) {
	l.emit(core.ErrorLevel, kindRaw, err, nil, msg, "", nil, nil)
}

// Errorf logs a composite-format template at Error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(core.ErrorLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// ErrorfErr logs a template and err at Error level.
func (l *Logger) ErrorfErr(err error, format string, args ...any) {
	l.emit(core.ErrorLevel, kindTemplate, err, nil, nil, format, args, nil)
}

// ErrorfIn logs a template rendered with culture c at Error level.
func (l *Logger) ErrorfIn(c core.Culture, format string, args ...any) {
	l.emit(core.ErrorLevel, kindTemplate, nil, c, nil, format, args, nil)
}

// ErrorfInErr logs a template rendered with culture c and err at Error level.
func (l *Logger) ErrorfInErr(c core.Culture, err error, format string, args ...any) {
	l.emit(core.ErrorLevel, kindTemplate, err, c, nil, format, args, nil)
}

// ErrorFunc logs the text returned by fn at Error level.
func (l *Logger) ErrorFunc(fn func() string) {
	l.emit(core.ErrorLevel, kindCallback, nil, nil, nil, "", nil, fn)
}

// ErrorFuncErr logs the text returned by fn and err at Error level.
func (l *Logger) ErrorFuncErr(err error, fn func() string) {
	l.emit(core.ErrorLevel, kindCallback, err, nil, nil, "", nil, fn)
}

// IsFatalEnabled reports whether Fatal is currently enabled.
func (l *Logger) IsFatalEnabled() bool {
	return l.Enabled(core.FatalLevel)
}

// Fatal logs msg at Fatal level.
//
// Fatal is an ordinary level: the process keeps running.
func (l *Logger) Fatal(msg any) {
	l.emit(core.FatalLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// FatalErr logs msg and err at Fatal level.
func (l *Logger) FatalErr(msg any, err error) {
	l.emit(core.FatalLevel, kindRaw, err, nil, msg, "", nil, nil)
}

// Fatalf logs a composite-format template at Fatal level.
func (l *Logger) Fatalf(format string, args ...any) {
	l.emit(core.FatalLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// FatalfErr logs a template and err at Fatal level.
func (l *Logger) FatalfErr(err error, format string, args ...any) {
	l.emit(core.FatalLevel, kindTemplate, err, nil, nil, format, args, nil)
}

// FatalfIn logs a template rendered with culture c at Fatal level.
func (l *Logger) FatalfIn(c core.Culture, format string, args ...any) {
	l.emit(core.FatalLevel, kindTemplate, nil, c, nil, format, args, nil)
}

// FatalfInErr logs a template rendered with culture c and err at Fatal level.
func (l *Logger) FatalfInErr(c core.Culture, err error, format string, args ...any) {
	l.emit(core.FatalLevel, kindTemplate, err, c, nil, format, args, nil)
}

// FatalFunc logs the text returned by fn at Fatal level.
func (l *Logger) FatalFunc(fn func() string) {
	l.emit(core.FatalLevel, kindCallback, nil, nil, nil, "", nil, fn)
}

// FatalFuncErr logs the text returned by fn and err at Fatal level.
func (l *Logger) FatalFuncErr(err error, fn func() string) {
	l.emit(core.FatalLevel, kindCallback, err, nil, nil, "", nil, fn)
}
