package logger

import (
	"go.uber.org/atomic"
)

var (
	nopLogger     = &Logger{}
	defaultLogger atomic.Pointer[Logger]
)

// Default returns the default logger. Until SetDefault is called it is a
// no-op logger.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetDefault replaces the default logger and returns a function that
// restores the previous one. A nil l resets to the no-op logger.
func SetDefault(l *Logger) (restore func()) {
	prev := defaultLogger.Swap(l)
	return func() {
		defaultLogger.Store(prev)
	}
}

// Package-level convenience functions using the default logger

// Trace logs msg at Trace level using the default logger
func Trace(msg any) {
	Default().emit(TraceLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// Tracef logs a template at Trace level using the default logger
func Tracef(format string, args ...any) {
	Default().emit(TraceLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// Debug logs msg at Debug level using the default logger
func Debug(msg any) {
	Default().emit(DebugLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// Debugf logs a template at Debug level using the default logger
func Debugf(format string, args ...any) {
	Default().emit(DebugLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// DebugFunc logs the text returned by fn at Debug level using the
// default logger
func DebugFunc(fn func() string) {
	Default().emit(DebugLevel, kindCallback, nil, nil, nil, "", nil, fn)
}

// Info logs msg at Info level using the default logger
func Info(msg any) {
	Default().emit(InfoLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// Infof logs a template at Info level using the default logger
func Infof(format string, args ...any) {
	Default().emit(InfoLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// Warn logs msg at Warn level using the default logger
func Warn(msg any) {
	Default().emit(WarnLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// Warnf logs a template at Warn level using the default logger
func Warnf(format string, args ...any) {
	Default().emit(WarnLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// Error logs msg at Error level using the default logger
func Error(msg any) {
	Default().emit(ErrorLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// ErrorErr logs msg and err at Error level using the default logger
func ErrorErr(msg any, err error) {
	Default().emit(ErrorLevel, kindRaw, err, nil, msg, "", nil, nil)
}

// Errorf logs a template at Error level using the default logger
func Errorf(format string, args ...any) {
	Default().emit(ErrorLevel, kindTemplate, nil, nil, nil, format, args, nil)
}

// ErrorfErr logs a template and err at Error level using the default logger
func ErrorfErr(err error, format string, args ...any) {
	Default().emit(ErrorLevel, kindTemplate, err, nil, nil, format, args, nil)
}

// Fatal logs msg at Fatal level using the default logger. The process
// keeps running.
func Fatal(msg any) {
	Default().emit(FatalLevel, kindRaw, nil, nil, msg, "", nil, nil)
}

// Fatalf logs a template at Fatal level using the default logger
func Fatalf(format string, args ...any) {
	Default().emit(FatalLevel, kindTemplate, nil, nil, nil, format, args, nil)
}
