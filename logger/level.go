package logger

import (
	"github.com/philipp01105/nlogfacade/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// ParseLevel converts a string to a Level. Unknown names yield InfoLevel
// and an error.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
