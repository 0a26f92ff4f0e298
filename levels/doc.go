// Package levels provides Set, a concurrently mutable set of enabled
// log levels.
//
// Handlers consult a Set on every call, so replacing its contents (for
// example from a watched configuration file) takes effect on the next
// log call without rebuilding any Logger:
//
//	enabled, _ := levels.Parse("info+")
//	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Levels: enabled})
//	...
//	enabled.Enable(core.DebugLevel)
//
// Levels are independent bits. "info+" is only a shorthand for listing
// INFO, WARN, ERROR and FATAL; a Set such as "debug,error" is equally
// valid.
package levels
