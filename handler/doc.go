// Package handler defines the contract between the Logger and a logging
// backend, plus the shared pieces the built-in handlers use.
//
// A Handler answers Enabled for each level and receives gated entries
// through Write. The payload passed to Write is either the raw value the
// caller logged or a *core.Message whose text has not been computed yet;
// a handler that never outputs the entry never pays for formatting.
// Handlers that queue entries may read the Message text later on another
// goroutine; the Message publishes its text safely for that.
//
// A Handler can additionally implement Dispatcher. The Logger checks for
// it once, when it is built, and binds whichever entry point applies.
//
// Write has no error result. Handlers report their own failures through
// an ErrorFunc and count them in Stats.
//
// Asynchronous handlers apply a per-level OverflowPolicy when their
// queue is full: DropNewest (default for Trace through Warn), DropOldest,
// or Block with a timeout (default for Error and Fatal).
//
// Built-in handlers live in subpackages:
//
//   - consolehandler writes formatted entries to any io.Writer.
//   - filehandler writes to a size-rotated file.
//   - multihandler fans out to several handlers.
//   - sloghandler, zaphandler, logrushandler and zerologhandler forward
//     to other logging libraries.
//   - handlertest records calls for tests.
//   - promstats exports Stats to Prometheus.
package handler
