// Package consolehandler provides console output handlers that write
// formatted log entries to any io.Writer (default: os.Stdout).
//
// Handlers are split into specialized sync and async variants:
//
//   - SyncConsoleHandler formats and writes on the caller's goroutine.
//     Uses TryLock for a handler-owned buffer and falls back to pooled
//     buffers under contention.
//   - AsyncConsoleHandler provides an isolated queue with per-level
//     OverflowPolicy and a dedicated background goroutine. Deferred
//     message text is produced on that goroutine.
//
// Enablement comes from ConsoleConfig.Levels, so a shared *levels.Set
// reconfigures the handler while it runs. Write and text failures are
// counted in Stats and passed to ConsoleConfig.OnError.
//
// The factory function NewConsoleHandler automatically chooses the
// right variant based on the Async field in ConsoleConfig.
package consolehandler
