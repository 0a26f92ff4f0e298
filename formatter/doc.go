// Package formatter defines how log entries are serialized into bytes.
//
// Formatting is the point where a deferred message finally becomes
// text: both built-in formatters call Entry.Text, so a *core.Message is
// materialized here and nowhere earlier. If that fails (a malformed
// template, a panicking callback) the line is still written with a
// !FORMAT_ERROR(...) marker in place of the message, and a *TextError is
// returned alongside the bytes so the handler can report it.
//
// Formatter returns a []byte; BufferFormatter writes into a buffer owned
// by the handler. Handlers check for BufferFormatter at construction
// time and prefer it, avoiding the intermediate copy. Both built-in
// formatters (TextFormatter and JSONFormatter) implement both and rely
// on Append-style functions (time.AppendFormat) to avoid per-call
// allocations.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
