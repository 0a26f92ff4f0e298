// Package core defines the shared types of the facade.
//
// Level is the closed set of severities, Trace through Fatal. Each
// level's enablement is decided by a handler on its own; nothing here
// assumes that enabling one level enables the ones above it.
//
// Message is text that has not been produced yet: either a callback or a
// composite template ("user {0} took {1:N2} ms") with its arguments and
// an optional Culture. A handler asks for the text with Text, which
// computes it once and publishes the result through an atomic pointer so
// that any goroutine reading the same Message later sees the complete
// string. Two goroutines racing on the first read may both compute; the
// first to publish wins and both return the winner.
//
// Formatting problems are not detected when the message is created. They
// surface from Text as a panic carrying *FormatError, which Materialize
// converts back into an error for handlers.
//
// Entry is the pooled record that queueing handlers keep between Write
// and the actual output, and the coarse clock gives them a cheap
// timestamp source.
package core
