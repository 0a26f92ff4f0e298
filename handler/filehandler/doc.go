// Package filehandler writes formatted log entries to a file rotated by
// gopkg.in/natefinch/lumberjack.v2: by size (MaxSizeMB), on a fixed
// RotateInterval, or on demand via Rotate. Old files are pruned by
// MaxBackups and MaxAgeDays and optionally gzipped.
//
// The write path is consolehandler's, so the same sync and async
// variants, overflow policies and statistics apply. Writes after Close
// reopen the file; callers should stop logging before closing.
package filehandler
