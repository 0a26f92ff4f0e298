package formatter

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/philipp01105/nlogfacade/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for the formatter default)
	TimestampFormat string
	// ErrorKey is the key the entry error is written under (default: "error")
	ErrorKey string
}

// TextError is returned together with the formatted bytes when the
// entry's message text could not be produced. The output then carries
// a !FORMAT_ERROR(...) marker in place of the message.
type TextError struct {
	Level core.Level
	Err   error
}

func (e *TextError) Error() string {
	return fmt.Sprintf("formatter: %s message text: %v", e.Level, e.Err)
}

func (e *TextError) Unwrap() error {
	return e.Err
}

// entryText materializes the entry message, substituting a marker when
// that fails.
func entryText(entry *core.Entry) (string, error) {
	s, err := entry.Text()
	if err != nil {
		return "!FORMAT_ERROR(" + err.Error() + ")", &TextError{Level: entry.Level, Err: err}
	}
	return s, nil
}

func applyDefaults(cfg *Config, timestampFormat string) {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = timestampFormat
	}
	if cfg.ErrorKey == "" {
		cfg.ErrorKey = "error"
	}
}

// formatWith runs fill on a pooled buffer and returns a copy of the result.
func formatWith(entry *core.Entry, fill func(*core.Entry, *bytes.Buffer) error) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	err := fill(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, err
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
