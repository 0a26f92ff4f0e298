package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/formatter"
	"github.com/philipp01105/nlogfacade/handler"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// consoleBase contains shared fields and methods for console handlers.
type consoleBase struct {
	levels          handler.Enabler
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	now             func() time.Time
	onError         handler.ErrorFunc
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer (single lock)
	syncBuf         bytes.Buffer
	parBufPool      sync.Pool // pool of *bytes.Buffer for contended writes
	closed          chan struct{}
	closeOnce       sync.Once
}

func (b *consoleBase) init(cfg ConsoleConfig) {
	b.levels = cfg.Levels
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.concurrentSafe = cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer)
	b.now = core.Clock(cfg.CoarseClock)
	b.onError = cfg.OnError
	b.stats = handler.NewStats()
	b.closed = make(chan struct{})

	// Cache BufferFormatter for the handler-owned buffer path
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if b.bufferFormatter != nil {
		b.syncBuf.Grow(256)
		b.parBufPool = sync.Pool{
			New: func() interface{} {
				buf := &bytes.Buffer{}
				buf.Grow(256)
				return buf
			},
		}
	}
}

// Enabled reports whether the configured level set accepts level.
func (b *consoleBase) Enabled(level core.Level) bool {
	if b.levels == nil {
		return true
	}
	return b.levels.Enabled(level)
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() handler.Snapshot {
	return b.stats.Snapshot()
}

func (b *consoleBase) isClosed() bool {
	select {
	case <-b.closed:
		return true
	default:
		return false
	}
}

// write formats and writes an entry.
// Uses TryLock on mu to access the handler-owned buffer when uncontended.
// When contended, formats into a pooled buffer outside the lock and then
// writes under mu (or directly for concurrent-safe writers).
func (b *consoleBase) write(entry *core.Entry) {
	if b.bufferFormatter != nil {
		if b.mu.TryLock() {
			b.writeLocked(entry)
			b.mu.Unlock()
			return
		}

		buf := b.parBufPool.Get().(*bytes.Buffer)
		buf.Reset()
		textErr := b.bufferFormatter.FormatEntry(entry, buf)
		var err error
		if b.concurrentSafe {
			_, err = b.writer.Write(buf.Bytes())
		} else {
			b.mu.Lock()
			_, err = b.writer.Write(buf.Bytes())
			b.mu.Unlock()
		}
		b.parBufPool.Put(buf)
		b.done(textErr, err)
		return
	}

	data, textErr := b.formatter.Format(entry)
	var err error
	if b.concurrentSafe {
		_, err = b.writer.Write(data)
	} else {
		b.mu.Lock()
		_, err = b.writer.Write(data)
		b.mu.Unlock()
	}
	b.done(textErr, err)
}

// writeLocked formats into the handler-owned buffer. mu must be held.
func (b *consoleBase) writeLocked(entry *core.Entry) {
	if b.bufferFormatter == nil {
		data, textErr := b.formatter.Format(entry)
		_, err := b.writer.Write(data)
		b.done(textErr, err)
		return
	}
	b.syncBuf.Reset()
	textErr := b.bufferFormatter.FormatEntry(entry, &b.syncBuf)
	_, err := b.writer.Write(b.syncBuf.Bytes())
	b.done(textErr, err)
}

// done records the outcome of one entry. A message text failure still
// produced a line, so only a write error keeps it from being processed.
func (b *consoleBase) done(textErr, writeErr error) {
	if writeErr == nil {
		b.stats.IncrementProcessed()
	}
	if textErr != nil {
		b.fail(textErr)
	}
	if writeErr != nil {
		b.fail(writeErr)
	}
}

func (b *consoleBase) fail(err error) {
	b.stats.IncrementFailed()
	b.onError(err)
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Levels decides which levels are enabled (default: all). A
	// *levels.Set can be changed while the handler is in use.
	Levels handler.Enabler
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]handler.OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the handler skips write-level locking for parallel log entries.
	// Automatically detected for io.Discard and *os.File; set true for other
	// goroutine-safe writers.
	ConcurrentWriter bool
	// CoarseClock timestamps entries from core.CoarseNow instead of time.Now.
	CoarseClock bool
	// OnError receives write and message text failures (default:
	// handler.StderrErrors).
	OnError handler.ErrorFunc
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = handler.DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
	if cfg.OnError == nil {
		cfg.OnError = handler.StderrErrors
	}
}

// NewConsoleHandler creates a new console handler.
// Returns a SyncConsoleHandler when Async is false, or an AsyncConsoleHandler
// when Async is true. Both implement Handler and StatsProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	applyConsoleDefaults(&cfg)
	if cfg.Async {
		return newAsyncConsoleHandler(cfg)
	}
	return newSyncConsoleHandler(cfg)
}
