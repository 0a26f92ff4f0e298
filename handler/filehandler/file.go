package filehandler

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/formatter"
	"github.com/philipp01105/nlogfacade/handler"
	"github.com/philipp01105/nlogfacade/handler/consolehandler"
)

// ErrNoFilename is returned by NewFileHandler when FileConfig.Filename is
// empty.
var ErrNoFilename = errors.New("filehandler: filename is required")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Levels decides which levels are enabled (default: all)
	Levels handler.Enabler
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// MaxSizeMB is the size in megabytes at which the file is rotated
	// (default: 100)
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// MaxAgeDays is how many days old log files are kept (0 = no age limit)
	MaxAgeDays int
	// Compress gzips rotated files
	Compress bool
	// LocalTime names rotated files by local time instead of UTC
	LocalTime bool
	// RotateInterval rotates the file on a fixed schedule (0 = size only)
	RotateInterval time.Duration
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]handler.OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
	// CoarseClock timestamps entries from core.CoarseNow
	CoarseClock bool
	// OnError receives write, text and rotation failures (default:
	// handler.StderrErrors)
	OnError handler.ErrorFunc
}

// FileHandler writes formatted entries to a lumberjack-rotated file. The
// sync or async write path is the console handler's, with the rotating
// file as its writer.
type FileHandler struct {
	handler.Handler
	file    *lumberjack.Logger
	onError handler.ErrorFunc

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewFileHandler opens (or creates) cfg.Filename and returns a handler
// writing to it.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	if cfg.OnError == nil {
		cfg.OnError = handler.StderrErrors
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0o755); err != nil {
		return nil, errors.Wrapf(err, "filehandler: create directory for %s", cfg.Filename)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	}
	// lumberjack opens lazily; an empty write surfaces open errors now.
	if _, err := file.Write(nil); err != nil {
		return nil, errors.Wrapf(err, "filehandler: open %s", cfg.Filename)
	}

	h := &FileHandler{
		Handler: consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Levels:           cfg.Levels,
			Writer:           file,
			Formatter:        cfg.Formatter,
			Async:            cfg.Async,
			BufferSize:       cfg.BufferSize,
			OverflowPolicy:   cfg.OverflowPolicy,
			BlockTimeout:     cfg.BlockTimeout,
			DrainTimeout:     cfg.DrainTimeout,
			ConcurrentWriter: true, // lumberjack serializes writes
			CoarseClock:      cfg.CoarseClock,
			OnError:          cfg.OnError,
		}),
		file:    file,
		onError: cfg.OnError,
		stop:    make(chan struct{}),
	}

	if cfg.RotateInterval > 0 {
		h.wg.Add(1)
		go h.rotateEvery(cfg.RotateInterval)
	}
	return h, nil
}

// rotateEvery rotates the file on every tick until Close.
func (h *FileHandler) rotateEvery(interval time.Duration) {
	defer h.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := h.Rotate(); err != nil {
				h.onError(err)
			}
		case <-h.stop:
			return
		}
	}
}

// Rotate closes the current file, renames it with a timestamp and opens
// a new one.
func (h *FileHandler) Rotate() error {
	return errors.Wrap(h.file.Rotate(), "filehandler: rotate")
}

// Filename returns the path of the active log file.
func (h *FileHandler) Filename() string {
	return h.file.Filename
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.Handler.(handler.StatsProvider).Stats()
}

// Close stops interval rotation, drains pending entries and closes the
// file. It is safe to call more than once.
func (h *FileHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.stop)
		h.wg.Wait()
		h.closeErr = multierr.Combine(
			h.Handler.Close(),
			errors.Wrap(h.file.Close(), "filehandler: close"),
		)
	})
	return h.closeErr
}
