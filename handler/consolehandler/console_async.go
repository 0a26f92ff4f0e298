package consolehandler

import (
	"sync"
	"time"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// AsyncConsoleHandler queues entries for a dedicated background goroutine,
// which produces the message text and writes it. A *core.Message payload
// is therefore materialized on a different goroutine than the one that
// logged it.
type AsyncConsoleHandler struct {
	consoleBase
	queue          chan *core.Entry
	wg             sync.WaitGroup
	overflowPolicy map[core.Level]handler.OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	timers         sync.Pool // stopped *time.Timer for Block waits

	// sendMu is held shared by writers from the closed check through the
	// enqueue, and exclusively by Close while it closes the handler.
	sendMu sync.RWMutex
}

// newAsyncConsoleHandler creates a new asynchronous console handler.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		timers: sync.Pool{
			New: func() interface{} { return handler.NewStoppedTimer() },
		},
	}
	h.init(cfg)

	h.queue = make(chan *core.Entry, cfg.BufferSize)
	h.wg.Add(1)
	go h.process()

	return h
}

// Write queues an entry with overflow policy handling. After Close the
// entry is written synchronously.
func (h *AsyncConsoleHandler) Write(level core.Level, msg any, err error) {
	entry := core.NewEntry(h.now(), level, msg, err)

	h.sendMu.RLock()
	defer h.sendMu.RUnlock()
	if h.isClosed() {
		h.write(entry)
		core.PutEntry(entry)
		return
	}

	// Get overflow policy for this level
	policy, ok := h.overflowPolicy[level]
	if !ok {
		policy = handler.DropNewest // Default if not specified
	}

	switch policy {
	case handler.Block:
		select {
		case h.queue <- entry:
			return
		default:
		}
		h.enqueueBlocking(entry)

	case handler.DropOldest:
		// Try non-blocking send
		select {
		case h.queue <- entry:
			return
		default:
			// Queue full - try to drop oldest
			select {
			case old := <-h.queue:
				h.stats.IncrementDropped(old.Level)
				core.PutEntry(old)
			default:
			}
			// Try again
			select {
			case h.queue <- entry:
			default:
				// Still full, drop this one
				h.stats.IncrementDropped(level)
				core.PutEntry(entry)
			}
		}

	case handler.DropNewest:
		fallthrough
	default:
		select {
		case h.queue <- entry:
		default:
			// Queue full - drop this entry
			h.stats.IncrementDropped(level)
			core.PutEntry(entry)
		}
	}
}

// enqueueBlocking waits up to blockTimeout for queue space and falls back
// to a synchronous write on timeout or close.
func (h *AsyncConsoleHandler) enqueueBlocking(entry *core.Entry) {
	timer := h.timers.Get().(*time.Timer)
	timer.Reset(h.blockTimeout)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		h.timers.Put(timer)
	}()

	select {
	case h.queue <- entry:
	case <-timer.C:
		// Timeout - fall back to synchronous write
		h.stats.IncrementBlocked()
		h.write(entry)
		core.PutEntry(entry)
	case <-h.closed:
		h.write(entry)
		core.PutEntry(entry)
	}
}

// process handles async log processing
func (h *AsyncConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case entry := <-h.queue:
			h.processWrite(entry)
			// Batch drain: process additional queued entries without blocking
		batchDrain:
			for {
				select {
				case entry := <-h.queue:
					h.processWrite(entry)
				default:
					break batchDrain
				}
			}
		case <-h.closed:
			// Drain remaining entries with timeout
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case entry := <-h.queue:
					h.processWrite(entry)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// processWrite writes using the handler-owned buffer. Used only by the
// single consumer goroutine, so the lock is only contended by overflow
// fallback writes.
func (h *AsyncConsoleHandler) processWrite(entry *core.Entry) {
	h.mu.Lock()
	h.writeLocked(entry)
	h.mu.Unlock()
	core.PutEntry(entry)
}

// Close closes the handler, draining the queue with a timeout.
func (h *AsyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		h.sendMu.Lock()
		close(h.closed)
		h.sendMu.Unlock()
	})
	h.wg.Wait()
	return nil
}
