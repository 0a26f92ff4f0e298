package consolehandler

import (
	"github.com/philipp01105/nlogfacade/core"
)

// SyncConsoleHandler writes each entry on the caller's goroutine. Message
// text is produced during the call.
type SyncConsoleHandler struct {
	consoleBase
	syncEntry core.Entry
}

// newSyncConsoleHandler creates a new synchronous console handler.
func newSyncConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	h := &SyncConsoleHandler{}
	h.init(cfg)
	return h
}

// Write formats and writes one entry.
// Under no contention, uses the handler-owned entry and buffer. Under
// contention (parallel callers), uses a pooled entry and buffer that are
// formatted outside the lock.
func (h *SyncConsoleHandler) Write(level core.Level, msg any, err error) {
	t := h.now()
	if h.mu.TryLock() {
		h.syncEntry = core.Entry{Time: t, Level: level, Msg: msg, Err: err}
		h.writeLocked(&h.syncEntry)
		h.syncEntry = core.Entry{}
		h.mu.Unlock()
		return
	}

	entry := core.NewEntry(t, level, msg, err)
	h.write(entry)
	core.PutEntry(entry)
}

// Close closes the handler. Entries written after Close are still
// written; Close only marks the handler as closed.
func (h *SyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
	})
	return nil
}
