package handler

import (
	"go.uber.org/atomic"

	"github.com/philipp01105/nlogfacade/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log entry when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log entry when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.TraceLevel: DropNewest,
		core.DebugLevel: DropNewest,
		core.InfoLevel:  DropNewest,
		core.WarnLevel:  DropNewest,
		core.ErrorLevel: Block, // never silently lose errors
		core.FatalLevel: Block,
	}
}

// Stats tracks handler statistics
type Stats struct {
	dropped   [6]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if level.Valid() {
		s.dropped[level].Inc()
	}
}

// IncrementBlocked increments the counter of writes that hit a Block
// timeout and were written synchronously instead.
func (s *Stats) IncrementBlocked() {
	s.blocked.Inc()
}

// IncrementProcessed increments the counter of entries written out
func (s *Stats) IncrementProcessed() {
	s.processed.Inc()
}

// IncrementFailed increments the counter of entries whose write or text
// production failed
func (s *Stats) IncrementFailed() {
	s.failed.Inc()
}

// Dropped returns the dropped count for a level
func (s *Stats) Dropped(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.dropped[level].Load()
}

// TotalDropped returns the total dropped across all levels
func (s *Stats) TotalDropped() uint64 {
	var n uint64
	for i := range s.dropped {
		n += s.dropped[i].Load()
	}
	return n
}

// Blocked returns the blocked count
func (s *Stats) Blocked() uint64 {
	return s.blocked.Load()
}

// Processed returns the processed count
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}

// Failed returns the failed count
func (s *Stats) Failed() uint64 {
	return s.failed.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Dropped   map[core.Level]uint64
	Blocked   uint64
	Processed uint64
	Failed    uint64
}

// TotalDropped sums the per-level dropped counts of the snapshot
func (s Snapshot) TotalDropped() uint64 {
	var n uint64
	for _, d := range s.Dropped {
		n += d
	}
	return n
}

// Snapshot returns a snapshot of current statistics
func (s *Stats) Snapshot() Snapshot {
	dropped := make(map[core.Level]uint64, len(s.dropped))
	for _, l := range core.Levels() {
		dropped[l] = s.dropped[l].Load()
	}
	return Snapshot{
		Dropped:   dropped,
		Blocked:   s.blocked.Load(),
		Processed: s.processed.Load(),
		Failed:    s.failed.Load(),
	}
}
