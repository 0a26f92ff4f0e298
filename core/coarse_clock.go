package core

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// CoarseClockInterval is how often the coarse clock refreshes.
const CoarseClockInterval = 500 * time.Microsecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every CoarseClockInterval. It is safe to call multiple times;
// the goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(CoarseClockInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. Before
// StartCoarseClock has been called it falls back to time.Now.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}

// Clock returns the timestamp source handlers should use: CoarseNow when
// coarse is true (starting the clock if needed), time.Now otherwise.
func Clock(coarse bool) func() time.Time {
	if coarse {
		StartCoarseClock()
		return CoarseNow
	}
	return time.Now
}
