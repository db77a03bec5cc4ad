package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the current time. Formatters read it once per line.
type Clock func() time.Time

// SystemClock reads the wall clock on every call
func SystemClock() time.Time {
	return time.Now()
}

var (
	coarseOnce sync.Once
	coarseNow  atomic.Pointer[time.Time]
)

// coarseInterval is well below the millisecond precision of formatted timestamps
const coarseInterval = 500 * time.Microsecond

// CoarseClock returns a Clock backed by a cached time that a background
// goroutine refreshes every 500µs. The goroutine is started on first use
// and runs for the lifetime of the process.
func CoarseClock() Clock {
	coarseOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
	return coarseTime
}

func coarseTime() time.Time {
	return *coarseNow.Load()
}

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
