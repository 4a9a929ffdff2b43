package timing

import (
	"sync"
	"time"
)

// Scheduler invokes functions repeatedly at a fixed interval.
type Scheduler interface {
	// ScheduleEvery invokes fn once per interval until the returned cancel
	// func is called. Invocations are serial: the next invocation is not
	// delivered before the previous one returns.
	ScheduleEvery(interval time.Duration, fn func()) (cancel func())
}

type tickerScheduler struct{}

// NewTickerScheduler creates a Scheduler backed by [time.Ticker].
// Each subscription runs its own goroutine; cancel stops the ticker and
// the goroutine. Intervals below 1ms are raised to 1ms.
func NewTickerScheduler() Scheduler { return tickerScheduler{} }

func (tickerScheduler) ScheduleEvery(interval time.Duration, fn func()) (cancel func()) {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
