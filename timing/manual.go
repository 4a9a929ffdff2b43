package timing

import (
	"sync"
	"time"
)

// ManualClock is a Clock whose current time only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a ManualClock positioned at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative d moves it backwards.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set positions the clock at t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// ManualScheduler is a Scheduler whose subscriptions fire only on explicit
// Tick calls. It records the requested intervals for assertions.
type ManualScheduler struct {
	mu     sync.Mutex
	subs   []*manualSub
	nextID int
}

type manualSub struct {
	id       int
	interval time.Duration
	fn       func()
}

// NewManualScheduler creates an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (s *ManualScheduler) ScheduleEvery(interval time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, &manualSub{id, interval, fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					break
				}
			}
			s.mu.Unlock()
		})
	}
}

// Tick invokes every active subscription once, in subscription order.
func (s *ManualScheduler) Tick() {
	s.mu.Lock()
	fns := make([]func(), len(s.subs))
	for i, sub := range s.subs {
		fns[i] = sub.fn
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of active subscriptions.
func (s *ManualScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Intervals returns the intervals of active subscriptions in subscription order.
func (s *ManualScheduler) Intervals() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	intervals := make([]time.Duration, len(s.subs))
	for i, sub := range s.subs {
		intervals[i] = sub.interval
	}
	return intervals
}
