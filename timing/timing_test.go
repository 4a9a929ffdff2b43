package timing_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/ghettovoice/progress/timing"
)

func TestManualClock(t *testing.T) {
	t.Parallel()

	start := time.Unix(1000, 0)
	clock := timing.NewManualClock(start)

	if got := clock.Now(); !got.Equal(start) {
		t.Fatalf("clock.Now() = %v, want %v", got, start)
	}

	clock.Advance(1500 * time.Millisecond)
	if got, want := clock.Now(), start.Add(1500*time.Millisecond); !got.Equal(want) {
		t.Fatalf("clock.Now() = %v, want %v", got, want)
	}

	clock.Set(start)
	if got := clock.Now(); !got.Equal(start) {
		t.Fatalf("clock.Now() = %v, want %v", got, start)
	}
}

func TestClockFunc(t *testing.T) {
	t.Parallel()

	at := time.Unix(42, 0)
	var clock timing.Clock = timing.ClockFunc(func() time.Time { return at })

	if got := clock.Now(); !got.Equal(at) {
		t.Fatalf("clock.Now() = %v, want %v", got, at)
	}
}

func TestManualScheduler(t *testing.T) {
	t.Parallel()

	sched := timing.NewManualScheduler()

	var got []string
	cancel1 := sched.ScheduleEvery(time.Second, func() { got = append(got, "a") })
	sched.ScheduleEvery(2*time.Second, func() { got = append(got, "b") })

	if diff := cmp.Diff(sched.Intervals(), []time.Duration{time.Second, 2 * time.Second}); diff != "" {
		t.Fatalf("unexpected intervals (-got +want):\n%v", diff)
	}

	sched.Tick()
	cancel1()
	// cancel is idempotent
	cancel1()
	sched.Tick()

	if diff := cmp.Diff(got, []string{"a", "b", "b"}); diff != "" {
		t.Fatalf("unexpected invocations (-got +want):\n%v", diff)
	}
	if got := sched.Len(); got != 1 {
		t.Fatalf("sched.Len() = %d, want 1", got)
	}
}

func TestTickerScheduler(t *testing.T) {
	defer goleak.VerifyNone(t)

	sched := timing.NewTickerScheduler()

	var calls atomic.Int32
	fired := make(chan struct{}, 1)
	cancel := sched.ScheduleEvery(time.Millisecond, func() {
		if calls.Add(1) == 1 {
			fired <- struct{}{}
		}
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not fire within 1s")
	}

	cancel()
	cancel()

	// no invocations after cancel settles
	time.Sleep(5 * time.Millisecond)
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if got := calls.Load(); got != after {
		t.Fatalf("scheduler fired after cancel: %d -> %d", after, got)
	}
}
