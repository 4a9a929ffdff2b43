package progress_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/progress"
)

func TestTimer_Snapshot(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &progress.TimerOptions{
		Duration: 5 * time.Second,
		Delay:    time.Second,
	})
	f.tick(time.Second)
	f.tick(time.Second)

	snap := f.timer.Snapshot()
	want := &progress.Snapshot{
		Running:  true,
		Start:    time.Unix(0, 0),
		Current:  time.Unix(2, 0),
		Stop:     time.Unix(5, 0),
		Duration: 5 * time.Second,
	}
	if diff := cmp.Diff(snap, want); diff != "" {
		t.Fatalf("unexpected snapshot (-got +want):\n%v", diff)
	}
}

func TestTimer_Snapshot_Stopped(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	if diff := cmp.Diff(f.timer.Snapshot(), &progress.Snapshot{}); diff != "" {
		t.Fatalf("unexpected snapshot (-got +want):\n%v", diff)
	}
}

func TestTimer_RestoreSnapshot(t *testing.T) {
	t.Parallel()

	src := newFixture(t, &progress.TimerOptions{
		Duration: 4 * time.Second,
		Delay:    time.Second,
	})
	src.tick(time.Second)

	data, err := json.Marshal(src.timer.Snapshot())
	if err != nil {
		t.Fatalf("json.Marshal(snap) error = %v, want nil", err)
	}

	var snap progress.Snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("json.Unmarshal(data) error = %v, want nil", err)
	}

	// the restored timer shares the fixture epoch, progress carries over
	dst := newFixture(t, &progress.TimerOptions{Delay: time.Second})
	dst.clock.Set(src.clock.Now())
	if err = dst.timer.RestoreSnapshot(&snap); err != nil {
		t.Fatalf("timer.RestoreSnapshot(snap) error = %v, want nil", err)
	}

	if diff := cmp.Diff(dst.timer.Progress(), src.timer.Progress(), approx); diff != "" {
		t.Fatalf("restored progress differs (-got +want):\n%v", diff)
	}
	if got, want := dst.timer.Remaining(), src.timer.Remaining(); got != want {
		t.Fatalf("dst.timer.Remaining() = %v, want %v", got, want)
	}

	// the restored window keeps ticking to completion
	for range 3 {
		dst.tick(time.Second)
	}
	if dst.timer.Running() {
		t.Fatal("dst.timer.Running() = true, want false after completion")
	}
}

func TestTimer_RestoreSnapshot_Stopped(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &progress.TimerOptions{Duration: 5 * time.Second})

	if err := f.timer.RestoreSnapshot(nil); err != nil {
		t.Fatalf("timer.RestoreSnapshot(nil) error = %v, want nil", err)
	}
	if f.timer.Running() {
		t.Fatal("timer.Running() = true, want false")
	}
}

func TestTimer_RestoreSnapshot_Invalid(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	got := f.timer.RestoreSnapshot(&progress.Snapshot{
		Running: true,
		Start:   time.Unix(10, 0),
		Current: time.Unix(11, 0),
		Stop:    time.Unix(5, 0),
	})
	want := progress.ErrInvalidArgument
	if diff := cmp.Diff(got, want, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("timer.RestoreSnapshot() error = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestTimer_RestoreSnapshot_Killed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.timer.Kill()

	got := f.timer.RestoreSnapshot(&progress.Snapshot{})
	want := progress.ErrKilled
	if diff := cmp.Diff(got, want, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("timer.RestoreSnapshot() error = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestTimer_MarshalJSON(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &progress.TimerOptions{Duration: 3 * time.Second})

	got, err := json.Marshal(f.timer)
	if err != nil {
		t.Fatalf("json.Marshal(timer) error = %v, want nil", err)
	}
	want, err := json.Marshal(f.timer.Snapshot())
	if err != nil {
		t.Fatalf("json.Marshal(snap) error = %v, want nil", err)
	}
	if diff := cmp.Diff(string(got), string(want)); diff != "" {
		t.Fatalf("timer JSON differs from snapshot JSON (-got +want):\n%v", diff)
	}
}
