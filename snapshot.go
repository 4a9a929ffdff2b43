package progress

import (
	"encoding/json"
	"time"

	"braces.dev/errtrace"
)

// Snapshot is a serializable view of a timer's time window. Only
// deterministic fields are included, runtime-only state such as hooks and
// the scheduler subscription must be reattached manually after restoration.
type Snapshot struct {
	Running  bool          `json:"running"`
	Start    time.Time     `json:"start,omitzero"`
	Current  time.Time     `json:"current,omitzero"`
	Stop     time.Time     `json:"stop,omitzero"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Snapshot returns an immutable view of the timer's window. The returned
// snapshot can be serialized directly or passed to [Timer.RestoreSnapshot].
func (t *Timer) Snapshot() *Snapshot {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		return &Snapshot{}
	}
	return &Snapshot{
		Running:  true,
		Start:    t.start,
		Current:  t.current,
		Stop:     t.stop,
		Duration: t.duration,
	}
}

// RestoreSnapshot applies a previously captured window onto the timer,
// replacing its current state. A nil or stopped snapshot stops the timer.
// A running snapshot violating the window invariant (stop before start, or
// current before start) fails with [ErrInvalidArgument].
func (t *Timer) RestoreSnapshot(snap *Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.killed {
		return errtrace.Wrap(ErrKilled)
	}
	if snap == nil || !snap.Running {
		return errtrace.Wrap(t.sm.Fire(triggerStop))
	}
	if snap.Stop.Before(snap.Start) || snap.Current.Before(snap.Start) {
		return errtrace.Wrap(NewInvalidArgumentError("snapshot window out of order"))
	}
	return errtrace.Wrap(t.sm.Fire(triggerStart, snap))
}

// MarshalJSON implements json.Marshaler.
func (t *Timer) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(t.Snapshot()))
}
