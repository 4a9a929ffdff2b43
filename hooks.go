package progress

import (
	"time"

	"github.com/ghettovoice/progress/internal/types"
)

// UpdateFunc receives the per-tick report.
// While the timer is stopped each tick reports (false, 0, [StoppedRemaining]).
type UpdateFunc func(running bool, progress float64, remaining time.Duration)

// PauseFunc reports whether the timer should hold its progress on the
// current tick. Evaluated only while the timer is running.
type PauseFunc func() bool

// CompleteFunc is invoked when the timer completes. Under [RestartAuto]
// the timer restarts iff any registered CompleteFunc returned true.
type CompleteFunc func() bool

// hookRegistry keeps the ordered update/pause/complete hook sequences.
// Hooks are always invoked outside the timer lock, they may call back
// into the Timer.
type hookRegistry struct {
	update   types.CallbackManager[UpdateFunc]
	pause    types.CallbackManager[PauseFunc]
	complete types.CallbackManager[CompleteFunc]
}

func (r *hookRegistry) notifyUpdate(running bool, progress float64, remaining time.Duration) {
	for cb := range r.update.All() {
		cb(running, progress, remaining)
	}
}

// paused reports whether any pause hook returns true, first true wins.
// An empty sequence is never paused.
func (r *hookRegistry) paused() bool {
	for cb := range r.pause.All() {
		if cb() {
			return true
		}
	}
	return false
}

// completed invokes all complete hooks and aggregates their results with OR.
// Every hook runs even after the first true, later hooks keep their side effects.
// An empty sequence yields false.
func (r *hookRegistry) completed() bool {
	restart := false
	for cb := range r.complete.All() {
		if cb() {
			restart = true
		}
	}
	return restart
}
