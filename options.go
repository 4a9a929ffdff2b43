package progress

import (
	"log/slog"
	"time"

	"github.com/ghettovoice/progress/internal/log"
	"github.com/ghettovoice/progress/timing"
)

// DefaultDelay is the tick cadence used when [TimerOptions.Delay] is unset.
const DefaultDelay = time.Second

// RestartPolicy controls what happens when the timer completes.
type RestartPolicy int

const (
	// RestartAuto restarts the timer iff any complete hook returned true.
	RestartAuto RestartPolicy = iota
	// RestartAlways restarts the timer with the original duration,
	// the complete hook results are ignored.
	RestartAlways
	// RestartNever stops the timer, the complete hook results are ignored.
	RestartNever
)

func (p RestartPolicy) String() string {
	switch p {
	case RestartAuto:
		return "auto"
	case RestartAlways:
		return "always"
	case RestartNever:
		return "never"
	}
	return "unknown"
}

// RestartFromBool maps an explicit boolean restart flag to a policy.
func RestartFromBool(restart bool) RestartPolicy {
	if restart {
		return RestartAlways
	}
	return RestartNever
}

// TimerOptions describes available [Timer] options.
// Options are optional, a nil *TimerOptions is valid and means all defaults.
type TimerOptions struct {
	// Duration is the default span for Start calls without an explicit span.
	// Zero means the span must be supplied at Start time.
	Duration time.Duration
	// Delay is the tick cadence requested from the scheduler.
	// If zero, DefaultDelay is used. Negative delays are rejected by New.
	Delay time.Duration
	// Restart selects the completion behaviour. The zero value is RestartAuto.
	Restart RestartPolicy
	// AutoStart controls whether the timer starts immediately at construction.
	// If nil, the timer auto-starts iff Duration is non-zero.
	AutoStart *bool
	// OnUpdate, OnPause and OnComplete are registered as the first hook
	// of the corresponding event.
	OnUpdate   UpdateFunc
	OnPause    PauseFunc
	OnComplete CompleteFunc
	// Clock is the wall-clock source. If nil, [timing.System] is used.
	Clock timing.Clock
	// Scheduler drives periodic ticks. If nil, a [timing.NewTickerScheduler]
	// scheduler is used.
	Scheduler timing.Scheduler
	// Logger is the logger used by the timer.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *TimerOptions) duration() time.Duration {
	if o == nil {
		return 0
	}
	return o.Duration
}

func (o *TimerOptions) delay() time.Duration {
	if o == nil || o.Delay == 0 {
		return DefaultDelay
	}
	return o.Delay
}

func (o *TimerOptions) restart() RestartPolicy {
	if o == nil {
		return RestartAuto
	}
	return o.Restart
}

func (o *TimerOptions) autoStart() bool {
	if o == nil {
		return false
	}
	if o.AutoStart != nil {
		return *o.AutoStart
	}
	return o.Duration != 0
}

func (o *TimerOptions) clock() timing.Clock {
	if o == nil || o.Clock == nil {
		return timing.System
	}
	return o.Clock
}

func (o *TimerOptions) scheduler() timing.Scheduler {
	if o == nil || o.Scheduler == nil {
		return timing.NewTickerScheduler()
	}
	return o.Scheduler
}

func (o *TimerOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Bool returns a pointer to b, a shortcut for filling [TimerOptions.AutoStart].
func Bool(b bool) *bool { return &b }

func (o *TimerOptions) optUpdate() UpdateFunc {
	if o == nil {
		return nil
	}
	return o.OnUpdate
}

func (o *TimerOptions) optPause() PauseFunc {
	if o == nil {
		return nil
	}
	return o.OnPause
}

func (o *TimerOptions) optComplete() CompleteFunc {
	if o == nil {
		return nil
	}
	return o.OnComplete
}
