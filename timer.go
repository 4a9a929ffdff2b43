package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/progress/timing"
)

// StoppedRemaining is the remaining value reported while the timer is stopped.
// It is distinct from the zero remaining of a just-completed running timer.
const StoppedRemaining time.Duration = -1

const (
	stateStopped = "stopped"
	stateRunning = "running"
)

const (
	triggerStart = "start"
	triggerStop  = "stop"
)

// Timer is a polling progress timer. It tracks elapsed time against a target
// duration, reports normalized progress on every tick and decides between
// restart and stop on completion.
//
// Ticks are driven by the [timing.Scheduler] supplied at construction, one
// invocation per configured delay. A tick samples the clock instead of
// counting intervals, so scheduler jitter skews single reports but does not
// accumulate.
//
// A stopped timer keeps receiving ticks and reports the stopped sentinel
// (false, 0, [StoppedRemaining]) until Kill detaches it from the scheduler.
//
// Hooks run synchronously inside the tick and outside the timer lock, they
// may call back into the Timer. Panics raised by hooks are not recovered.
type Timer struct {
	mu sync.Mutex
	sm *stateless.StateMachine

	defaultDur time.Duration
	delay      time.Duration
	policy     RestartPolicy
	clock      timing.Clock
	log        *slog.Logger

	hooks hookRegistry

	// time window, zeroed while stopped
	start    time.Time
	current  time.Time
	stop     time.Time
	duration time.Duration

	cancelTick func()
	killed     bool
}

// New creates a new [Timer] and subscribes it to the scheduler with the
// configured delay. The subscription stays active until [Timer.Kill].
//
// Options are optional, default options are used if nil (see [TimerOptions]).
// If the resolved auto-start is true the timer starts immediately with the
// configured duration.
func New(opts *TimerOptions) (*Timer, error) {
	if opts.delay() < 0 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("negative delay"))
	}

	t := &Timer{
		defaultDur: opts.duration(),
		delay:      opts.delay(),
		policy:     opts.restart(),
		clock:      opts.clock(),
		log:        opts.log(),
	}

	sm := stateless.NewStateMachine(stateStopped)
	sm.Configure(stateStopped).
		Permit(triggerStart, stateRunning).
		PermitReentry(triggerStop).
		OnEntry(t.clearWindow)
	sm.Configure(stateRunning).
		PermitReentry(triggerStart).
		Permit(triggerStop, stateStopped).
		OnEntryFrom(triggerStart, t.openWindow)
	t.sm = sm

	if fn := opts.optUpdate(); fn != nil {
		t.hooks.update.Add(fn)
	}
	if fn := opts.optPause(); fn != nil {
		t.hooks.pause.Add(fn)
	}
	if fn := opts.optComplete(); fn != nil {
		t.hooks.complete.Add(fn)
	}

	t.cancelTick = opts.scheduler().ScheduleEvery(t.delay, t.tick)

	if opts.autoStart() {
		if err := t.Start(0); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return t, nil
}

// Start opens a fresh time window of the given span. A zero d means the
// duration configured at construction. Starting a running timer fully
// replaces its window.
//
// A zero or negative effective span is accepted and yields a timer that
// completes on its next tick.
func (t *Timer) Start(d time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.killed {
		return errtrace.Wrap(ErrKilled)
	}
	if d == 0 {
		d = t.defaultDur
	}
	return errtrace.Wrap(t.sm.Fire(triggerStart, d))
}

// Stop clears the time window. Idempotent. The scheduler subscription stays
// active and subsequent ticks report the stopped sentinel.
func (t *Timer) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.killed {
		return errtrace.Wrap(ErrKilled)
	}
	return errtrace.Wrap(t.sm.Fire(triggerStop))
}

// Kill permanently detaches the timer from its scheduler. Irreversible and
// idempotent. After Kill no further ticks are delivered, Start and Stop fail
// with [ErrKilled]; queries keep answering from the last window.
func (t *Timer) Kill() {
	t.mu.Lock()
	if t.killed {
		t.mu.Unlock()
		return
	}
	t.killed = true
	cancel := t.cancelTick
	t.cancelTick = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.log.Debug("timer killed")
}

// Running reports whether the timer has an active time window.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runningLocked()
}

// Progress returns the elapsed fraction of the active window in percent,
// clamped to [0, 100]. A stopped timer reports 0.
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		return 0
	}
	return t.progressLocked()
}

// Remaining returns the time left before the window's stop mark, floored
// at 0. A stopped timer reports [StoppedRemaining].
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		return StoppedRemaining
	}
	return t.remainingLocked()
}

// Elapsed returns the time elapsed inside the active window, excluding
// paused ticks. A stopped timer reports 0.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		return 0
	}
	return t.current.Sub(t.start)
}

// Duration returns the span of the active window, or the configured default
// duration while stopped.
func (t *Timer) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		return t.defaultDur
	}
	return t.duration
}

// Delay returns the tick cadence requested from the scheduler.
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// OnUpdate registers fn after all previously registered update hooks and
// returns a func that removes it.
func (t *Timer) OnUpdate(fn UpdateFunc) (remove func()) {
	if fn == nil {
		return func() {}
	}
	return t.hooks.update.Add(fn)
}

// OnPause registers fn after all previously registered pause hooks and
// returns a func that removes it.
func (t *Timer) OnPause(fn PauseFunc) (remove func()) {
	if fn == nil {
		return func() {}
	}
	return t.hooks.pause.Add(fn)
}

// OnComplete registers fn after all previously registered complete hooks and
// returns a func that removes it.
func (t *Timer) OnComplete(fn CompleteFunc) (remove func()) {
	if fn == nil {
		return func() {}
	}
	return t.hooks.complete.Add(fn)
}

func (t *Timer) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		return slog.GroupValue(slog.Bool("running", false))
	}
	return slog.GroupValue(
		slog.Bool("running", true),
		slog.Float64("progress", t.progressLocked()),
		slog.Duration("remaining", t.remainingLocked()),
	)
}

// tick runs the per-interval update. Invoked by the scheduler.
func (t *Timer) tick() {
	t.mu.Lock()
	if t.killed {
		t.mu.Unlock()
		return
	}
	if !t.runningLocked() {
		t.mu.Unlock()
		t.hooks.notifyUpdate(false, 0, StoppedRemaining)
		return
	}
	now := t.clock.Now()
	t.mu.Unlock()

	paused := t.hooks.paused()

	t.mu.Lock()
	if !t.runningLocked() {
		// a pause hook stopped the timer mid-tick
		t.mu.Unlock()
		return
	}
	if paused {
		// shift the whole window forward by the time elapsed since the
		// previous tick: progress stays frozen, the window slides into
		// the future
		delta := now.Sub(t.current)
		t.start = t.start.Add(delta)
		t.stop = t.stop.Add(delta)
	}
	t.current = now
	prog := t.progressLocked()
	rem := t.remainingLocked()
	t.mu.Unlock()

	t.hooks.notifyUpdate(true, prog, rem)

	t.mu.Lock()
	complete := t.runningLocked() && t.remainingLocked() <= 0
	dur := t.duration
	t.mu.Unlock()
	if !complete {
		return
	}

	restart := t.hooks.completed()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.killed {
		return
	}
	switch t.policy {
	case RestartAlways:
		restart = true
	case RestartNever:
		restart = false
	}
	t.log.Debug("timer completed",
		slog.Any("policy", t.policy),
		slog.Bool("restart", restart),
	)
	if restart {
		// restart with the span the completed window was opened with
		_ = t.sm.Fire(triggerStart, dur)
		return
	}
	_ = t.sm.Fire(triggerStop)
}

func (t *Timer) runningLocked() bool {
	return t.sm.MustState() == stateRunning
}

func (t *Timer) progressLocked() float64 {
	span := t.stop.Sub(t.start)
	if span <= 0 {
		return 100
	}
	p := float64(t.current.Sub(t.start)) / float64(span) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func (t *Timer) remainingLocked() time.Duration {
	rem := t.stop.Sub(t.current)
	if rem < 0 {
		return 0
	}
	return rem
}

// openWindow is the running-state entry action. The trigger argument is
// either the span to run for or a [*Snapshot] to restore verbatim.
func (t *Timer) openWindow(_ context.Context, args ...any) error {
	switch v := args[0].(type) {
	case time.Duration:
		now := t.clock.Now()
		t.start = now
		t.current = now
		t.stop = now.Add(v)
		t.duration = v
	case *Snapshot:
		t.start = v.Start
		t.current = v.Current
		t.stop = v.Stop
		t.duration = v.Duration
	default:
		return errtrace.Wrap(NewInvalidArgumentError("bad start argument %T", v))
	}
	t.log.Debug("timer started",
		slog.Duration("duration", t.duration),
		slog.Time("stop", t.stop),
	)
	return nil
}

// clearWindow is the stopped-state entry action.
func (t *Timer) clearWindow(context.Context, ...any) error {
	t.start = time.Time{}
	t.current = time.Time{}
	t.stop = time.Time{}
	t.duration = 0
	t.log.Debug("timer stopped")
	return nil
}
