// Package timing abstracts the time sources used by the progress timer.
//
// Clock supplies wall-clock samples, Scheduler drives periodic ticks.
// Both are injected so that timers can be tested deterministically with
// ManualClock and ManualScheduler instead of real time.
package timing
