package timing

import "time"

// Clock is a source of wall-clock samples.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the real time Clock.
var System Clock = systemClock{}

// ClockFunc adapts a plain func to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
