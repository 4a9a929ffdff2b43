// Package progress implements a polling progress timer for UI-adjacent
// scheduling such as countdowns and progress bars.
//
// A Timer tracks elapsed time against a target duration and reports
// normalized progress on every tick of an injected scheduler. Pause hooks
// freeze progress by sliding the time window into the future, complete hooks
// feed the restart-or-stop decision. The timer re-samples the wall clock on
// each tick instead of counting intervals, so it tolerates scheduler jitter
// but is not a high-resolution or drift-corrected timer.
//
// Basic usage:
//
//	timer, err := progress.New(&progress.TimerOptions{
//	    Duration: 5 * time.Second,
//	    OnUpdate: func(running bool, prog float64, remaining time.Duration) {
//	        fmt.Printf("%.0f%% (%s left)\n", prog, remaining)
//	    },
//	})
//	if err != nil {
//	    // ...
//	}
//	defer timer.Kill()
package progress
