//go:build !linux

package bench

import "time"

var processStart = time.Now()

// monotonicClock measures wall time on the monotonic clock. It stands in
// for CPU time where CLOCK_PROCESS_CPUTIME_ID is unavailable, so results
// include time the process spent descheduled.
type monotonicClock struct{}

// ProcessClock returns the best available CPU-time clock.
func ProcessClock() CPUClock {
	return monotonicClock{}
}

func (monotonicClock) Now() time.Duration {
	return time.Since(processStart)
}

func (monotonicClock) Resolution() time.Duration {
	return time.Microsecond
}
