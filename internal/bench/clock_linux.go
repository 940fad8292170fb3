//go:build linux

package bench

import (
	"time"

	"golang.org/x/sys/unix"
)

// processClock reads CLOCK_PROCESS_CPUTIME_ID: CPU time consumed by every
// thread of this process. The kernel typically reports 1ns resolution.
type processClock struct {
	res time.Duration
}

// ProcessClock returns the process CPU-time clock.
func ProcessClock() CPUClock {
	res := time.Nanosecond
	var ts unix.Timespec
	if err := unix.ClockGetres(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err == nil && ts.Nano() > 0 {
		res = time.Duration(ts.Nano())
	}
	return processClock{res: res}
}

func (c processClock) Now() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0
	}
	return time.Duration(ts.Nano())
}

func (c processClock) Resolution() time.Duration {
	return c.res
}
