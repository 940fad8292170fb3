package bench

import "time"

// CPUClock reads consumed CPU time.
//
// Now returns a reading whose differences are elapsed CPU time. Resolution
// is the smallest difference the clock can report; shorter intervals are
// indistinguishable from zero and are reported as zero.
type CPUClock interface {
	Now() time.Duration
	Resolution() time.Duration
}

// elapsed returns end-start in seconds, or 0 below the clock resolution.
func elapsed(c CPUClock, start, end time.Duration) float64 {
	d := end - start
	if d < c.Resolution() || d < 0 {
		return 0
	}
	return d.Seconds()
}
