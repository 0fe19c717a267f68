package hal

import "time"

// hostTime is a monotonic ms clock. With a fixed step it ignores the wall
// clock and advances exactly step per tick, which keeps headless output
// reproducible.
type hostTime struct {
	start time.Time
	fixed time.Duration
	now   time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{start: time.Now()}
}

func newFixedTime(step time.Duration) *hostTime {
	return &hostTime{fixed: step}
}

func (t *hostTime) Now() float64 {
	return float64(t.now) / float64(time.Millisecond)
}

func (t *hostTime) step() {
	if t.fixed > 0 {
		t.now += t.fixed
		return
	}
	t.now = time.Since(t.start)
}
