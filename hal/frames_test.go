package hal

import "testing"

func TestFrameQueueFiresOnce(t *testing.T) {
	q := NewFrameQueue()
	var got []float64
	q.RequestFrame(func(now float64) { got = append(got, now) })
	q.RequestFrame(nil)
	if q.Pending() != 1 {
		t.Fatalf("pending=%d want 1", q.Pending())
	}
	if n := q.Fire(16); n != 1 {
		t.Fatalf("fired=%d want 1", n)
	}
	if n := q.Fire(32); n != 0 {
		t.Fatalf("second fire ran %d callbacks", n)
	}
	if len(got) != 1 || got[0] != 16 {
		t.Fatalf("got=%v", got)
	}
}

func TestFrameQueueRequeueWaitsForNextFire(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var tick func(now float64)
	tick = func(now float64) {
		calls++
		q.RequestFrame(tick)
	}
	q.RequestFrame(tick)
	q.Fire(0)
	q.Fire(1)
	q.Fire(2)
	if calls != 3 {
		t.Fatalf("calls=%d want 3", calls)
	}
	if q.Pending() != 1 {
		t.Fatalf("pending=%d want 1", q.Pending())
	}
}
