package hal

// FrameQueue is a Frames implementation driven by an explicit Fire call.
// Hosts fire it once per tick; tests and one-shot renders fire it by hand.
type FrameQueue struct {
	queue []func(now float64)
	spare []func(now float64)
}

func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

func (q *FrameQueue) RequestFrame(fn func(now float64)) {
	if fn == nil {
		return
	}
	q.queue = append(q.queue, fn)
}

// Pending returns the number of callbacks waiting for the next Fire.
func (q *FrameQueue) Pending() int { return len(q.queue) }

// Fire runs the callbacks queued before the call. Callbacks requested while
// firing wait for the next Fire.
func (q *FrameQueue) Fire(now float64) int {
	run := q.queue
	q.queue = q.spare[:0]
	for i, fn := range run {
		fn(now)
		run[i] = nil
	}
	q.spare = run[:0]
	return len(run)
}
