package event

import "wandtrail/internal/trail"

// FrameQueue holds one-shot frame callbacks. Callbacks requested while
// RunPending is running wait for the next call.
type FrameQueue struct {
	next    trail.FrameID
	order   []trail.FrameID
	pending map[trail.FrameID]func()
}

func (q *FrameQueue) Request(fn func()) trail.FrameID {
	if q.pending == nil {
		q.pending = make(map[trail.FrameID]func())
	}
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

// Cancel drops a pending callback. Unknown or already-run ids are ignored.
func (q *FrameQueue) Cancel(id trail.FrameID) {
	delete(q.pending, id)
}

// RunPending runs the callbacks queued before the call, in request order,
// and returns how many ran.
func (q *FrameQueue) RunPending() int {
	batch := q.order
	q.order = nil

	ran := 0
	for _, id := range batch {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn()
		ran++
	}
	return ran
}

func (q *FrameQueue) Len() int { return len(q.pending) }
