package service

import "github.com/guttosm/drone-fulfillment/internal/domain/model"

// BacklogQueue keeps unmet order fragments in arrival order.
// Fragments are never merged, so one order may have several entries.
type BacklogQueue struct {
	fragments []model.BacklogFragment
}

// NewBacklogQueue creates an empty queue.
func NewBacklogQueue() *BacklogQueue {
	return &BacklogQueue{}
}

// Append adds a fragment to the tail. Empty fragments are ignored.
func (q *BacklogQueue) Append(f model.BacklogFragment) {
	if f.IsEmpty() {
		return
	}
	q.fragments = append(q.fragments, f)
}

// Drain removes and returns every queued fragment, oldest first.
func (q *BacklogQueue) Drain() []model.BacklogFragment {
	out := q.fragments
	q.fragments = nil
	return out
}

// Snapshot returns a copy of the queued fragments, oldest first.
func (q *BacklogQueue) Snapshot() []model.BacklogFragment {
	out := make([]model.BacklogFragment, len(q.fragments))
	for i, f := range q.fragments {
		out[i] = model.BacklogFragment{
			OrderID:   f.OrderID,
			Requested: append([]model.OrderLine(nil), f.Requested...),
		}
	}
	return out
}

// Len returns the number of queued fragments.
func (q *BacklogQueue) Len() int {
	return len(q.fragments)
}

// DeferredUnits returns the total units waiting for stock.
func (q *BacklogQueue) DeferredUnits() int {
	total := 0
	for _, f := range q.fragments {
		for _, l := range f.Requested {
			total += l.Quantity
		}
	}
	return total
}
