package ecs

// Queue is the scene's event channel. Producers publish with Send; one
// consumer drains per tick. FIFO, no fan-out; delivery beyond Drain is the
// consumer's business.
type Queue struct {
	items []any
}

// Send appends an event.
func (q *Queue) Send(event any) {
	if q == nil {
		return
	}
	q.items = append(q.items, event)
}

// Drain returns all pending events in publish order and clears the queue.
func (q *Queue) Drain() []any {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
