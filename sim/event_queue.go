package sim

import "container/heap"

// eventEntry wraps an Event with a sequence ID for deterministic FIFO
// tie-breaking when timestamps are equal.
type eventEntry struct {
	event Event
	seqID uint64
}

// eventHeap is a min-heap ordered by (Timestamp, seqID).
// Implements heap.Interface.
type eventHeap []eventEntry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Timestamp() != h[j].event.Timestamp() {
		return h[i].event.Timestamp() < h[j].event.Timestamp()
	}
	return h[i].seqID < h[j].seqID
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(eventEntry))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// EventQueue holds pending simulation events. Events with equal timestamps
// come out in the order they were scheduled.
type EventQueue struct {
	entries eventHeap
	nextSeq uint64
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{entries: make(eventHeap, 0)}
	heap.Init(&q.entries)
	return q
}

// Schedule adds an event to the queue.
func (q *EventQueue) Schedule(e Event) {
	if e == nil {
		panic("EventQueue.Schedule: event must not be nil")
	}
	heap.Push(&q.entries, eventEntry{event: e, seqID: q.nextSeq})
	q.nextSeq++
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return q.entries.Len()
}

// Peek returns the next event without removing it, or nil if empty.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.entries[0].event
}

// PopNext removes and returns the next event, or nil if empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.entries).(eventEntry).event
}

// PopUntil removes and returns the next event if its timestamp is at or
// before t. It returns nil otherwise.
func (q *EventQueue) PopUntil(t float64) Event {
	next := q.Peek()
	if next == nil || next.Timestamp() > t {
		return nil
	}
	return q.PopNext()
}
