package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEventQueue_TimestampOrdering tests that events are processed in timestamp order
func TestEventQueue_TimestampOrdering(t *testing.T) {
	q := NewEventQueue()

	// Add events with different timestamps in random order
	q.Schedule(&MineRefillEvent{time: 100, Mine: "m1"})
	q.Schedule(&MineRefillEvent{time: 50, Mine: "m2"})
	q.Schedule(&MineRefillEvent{time: 150, Mine: "m3"})

	// Should be popped in timestamp order: 50, 100, 150
	for _, want := range []float64{50, 100, 150} {
		got := q.PopNext()
		if got.Timestamp() != want {
			t.Errorf("event timestamp = %g, want %g", got.Timestamp(), want)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Queue should be empty, len = %d", q.Len())
	}
}

// TestEventQueue_TiesAreFIFO tests same-timestamp events keep scheduling order
func TestEventQueue_TiesAreFIFO(t *testing.T) {
	q := NewEventQueue()

	q.Schedule(&BlockStartEvent{time: 10, Mine: "m", Duration: 0})
	q.Schedule(&BlockEndEvent{time: 10, Mine: "m"})
	q.Schedule(&MineRefillEvent{time: 10, Mine: "m"})
	q.Schedule(&MineRefillEvent{time: 5, Mine: "early"})

	var kinds []EventKind
	for q.Len() > 0 {
		kinds = append(kinds, q.PopNext().Kind())
	}

	assert.Equal(t, []EventKind{
		EventKindMineRefill,
		EventKindBlockStart,
		EventKindBlockEnd,
		EventKindMineRefill,
	}, kinds)
}

// TestEventQueue_ManyTies_Deterministic tests a large tie group drains in insertion order
func TestEventQueue_ManyTies_Deterministic(t *testing.T) {
	q := NewEventQueue()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, n := range names {
		q.Schedule(&MineRefillEvent{time: 1, Mine: n})
	}
	for _, want := range names {
		got := q.PopNext().(*MineRefillEvent)
		assert.Equal(t, want, got.Mine)
	}
}

// TestEventQueue_Peek tests Peek without removing
func TestEventQueue_Peek(t *testing.T) {
	q := NewEventQueue()

	if q.Peek() != nil {
		t.Error("Peek on empty queue should return nil")
	}

	q.Schedule(&MineRefillEvent{time: 100, Mine: "m1"})
	q.Schedule(&MineRefillEvent{time: 50, Mine: "m2"})

	peeked := q.Peek()
	if peeked.Timestamp() != 50 {
		t.Errorf("Peek timestamp = %g, want 50", peeked.Timestamp())
	}
	if q.Len() != 2 {
		t.Errorf("Peek should not remove event, len = %d, want 2", q.Len())
	}
}

// TestEventQueue_PopUntil tests the drain boundary is inclusive
func TestEventQueue_PopUntil(t *testing.T) {
	q := NewEventQueue()
	q.Schedule(&MineRefillEvent{time: 10, Mine: "m"})
	q.Schedule(&MineRefillEvent{time: 20, Mine: "m"})

	assert.Nil(t, q.PopUntil(9))
	assert.NotNil(t, q.PopUntil(10))
	assert.Nil(t, q.PopUntil(19.5))
	assert.NotNil(t, q.PopUntil(20))
	assert.Nil(t, q.PopUntil(1000))
}

// TestEventQueue_EmptyOperations tests operations on an empty queue
func TestEventQueue_EmptyOperations(t *testing.T) {
	q := NewEventQueue()

	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Peek())
	assert.Nil(t, q.PopNext())
	assert.Nil(t, q.PopUntil(1))
}

func TestEventQueue_ScheduleNil_Panics(t *testing.T) {
	q := NewEventQueue()
	assert.Panics(t, func() { q.Schedule(nil) })
}
