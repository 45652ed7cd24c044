package engine

import (
	"sync"

	"github.com/ashenfell/brawlarc/core"
)

// IntentQueue buffers input intents from the presentation thread until the
// simulation drains them, once per step, in arrival order. This is the only
// writer-facing surface the client has into the simulation.
type IntentQueue struct {
	mu      sync.Mutex
	pending []core.Intent
}

func NewIntentQueue() *IntentQueue {
	return &IntentQueue{pending: make([]core.Intent, 0, 32)}
}

// Push appends an intent. Safe from any goroutine.
func (q *IntentQueue) Push(intent core.Intent) {
	q.mu.Lock()
	q.pending = append(q.pending, intent)
	q.mu.Unlock()
}

// Drain returns all queued intents in arrival order and empties the queue.
func (q *IntentQueue) Drain() []core.Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]core.Intent, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// TakeControl extracts pause toggles, leaving other intents queued in
// order. Pause must be honored even while no steps execute, so the
// scheduler drains these ahead of the step loop.
func (q *IntentQueue) TakeControl() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	toggles := 0
	kept := q.pending[:0]
	for _, it := range q.pending {
		if it.Kind == core.IntentTogglePause {
			toggles++
			continue
		}
		kept = append(kept, it)
	}
	q.pending = kept
	return toggles
}

// Len returns the number of queued intents.
func (q *IntentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
