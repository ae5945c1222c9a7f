package queue

import (
	"log/slog"
	"time"
)

const (
	defaultCapacity = 256
	maxAttempts     = 3
)

// Handler processes one queued item. A non-nil error requeues the item
// until its attempt budget is exhausted.
type Handler[T any] func(item T) error

type job[T any] struct {
	item     T
	attempts int
}

// Queue decouples request handling from slow downstream dispatch. It is
// a bounded in-process channel drained in FIFO order by a periodic
// worker. Items failing more than maxAttempts times are dead-lettered to
// the structured log rather than dropped silently.
type Queue[T any] struct {
	name    string
	jobs    chan job[T]
	handler Handler[T]
	done    chan struct{}
}

func New[T any](name string, handler Handler[T]) *Queue[T] {
	return &Queue[T]{
		name:    name,
		jobs:    make(chan job[T], defaultCapacity),
		handler: handler,
		done:    make(chan struct{}),
	}
}

// Enqueue adds an item. Returns false when the queue is full; the caller
// decides whether that is fatal (it never is for telemetry-grade work).
func (q *Queue[T]) Enqueue(item T) bool {
	select {
	case q.jobs <- job[T]{item: item}:
		return true
	default:
		slog.Error("queue full, item rejected", "queue", q.name)
		return false
	}
}

// Start launches the drain worker. Every tick it processes all items
// currently queued, requeueing failures with an incremented attempt
// count. Stop by closing via Stop.
func (q *Queue[T]) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				q.drain()
			case <-q.done:
				q.drain()
				return
			}
		}
	}()
}

func (q *Queue[T]) Stop() {
	close(q.done)
}

func (q *Queue[T]) drain() {
	// Only drain what is queued right now so a failing item that gets
	// requeued is not retried in a tight loop within one tick.
	n := len(q.jobs)
	for i := 0; i < n; i++ {
		var j job[T]
		select {
		case j = <-q.jobs:
		default:
			return
		}

		if err := q.handler(j.item); err != nil {
			j.attempts++
			if j.attempts >= maxAttempts {
				slog.Error("queue item dead-lettered",
					"queue", q.name, "attempts", j.attempts, "error", err)
				continue
			}
			select {
			case q.jobs <- j:
			default:
				slog.Error("queue full, retry dropped", "queue", q.name, "error", err)
			}
		}
	}
}

// Len reports how many items are waiting.
func (q *Queue[T]) Len() int {
	return len(q.jobs)
}
