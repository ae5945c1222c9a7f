package queue

import (
	"errors"
	"testing"
	"time"
)

func TestEnqueueAndDrainFIFO(t *testing.T) {
	var processed []int
	q := New("test", func(item int) error {
		processed = append(processed, item)
		return nil
	})

	for i := 1; i <= 5; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue(%d) rejected", i)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	q.drain()

	if q.Len() != 0 {
		t.Errorf("Len after drain = %d, want 0", q.Len())
	}
	for i, want := range []int{1, 2, 3, 4, 5} {
		if processed[i] != want {
			t.Errorf("processed[%d] = %d, want %d", i, processed[i], want)
		}
	}
}

func TestEnqueueFullRejects(t *testing.T) {
	q := New("test", func(item int) error { return nil })

	for i := 0; i < defaultCapacity; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue(%d) rejected before capacity", i)
		}
	}
	if q.Enqueue(-1) {
		t.Error("Enqueue accepted past capacity")
	}
	if q.Len() != defaultCapacity {
		t.Errorf("Len = %d, want %d", q.Len(), defaultCapacity)
	}
}

func TestFailedItemRequeued(t *testing.T) {
	calls := 0
	q := New("test", func(item string) error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	})

	q.Enqueue("item")

	q.drain()
	if q.Len() != 1 {
		t.Fatalf("Len after failed drain = %d, want 1", q.Len())
	}

	q.drain()
	if q.Len() != 0 {
		t.Errorf("Len after retry = %d, want 0", q.Len())
	}
	if calls != 2 {
		t.Errorf("handler called %d times, want 2", calls)
	}
}

func TestDeadLetterAfterMaxAttempts(t *testing.T) {
	calls := 0
	q := New("test", func(item string) error {
		calls++
		return errors.New("permanent")
	})

	q.Enqueue("poison")

	for i := 0; i < maxAttempts+2; i++ {
		q.drain()
	}

	if calls != maxAttempts {
		t.Errorf("handler called %d times, want %d", calls, maxAttempts)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0 after dead-letter", q.Len())
	}
}

func TestFailingItemDoesNotBlockOthers(t *testing.T) {
	var succeeded []int
	q := New("test", func(item int) error {
		if item == 2 {
			return errors.New("bad item")
		}
		succeeded = append(succeeded, item)
		return nil
	})

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	q.drain()

	if len(succeeded) != 2 || succeeded[0] != 1 || succeeded[1] != 3 {
		t.Errorf("succeeded = %v, want [1 3]", succeeded)
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1 (failed item requeued)", q.Len())
	}
}

func TestStartProcessesAndStops(t *testing.T) {
	done := make(chan int, 1)
	q := New("test", func(item int) error {
		done <- item
		return nil
	})

	q.Start(10 * time.Millisecond)
	defer q.Stop()

	q.Enqueue(7)

	select {
	case got := <-done:
		if got != 7 {
			t.Errorf("processed %d, want 7", got)
		}
	case <-time.After(time.Second):
		t.Fatal("item not processed within 1s")
	}
}
