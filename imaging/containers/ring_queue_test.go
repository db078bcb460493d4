package containers

import "testing"

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	if !rq.IsEmpty() {
		t.Error("fresh queue not empty")
	}

	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if !rq.IsFull() {
		t.Error("queue not full after filling")
	}
	if err := rq.Enqueue(4); err == nil {
		t.Error("Enqueue on a full queue did not fail")
	}

	for i := 1; i <= 3; i++ {
		v, err := rq.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if v != i {
			t.Errorf("Dequeue = %d, want %d", v, i)
		}
	}
	if _, err := rq.Dequeue(); err == nil {
		t.Error("Dequeue on an empty queue did not fail")
	}
}

func TestRingQueueWrapAround(t *testing.T) {
	rq := NewRingQueue[string](2)

	for i := 0; i < 5; i++ {
		if err := rq.Enqueue("a"); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
		if v, err := rq.Dequeue(); err != nil || v != "a" {
			t.Fatalf("Dequeue = %q, %v", v, err)
		}
	}
	if rq.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", rq.Len())
	}
}

func TestRingQueuePeek(t *testing.T) {
	rq := NewRingQueue[int](2)
	if _, err := rq.Peek(); err == nil {
		t.Error("Peek on an empty queue did not fail")
	}

	if err := rq.Enqueue(7); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	v, err := rq.Peek()
	if err != nil || v != 7 {
		t.Errorf("Peek = %d, %v", v, err)
	}
	if rq.Len() != 1 {
		t.Error("Peek consumed the element")
	}
}
