package memory

import (
	"testing"

	"mimir/rc"
)

type victim struct {
	closes *int
}

func (v *victim) Finalize() {
	if v.closes != nil {
		*v.closes++
	}
}

func TestRetireRingBasic(t *testing.T) {
	r := NewRetireRing(4)
	h1 := rc.Make(victim{})
	h2 := rc.Make(victim{})

	if !r.Enqueue(&h1) || !r.Enqueue(&h2) {
		t.Fatal("enqueue failed unexpectedly")
	}
	if r.Dequeue() != Releaser(&h1) {
		t.Error("expected first dequeue to be h1")
	}
	if r.Dequeue() != Releaser(&h2) {
		t.Error("expected second dequeue to be h2")
	}
	if !r.IsEmpty() {
		t.Error("ring not empty after dequeuing everything")
	}
	if r.Dequeue() != nil {
		t.Error("expected empty ring to return nil")
	}

	h1.Release()
	h2.Release()
}

func TestDrainReleasesInOrder(t *testing.T) {
	before := rc.Live()
	c1, c2, c3 := 0, 0, 0
	h1 := rc.Make(victim{closes: &c1})
	h2 := rc.Make(victim{closes: &c2})
	h3 := rc.Make(victim{closes: &c3})

	r := NewRetireRing(8)
	r.Enqueue(&h1)
	r.Enqueue(&h2)
	r.Enqueue(&h3)

	if n := r.Drain(2); n != 2 {
		t.Fatalf("Drain(2) = %d, want 2", n)
	}
	if c1 != 1 || c2 != 1 || c3 != 0 {
		t.Errorf("partial drain closed %d/%d/%d, want 1/1/0", c1, c2, c3)
	}

	if n := r.Drain(-1); n != 1 {
		t.Fatalf("Drain(-1) = %d, want 1", n)
	}
	if c3 != 1 {
		t.Errorf("c3 = %d, want 1", c3)
	}

	if after := rc.Live(); after != before {
		t.Errorf("drained handles leaked: Live = %+v, was %+v", after, before)
	}
}

func TestEnqueueRefusesWhenFull(t *testing.T) {
	r := NewRetireRing(2)
	h1 := rc.Make(victim{})
	h2 := rc.Make(victim{})
	h3 := rc.Make(victim{})

	if !r.Enqueue(&h1) || !r.Enqueue(&h2) {
		t.Fatal("enqueue failed with room to spare")
	}
	if r.Enqueue(&h3) {
		t.Error("enqueue accepted into a full ring")
	}
	if !r.IsFull() || r.Len() != 2 || r.Cap() != 2 {
		t.Errorf("full ring reports len=%d cap=%d full=%v", r.Len(), r.Cap(), r.IsFull())
	}

	r.Drain(-1)
	h3.Release()
	if !r.IsEmpty() {
		t.Error("drained ring not empty")
	}
}

func TestBadSizePanics(t *testing.T) {
	for _, size := range []uint64{0, 3, 6} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRetireRing(%d) did not panic", size)
				}
			}()
			NewRetireRing(size)
		}()
	}
}
