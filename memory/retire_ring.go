package memory

// Releaser is anything that can return its ownership unit. Both
// *rc.Shared and *rc.Weak satisfy it.
type Releaser interface {
	Release()
}

// RetireRing is a fixed-capacity FIFO of handles whose release has been
// deferred. One goroutine owns both ends, so there is no padding or
// atomics here, just the head/tail arithmetic.
type RetireRing struct {
	head uint64
	tail uint64
	buf  []Releaser
	mask uint64
}

// NewRetireRing allocates a ring with power-of-two size.
func NewRetireRing(size uint64) *RetireRing {
	if size == 0 || size&(size-1) != 0 {
		panic("memory: RetireRing size must be a power of two")
	}
	return &RetireRing{
		buf:  make([]Releaser, size),
		mask: size - 1,
	}
}

// Enqueue defers v's release. It refuses when the ring is full.
func (r *RetireRing) Enqueue(v Releaser) bool {
	if r.head-r.tail == uint64(len(r.buf)) {
		return false
	}
	r.buf[r.head&r.mask] = v
	r.head++
	return true
}

// Dequeue removes the oldest deferred handle without releasing it, nil
// when the ring is empty.
func (r *RetireRing) Dequeue() Releaser {
	if r.tail == r.head {
		return nil
	}
	v := r.buf[r.tail&r.mask]
	r.buf[r.tail&r.mask] = nil
	r.tail++
	return v
}

// Drain releases up to max deferred handles, all of them when max < 0,
// and reports how many ran.
func (r *RetireRing) Drain(max int) int {
	n := 0
	for max < 0 || n < max {
		v := r.Dequeue()
		if v == nil {
			break
		}
		v.Release()
		n++
	}
	return n
}

// Diagnostic helpers
func (r *RetireRing) Len() int { return int(r.head - r.tail) }

func (r *RetireRing) Cap() int { return len(r.buf) }

func (r *RetireRing) IsFull() bool { return r.head-r.tail == uint64(len(r.buf)) }

func (r *RetireRing) IsEmpty() bool { return r.head == r.tail }
