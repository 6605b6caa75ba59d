package memory

import (
	"sync"

	"mimir/rc"
)

// Resetter is implemented by pooled types that clear themselves before
// reuse.
type Resetter interface {
	Reset()
}

// Pool is a typed object pool.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}

// Deleter returns an rc deleter that recycles the object into the pool
// instead of handing it to the garbage collector. Objects implementing
// Resetter are cleared on the way in.
func (p *Pool[T]) Deleter() rc.Deleter[T] {
	return func(v *T) {
		if r, ok := any(v).(Resetter); ok {
			r.Reset()
		}
		p.Put(v)
	}
}

// Acquire takes an object from the pool and wraps it in a shared
// handle whose last release puts it back.
func (p *Pool[T]) Acquire() rc.Shared[T] {
	return rc.NewSharedDeleter(p.Get(), p.Deleter())
}
