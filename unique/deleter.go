package unique

import "mimir/rc"

// Deleter is the destruction policy a handle applies when the life of
// its object ends.
type Deleter[T any] interface {
	Delete(*T)
}

// DefaultDelete finalizes objects implementing rc.Finalizer and leaves
// the rest to the garbage collector. It carries no state.
type DefaultDelete[T any] struct{}

func (DefaultDelete[T]) Delete(p *T) {
	rc.Finalize(p)
}

// DeleteFunc adapts a plain function into a deleter policy. Unlike
// DefaultDelete it occupies a word, since the function is state.
type DeleteFunc[T any] struct {
	Fn func(*T)
}

func (d DeleteFunc[T]) Delete(p *T) {
	if d.Fn != nil {
		d.Fn(p)
	}
}
