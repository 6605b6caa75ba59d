// Package pair provides a two-slot container that stores stateless
// types without spending memory on them. Policy types such as deleters
// ride along with a pointer at no size cost.
package pair

// Pair holds a first and a second value. The zero value holds the zero
// value of both slots.
//
// The second field is declared ahead of the first on purpose: Go pads
// zero-size trailing fields, so keeping the data slot at the end lets a
// stateless second type vanish from the layout entirely.
type Pair[F, S any] struct {
	second S
	first  F
}

// New returns a Pair holding first and second.
func New[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{second: second, first: first}
}

// First returns the address of the first slot.
func (p *Pair[F, S]) First() *F { return &p.first }

// Second returns the address of the second slot.
func (p *Pair[F, S]) Second() *S { return &p.second }
