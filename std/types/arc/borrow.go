package arc

import "github.com/named-data/backdrop/std/types/backdrop"

// Borrow is a view of the payload of a live owner. It is just the payload
// pointer and does not count as an owner, so it must not outlive its
// source.
type Borrow[T any, S backdrop.Strategy] struct {
	p *T
}

// BorrowFromPtr views a payload pointer obtained from an owner of this
// package, for example one passed back by foreign code.
func BorrowFromPtr[S backdrop.Strategy, T any](p *T) Borrow[T, S] {
	return Borrow[T, S]{p: p}
}

func (b Borrow[T, S]) IsNil() bool {
	return b.p == nil
}

func (b Borrow[T, S]) Get() *T {
	return b.p
}

func (b Borrow[T, S]) Load() T {
	return *b.p
}

func (b Borrow[T, S]) PtrEq(other Borrow[T, S]) bool {
	return b.p == other.p
}

// ToOwned creates a new owner of the borrowed allocation.
func (b Borrow[T, S]) ToOwned() Arc[T, S] {
	h := headerOf(b.p)
	h.retain(1)
	return Arc[T, S]{p: h}
}
