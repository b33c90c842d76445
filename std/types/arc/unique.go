package arc

import "github.com/named-data/backdrop/std/types/backdrop"

// Unique is the sole owner of a fresh allocation, with exclusive access
// to its payload until it is made shareable.
type Unique[T any, S backdrop.Strategy] struct {
	p *header[T]
}

// NewUnique allocates v with a count of one.
func NewUnique[S backdrop.Strategy, T any](v T) Unique[T, S] {
	return Unique[T, S]{p: newHeader(v)}
}

// IsNil reports whether the handle is empty.
func (u *Unique[T, S]) IsNil() bool {
	return u.p == nil
}

// Get returns the payload for reading and writing.
func (u *Unique[T, S]) Get() *T {
	return &u.p.data
}

// Load returns a copy of the payload.
func (u *Unique[T, S]) Load() T {
	return u.p.data
}

// Borrow returns a view of the payload valid while u is alive.
func (u *Unique[T, S]) Borrow() Borrow[T, S] {
	return Borrow[T, S]{p: &u.p.data}
}

// Shareable turns u into an Arc, giving up exclusive access.
// The count stays at one; nothing is allocated.
func (u *Unique[T, S]) Shareable() Arc[T, S] {
	p := u.p
	u.p = nil
	return Arc[T, S]{p: p}
}

// IntoInner moves the payload out and releases the allocation without
// disposal.
func (u *Unique[T, S]) IntoInner() T {
	h := u.p
	u.p = nil
	v := h.data
	h.forget()
	return v
}

// Release disposes of the allocation through S.
func (u *Unique[T, S]) Release() {
	h := u.p
	if h == nil {
		return
	}
	u.p = nil
	release[S](h)
}
