package arc

import (
	"fmt"
	"unsafe"

	"github.com/named-data/backdrop/std/types/backdrop"
)

// Arc is an atomically reference counted pointer to a T.
// When the last Arc is released the allocation is handed to S.
//
// The zero Arc is empty; releasing it does nothing.
type Arc[T any, S backdrop.Strategy] struct {
	p *header[T]
}

// New allocates v with a count of one.
func New[S backdrop.Strategy, T any](v T) Arc[T, S] {
	return Arc[T, S]{p: newHeader(v)}
}

// WithStrategy moves a into an Arc disposed by S2. No count changes.
func WithStrategy[S2 backdrop.Strategy, T any, S backdrop.Strategy](a *Arc[T, S]) Arc[T, S2] {
	p := a.p
	a.p = nil
	return Arc[T, S2]{p: p}
}

// FromRaw takes back ownership of a pointer returned by IntoRaw or
// Offset.IntoPtr. Passing any other pointer is undefined behavior.
func FromRaw[S backdrop.Strategy, T any](p *T) Arc[T, S] {
	if p == nil {
		return Arc[T, S]{}
	}
	return Arc[T, S]{p: headerOf(p)}
}

// IsNil reports whether the handle is empty.
func (a *Arc[T, S]) IsNil() bool {
	return a.p == nil
}

// Get returns the payload. Mutating it is only safe if the payload
// synchronizes itself, or the Arc is unique.
func (a *Arc[T, S]) Get() *T {
	return &a.p.data
}

// Load returns a copy of the payload.
func (a *Arc[T, S]) Load() T {
	return a.p.data
}

// Clone returns another owner of the same allocation.
func (a *Arc[T, S]) Clone() Arc[T, S] {
	a.p.retain(1)
	return Arc[T, S]{p: a.p}
}

// CloneMany returns n more owners, adjusting the count once.
func (a *Arc[T, S]) CloneMany(n int) []Arc[T, S] {
	if n <= 0 {
		return nil
	}
	a.p.retain(uint64(n))
	clones := make([]Arc[T, S], n)
	for i := range clones {
		clones[i].p = a.p
	}
	return clones
}

// Release gives up this owner and empties the handle. The last release
// passes the allocation to S.
func (a *Arc[T, S]) Release() {
	h := a.p
	if h == nil {
		return
	}
	a.p = nil
	release[S](h)
}

// Count is the number of owners at the time of the call.
func (a *Arc[T, S]) Count() int {
	return int(a.p.count.Load())
}

// IsUnique reports whether a is the only owner.
func (a *Arc[T, S]) IsUnique() bool {
	return a.p.count.Load() == 1
}

// PtrEq reports whether both handles share one allocation.
func (a *Arc[T, S]) PtrEq(other *Arc[T, S]) bool {
	return a.p == other.p
}

// TryUnwrap moves the payload out if a is the only owner, releasing the
// allocation without disposal. Otherwise a is left untouched.
func (a *Arc[T, S]) TryUnwrap() (v T, ok bool) {
	h := a.p
	if h == nil || !h.count.CompareAndSwap(1, 0) {
		return v, false
	}
	a.p = nil
	v = h.data
	h.forget()
	return v, true
}

// UnwrapOrClone moves the payload out if a is the only owner, or returns
// a shallow copy and releases a.
func (a *Arc[T, S]) UnwrapOrClone() T {
	if v, ok := a.TryUnwrap(); ok {
		return v
	}
	v := a.Load()
	a.Release()
	return v
}

// TryUnique converts a to a Unique if it is the only owner.
// Otherwise a is left untouched.
func (a *Arc[T, S]) TryUnique() (Unique[T, S], bool) {
	if a.p == nil || !a.IsUnique() {
		return Unique[T, S]{}, false
	}
	p := a.p
	a.p = nil
	return Unique[T, S]{p: p}, true
}

// GetMut returns the payload for mutation if a is the only owner.
func (a *Arc[T, S]) GetMut() (*T, bool) {
	if !a.IsUnique() {
		return nil, false
	}
	return &a.p.data, true
}

// MakeMut returns the payload for mutation, first replacing a with a
// fresh allocation holding a shallow copy if a is shared.
func (a *Arc[T, S]) MakeMut() *T {
	if !a.IsUnique() {
		fresh := New[S](a.Load())
		a.Release()
		*a = fresh
	}
	return &a.p.data
}

// Borrow returns a view of the payload valid while a is alive.
func (a *Arc[T, S]) Borrow() Borrow[T, S] {
	return Borrow[T, S]{p: &a.p.data}
}

// AsPtr returns the payload address, the same pointer IntoRaw hands out.
func (a *Arc[T, S]) AsPtr() *T {
	if a.p == nil {
		return nil
	}
	return &a.p.data
}

// IntoRaw gives up the handle as a bare payload pointer that still owns
// one count. Use FromRaw to take it back.
func (a *Arc[T, S]) IntoRaw() *T {
	p := a.AsPtr()
	a.p = nil
	return p
}

// HeapPtr returns the header address, for memory reporting.
func (a *Arc[T, S]) HeapPtr() unsafe.Pointer {
	return unsafe.Pointer(a.p)
}

// IntoOffset converts a into an Offset. No count changes.
func (a *Arc[T, S]) IntoOffset() Offset[T, S] {
	p := a.IntoRaw()
	return Offset[T, S]{p: p}
}

// WithRawOffset calls fn with a temporary Offset view of a. No count
// changes; fn may clone the Offset but must not release or consume it.
func (a *Arc[T, S]) WithRawOffset(fn func(o *Offset[T, S])) {
	o := Offset[T, S]{p: &a.p.data}
	fn(&o)
}

func (a *Arc[T, S]) String() string {
	if a.p == nil {
		return "arc(nil)"
	}
	return fmt.Sprint(a.p.data)
}
