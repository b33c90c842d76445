package arc

import (
	"unsafe"

	"github.com/named-data/backdrop/std/types/backdrop"
)

// Offset owns one count like an Arc, but holds the payload address
// instead of the header address, so foreign code can use it as a plain
// pointer to T. The header sits LayoutOf[T]().DataOffset bytes before it.
//
// Code receiving the pointer must not assume anything about the header,
// and handing it back must transfer ownership.
type Offset[T any, S backdrop.Strategy] struct {
	p *T
}

// OffsetFromPtr takes back ownership of a pointer from Offset.IntoPtr.
func OffsetFromPtr[S backdrop.Strategy, T any](p *T) Offset[T, S] {
	return Offset[T, S]{p: p}
}

func (o *Offset[T, S]) IsNil() bool {
	return o.p == nil
}

func (o *Offset[T, S]) Get() *T {
	return o.p
}

func (o *Offset[T, S]) Load() T {
	return *o.p
}

// Ptr returns the payload address without giving up ownership.
func (o *Offset[T, S]) Ptr() unsafe.Pointer {
	return unsafe.Pointer(o.p)
}

// IntoPtr gives up the handle as a bare pointer that owns one count.
func (o *Offset[T, S]) IntoPtr() *T {
	p := o.p
	o.p = nil
	return p
}

func (o *Offset[T, S]) Clone() Offset[T, S] {
	headerOf(o.p).retain(1)
	return Offset[T, S]{p: o.p}
}

func (o *Offset[T, S]) Release() {
	p := o.p
	if p == nil {
		return
	}
	o.p = nil
	release[S](headerOf(p))
}

func (o *Offset[T, S]) PtrEq(other *Offset[T, S]) bool {
	return o.p == other.p
}

// Count is the number of owners at the time of the call.
func (o *Offset[T, S]) Count() int {
	return int(headerOf(o.p).count.Load())
}

// IntoArc converts o back into an Arc. No count changes.
func (o *Offset[T, S]) IntoArc() Arc[T, S] {
	return FromRaw[S](o.IntoPtr())
}

// CloneArc returns a new Arc owner, leaving o intact.
func (o *Offset[T, S]) CloneArc() Arc[T, S] {
	return o.Borrow().ToOwned()
}

func (o *Offset[T, S]) Borrow() Borrow[T, S] {
	return Borrow[T, S]{p: o.p}
}

// MakeMut returns the payload for mutation, first replacing o with a
// fresh allocation holding a shallow copy if o is shared.
func (o *Offset[T, S]) MakeMut() *T {
	a := o.IntoArc()
	p := a.MakeMut()
	*o = a.IntoOffset()
	return p
}

// WithArc calls fn with a temporary Arc view of o. No count changes;
// fn may clone the Arc but must not release or consume it.
func (o *Offset[T, S]) WithArc(fn func(a *Arc[T, S])) {
	a := Arc[T, S]{p: headerOf(o.p)}
	fn(&a)
}
