package arc

import (
	"unsafe"

	"github.com/named-data/backdrop/std/types/backdrop"
	"github.com/named-data/backdrop/std/types/optional"
)

// tagRight marks the second alternative in the low address bit.
const tagRight = 1

// Union owns either an Arc[A, SA] (left) or an Arc[B, SB] (right) in a
// single word. Headers are at least 8-aligned, so the low address bit is
// free to carry the side; a right pointer still points inside its header
// and keeps it reachable for the GC.
type Union[A, B any, SA, SB backdrop.Strategy] struct {
	p unsafe.Pointer
}

func checkUnionLayout[A, B any]() {
	if LayoutOf[A]().Align < 2 || LayoutOf[B]().Align < 2 {
		panic(ErrUnionAlignment)
	}
}

// NewLeft moves a into a union on the left side.
func NewLeft[B any, SB backdrop.Strategy, A any, SA backdrop.Strategy](a *Arc[A, SA]) Union[A, B, SA, SB] {
	checkUnionLayout[A, B]()
	p := a.p
	a.p = nil
	return Union[A, B, SA, SB]{p: unsafe.Pointer(p)}
}

// NewRight moves b into a union on the right side.
func NewRight[A any, SA backdrop.Strategy, B any, SB backdrop.Strategy](b *Arc[B, SB]) Union[A, B, SA, SB] {
	checkUnionLayout[A, B]()
	p := b.p
	b.p = nil
	return Union[A, B, SA, SB]{p: unsafe.Add(unsafe.Pointer(p), tagRight)}
}

func (u *Union[A, B, SA, SB]) IsNil() bool {
	return u.p == nil
}

func (u *Union[A, B, SA, SB]) IsLeft() bool {
	return uintptr(u.p)&tagRight == 0
}

func (u *Union[A, B, SA, SB]) IsRight() bool {
	return uintptr(u.p)&tagRight != 0
}

func (u *Union[A, B, SA, SB]) left() *header[A] {
	return (*header[A])(u.p)
}

func (u *Union[A, B, SA, SB]) right() *header[B] {
	return (*header[B])(unsafe.Add(u.p, -tagRight))
}

// Word returns the tagged representation.
func (u *Union[A, B, SA, SB]) Word() uintptr {
	return uintptr(u.p)
}

// PtrEq reports whether both unions hold the same side of one allocation.
func (u *Union[A, B, SA, SB]) PtrEq(other *Union[A, B, SA, SB]) bool {
	return u.p == other.p
}

// Clone returns another owner of the active side. Cloning an empty
// union returns an empty union.
func (u *Union[A, B, SA, SB]) Clone() Union[A, B, SA, SB] {
	if u.p == nil {
		return Union[A, B, SA, SB]{}
	}
	if u.IsLeft() {
		u.left().retain(1)
	} else {
		u.right().retain(1)
	}
	return Union[A, B, SA, SB]{p: u.p}
}

// Release gives up the active side, disposing of it through its own
// strategy if this was the last owner.
func (u *Union[A, B, SA, SB]) Release() {
	if u.p == nil {
		return
	}
	if u.IsLeft() {
		release[SA](u.left())
	} else {
		release[SB](u.right())
	}
	u.p = nil
}

// Inspect returns a view of the active side.
func (u *Union[A, B, SA, SB]) Inspect() UnionBorrow[A, B, SA, SB] {
	return UnionBorrow[A, B, SA, SB]{p: u.p}
}

// IntoLeft moves the left Arc out of u. A right union is left untouched.
func (u *Union[A, B, SA, SB]) IntoLeft() (Arc[A, SA], bool) {
	if u.p == nil || !u.IsLeft() {
		return Arc[A, SA]{}, false
	}
	h := u.left()
	u.p = nil
	return Arc[A, SA]{p: h}, true
}

// IntoRight moves the right Arc out of u. A left union is left untouched.
func (u *Union[A, B, SA, SB]) IntoRight() (Arc[B, SB], bool) {
	if u.p == nil || !u.IsRight() {
		return Arc[B, SB]{}, false
	}
	h := u.right()
	u.p = nil
	return Arc[B, SB]{p: h}, true
}

// UnionBorrow views the active side of a live Union.
type UnionBorrow[A, B any, SA, SB backdrop.Strategy] struct {
	p unsafe.Pointer
}

func (b UnionBorrow[A, B, SA, SB]) IsLeft() bool {
	return uintptr(b.p)&tagRight == 0
}

// Left is set when the union holds the left side.
func (b UnionBorrow[A, B, SA, SB]) Left() optional.Optional[Borrow[A, SA]] {
	if b.p == nil || !b.IsLeft() {
		return optional.None[Borrow[A, SA]]()
	}
	return optional.Some(Borrow[A, SA]{p: &(*header[A])(b.p).data})
}

// Right is set when the union holds the right side.
func (b UnionBorrow[A, B, SA, SB]) Right() optional.Optional[Borrow[B, SB]] {
	if b.p == nil || b.IsLeft() {
		return optional.None[Borrow[B, SB]]()
	}
	return optional.Some(Borrow[B, SB]{p: &(*header[B])(unsafe.Add(b.p, -tagRight)).data})
}
