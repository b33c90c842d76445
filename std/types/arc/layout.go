package arc

import (
	"fmt"
	"math"
	"unsafe"
)

// Layout describes a control header allocation.
type Layout struct {
	// Bytes occupied by the allocation, including trailing elements
	Size uintptr
	// Alignment of the allocation
	Align uintptr
	// Offset from the header start to the payload
	DataOffset uintptr
	// Offset from the header start to the first trailing element,
	// zero without trailing elements
	ElemOffset uintptr
}

func (l Layout) String() string {
	return fmt.Sprintf("size=%d align=%d data=+%d elems=+%d", l.Size, l.Align, l.DataOffset, l.ElemOffset)
}

// LayoutOf returns the header layout for a payload of type T.
func LayoutOf[T any]() Layout {
	return Layout{
		Size:       unsafe.Sizeof(*(*header[T])(nil)),
		Align:      unsafe.Alignof(*(*header[T])(nil)),
		DataOffset: dataOffset[T](),
	}
}

// SliceLayoutOf returns the layout of a header holding a fixed header H
// followed by n elements of type E.
func SliceLayoutOf[H, E any](n int) (Layout, error) {
	l := LayoutOf[HeaderSlice[H, E]]()
	if n < 0 {
		return l, fmt.Errorf("%w: negative length %d", ErrCapacityOverflow, n)
	}

	esize := unsafe.Sizeof(*(*E)(nil))
	ealign := unsafe.Alignof(*(*E)(nil))
	if esize != 0 && uintptr(n) > (math.MaxInt-l.Size)/esize {
		return l, fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, n, esize)
	}

	l.ElemOffset = alignUp(l.Size, ealign)
	l.Size = l.ElemOffset + uintptr(n)*esize
	l.Align = max(l.Align, ealign)
	return l, nil
}

func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// dataOffset is the fixed distance between a header and its payload.
func dataOffset[T any]() uintptr {
	return unsafe.Offsetof((*header[T])(nil).data)
}
