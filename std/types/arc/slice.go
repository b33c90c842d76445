package arc

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/named-data/backdrop/std/types/backdrop"
)

// HeaderSlice is a payload made of a fixed header and a run of elements
// whose length is fixed at construction.
type HeaderSlice[H, E any] struct {
	Header H
	elems  []E
}

// Len is the number of trailing elements.
func (hs *HeaderSlice[H, E]) Len() int {
	return len(hs.elems)
}

// Slice returns the elements. They may be modified in place, but the
// returned slice has no spare capacity, so appending to it copies.
func (hs *HeaderSlice[H, E]) Slice() []E {
	return slices.Clip(hs.elems)
}

// All iterates over the elements with their index.
func (hs *HeaderSlice[H, E]) All() iter.Seq2[int, *E] {
	return func(yield func(int, *E) bool) {
		for i := range hs.elems {
			if !yield(i, &hs.elems[i]) {
				return
			}
		}
	}
}

func (hs *HeaderSlice[H, E]) trailingBytes() uintptr {
	return uintptr(cap(hs.elems)) * unsafe.Sizeof(*(*E)(nil))
}

// Drop tears down the header and every element in order.
func (hs *HeaderSlice[H, E]) Drop() {
	backdrop.DropValue(&hs.Header)
	dropElems(hs.elems)
}

func dropElems[E any](elems []E) {
	for i := range elems {
		backdrop.DropValue(&elems[i])
	}
}

// FromHeaderAndIter allocates a HeaderSlice for header and exactly n
// elements taken from seq in order.
//
// If seq yields an error, yields more or fewer than n elements, or
// panics, the elements written so far are torn down and the allocation
// is released before the error is returned or the panic continues. The
// header is not torn down in that case.
func FromHeaderAndIter[S backdrop.Strategy, H, E any](header H, n int, seq iter.Seq2[E, error]) (Arc[HeaderSlice[H, E], S], error) {
	var a Arc[HeaderSlice[H, E], S]
	if _, err := SliceLayoutOf[H, E](n); err != nil {
		return a, err
	}

	// count and header first, then the elements into a buffer whose
	// capacity never changes
	h := newHeader(HeaderSlice[H, E]{Header: header, elems: make([]E, 0, n)})
	elems := h.data.elems
	complete := false
	defer func() {
		if !complete {
			dropElems(elems)
			h.forget()
		}
	}()

	for e, err := range seq {
		if err != nil {
			backdrop.DropValue(&e)
			return a, err
		}
		if len(elems) == n {
			backdrop.DropValue(&e)
			return a, fmt.Errorf("%w: more than %d", ErrLengthMismatch, n)
		}
		elems = append(elems, e)
	}
	if len(elems) != n {
		return a, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(elems), n)
	}

	complete = true
	h.data.elems = elems
	a.p = h
	return a, nil
}

// FromHeaderAndSlice allocates a HeaderSlice holding header and a copy
// of elems.
func FromHeaderAndSlice[S backdrop.Strategy, H, E any](header H, elems []E) Arc[HeaderSlice[H, E], S] {
	return fromParts[S](header, slices.Clip(slices.Clone(elems)))
}

// FromSlice allocates a HeaderSlice without a header holding a copy of
// elems.
func FromSlice[S backdrop.Strategy, E any](elems []E) Arc[HeaderSlice[struct{}, E], S] {
	return FromHeaderAndSlice[S](struct{}{}, elems)
}

// Collect allocates a HeaderSlice without a header from a sequence of
// unknown length. The elements are buffered first.
func Collect[S backdrop.Strategy, E any](seq iter.Seq[E]) Arc[HeaderSlice[struct{}, E], S] {
	return fromParts[S](struct{}{}, slices.Clip(slices.Collect(seq)))
}

// fromParts takes ownership of elems, which must have no spare capacity.
func fromParts[S backdrop.Strategy, H, E any](header H, elems []E) Arc[HeaderSlice[H, E], S] {
	return Arc[HeaderSlice[H, E], S]{p: newHeader(HeaderSlice[H, E]{Header: header, elems: elems})}
}

// Seq adapts an infallible sequence for FromHeaderAndIter.
func Seq[E any](seq iter.Seq[E]) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		for e := range seq {
			if !yield(e, nil) {
				return
			}
		}
	}
}
