package arc

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/named-data/backdrop/std/log"
	"github.com/named-data/backdrop/std/types/backdrop"
)

// maxRefcount is the ceiling above which a clone aborts the process.
// Only handles that are never released can get there.
const maxRefcount = math.MaxInt64

// dropped marks a header whose trash has been dropped.
const dropped = math.MaxUint64

// header is the single allocation behind every pointer of this package.
type header[T any] struct {
	count atomic.Uint64
	home  *recycler[T]
	// bytes accounted at allocation, released unchanged
	bytes uintptr
	data  T
}

// trailer is implemented by payloads owning storage outside the header
// that is accounted as part of the same allocation.
type trailer interface {
	trailingBytes() uintptr
}

// abort is the response to a broken count; tests replace it.
var abort = func(msg string) {
	log.Fatal(nil, msg)
}

func newHeader[T any](v T) *header[T] {
	h := &header[T]{data: v}
	h.count.Store(1)
	h.bytes = h.measure()
	recordAlloc(h.bytes)
	return h
}

// headerOf recovers the header from a payload pointer handed out by it.
func headerOf[T any](p *T) *header[T] {
	return (*header[T])(unsafe.Add(unsafe.Pointer(p), -int(dataOffset[T]())))
}

func (h *header[T]) measure() uintptr {
	size := unsafe.Sizeof(*h)
	if t, ok := any(&h.data).(trailer); ok {
		size += t.trailingBytes()
	}
	return size
}

// retain adds n owners. Only an existing owner may call it, so the
// count cannot be zero.
func (h *header[T]) retain(n uint64) {
	if old := h.count.Add(n) - n; n > maxRefcount || old > maxRefcount-n {
		abort("arc: reference count overflow")
	}
}

// release removes one owner and hands the header to S when it was the last.
func release[S backdrop.Strategy, T any](h *header[T]) {
	// sync/atomic is sequentially consistent, so this decrement orders
	// every access through this owner before the drop, and the owner that
	// sees zero observes all of them.
	n := h.count.Add(^uint64(0))
	if n != 0 {
		if n > maxRefcount {
			abort("arc: release of a disposed allocation")
		}
		return
	}
	var s S
	s.Backdrop(h)
}

// Drop implements backdrop.Trash.
func (h *header[T]) Drop() {
	if !h.count.CompareAndSwap(0, dropped) {
		panic("arc: trash dropped twice or while still shared")
	}
	if h.home != nil {
		h.home.put(h)
		return
	}
	backdrop.DropValue(&h.data)
	recordFree(h.bytes)
}

// forget releases the allocation without tearing the payload down, once
// the payload has been moved out.
func (h *header[T]) forget() {
	var zero T
	h.data = zero
	h.count.Store(dropped)
	recordFree(h.bytes)
}
