package arc

import (
	"github.com/named-data/backdrop/std/types/backdrop"
	"github.com/named-data/backdrop/std/types/sync_pool"
)

// Pool recycles allocations. When the last owner of a pooled allocation
// is released and S drops it, the payload is kept and the header goes
// back to the pool instead of to the garbage collector. Pooled payloads
// are reset on reuse.
//
// The pool may discard idle headers at any time without notice, so a
// payload is never torn down. NewPool rejects types with a Drop method.
type Pool[T any, S backdrop.Strategy] struct {
	r *recycler[T]
}

type recycler[T any] struct {
	*sync_pool.SyncPool[*header[T]]
}

// NewPool creates a pool creating payloads with init and preparing
// recycled ones with reset. It panics with ErrPoolDropper if T has a
// Drop method.
func NewPool[S backdrop.Strategy, T any](init func() T, reset func(*T)) *Pool[T, S] {
	if backdrop.HasDropper[T]() {
		panic(ErrPoolDropper)
	}
	r := &recycler[T]{}
	r.SyncPool = sync_pool.New(
		func() *header[T] { return &header[T]{data: init(), home: r} },
		func(h *header[T]) {
			if reset != nil {
				reset(&h.data)
			}
		})
	return &Pool[T, S]{r: r}
}

// Get returns the sole owner of a reset payload.
func (p *Pool[T, S]) Get() Unique[T, S] {
	return Unique[T, S]{p: p.r.get()}
}

// GetShared is Get followed by Shareable.
func (p *Pool[T, S]) GetShared() Arc[T, S] {
	u := p.Get()
	return u.Shareable()
}

// Created is the number of payloads made by init, as opposed to reused.
func (p *Pool[T, S]) Created() uint64 {
	return p.r.Created()
}

func (r *recycler[T]) get() *header[T] {
	h := r.Get()
	h.count.Store(1)
	h.bytes = h.measure()
	recordAlloc(h.bytes)
	return h
}

func (r *recycler[T]) put(h *header[T]) {
	recordFree(h.bytes)
	r.Put(h)
}
