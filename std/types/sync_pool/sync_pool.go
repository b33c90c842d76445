// sync_pool is a generic sync.Pool wrapper
package sync_pool

import (
	"sync"
	"sync/atomic"
)

// SyncPool is a typed sync.Pool that prepares every object it hands out.
type SyncPool[T any] struct {
	pool    sync.Pool
	reset   func(T)
	created atomic.Uint64
}

// New creates a new SyncPool[T]. init makes fresh objects, reset prepares
// each object returned by Get. reset may be nil.
func New[T any](init func() T, reset func(T)) *SyncPool[T] {
	p := &SyncPool[T]{reset: reset}
	p.pool.New = func() any {
		p.created.Add(1)
		return init()
	}
	return p
}

// Get returns a reset T, recycled if the pool has one.
func (p *SyncPool[T]) Get() T {
	val := p.pool.Get().(T)
	if p.reset != nil {
		p.reset(val)
	}
	return val
}

// Put returns a T to the pool. The pool may discard it at any time.
func (p *SyncPool[T]) Put(val T) {
	p.pool.Put(val)
}

// Created is the number of objects made by init so far.
func (p *SyncPool[T]) Created() uint64 {
	return p.created.Load()
}
