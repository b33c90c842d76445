// Lock-free data structures
package lockfree

import (
	"iter"
	"sync/atomic"
)

// YiQueue is a lock-free Yielding Queue.
//
// It is designed to be used by a single consumer and multiple producers.
// Very little spin-locking is used; instead the queue notifies the
// consumer with a channel when it goes from empty to non-empty.
type YiQueue[T any] struct {
	Notify chan struct{}
	queue  *Queue[T]
	size   atomic.Int32
}

func NewYiQueue[T any]() *YiQueue[T] {
	return &YiQueue[T]{
		Notify: make(chan struct{}, 1),
		queue:  NewQueue[T](),
	}
}

func (yq *YiQueue[T]) Push(v T) {
	sizenow := yq.size.Add(1)
	yq.queue.Push(v)
	if sizenow == 1 && yq.size.Load() > 0 {
		// first element in the queue, wake the consumer without blocking
		select {
		case yq.Notify <- struct{}{}:
		default:
		}
	}
}

func (yq *YiQueue[T]) Pop() (val T, ok bool) {
	for yq.size.Load() > 0 {
		val, ok = yq.queue.Pop()
		if !ok {
			// spin-lock: a value is promised but Push has not linked it yet
			continue
		}
		yq.size.Add(-1)
		return val, true
	}

	return val, false
}

// Len is the number of values pushed but not yet popped.
func (yq *YiQueue[T]) Len() int {
	return int(yq.size.Load())
}

// Drain pops every value currently queued and passes it to fn.
// It returns the number of values drained.
func (yq *YiQueue[T]) Drain(fn func(T)) (n int) {
	for val := range yq.Iter() {
		fn(val)
		n++
	}
	return n
}

func (yq *YiQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := yq.Pop()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
