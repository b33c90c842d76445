package arc_test

import (
	"sync/atomic"

	"github.com/named-data/backdrop/std/types/backdrop"
)

// counted drops synchronously and records every disposal.
type counted struct{}

var disposals atomic.Int32

func (counted) Backdrop(t backdrop.Trash) {
	disposals.Add(1)
	t.Drop()
}

// countedB is a second strategy so unions can tell sides apart.
type countedB struct{}

var disposalsB atomic.Int32

func (countedB) Backdrop(t backdrop.Trash) {
	disposalsB.Add(1)
	t.Drop()
}

func resetCounts() {
	disposals.Store(0)
	disposalsB.Store(0)
}

// resource records its teardown.
type resource struct {
	id    int
	drops *atomic.Int32
}

func (r *resource) Drop() {
	r.drops.Add(1)
}
