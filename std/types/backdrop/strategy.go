package backdrop

import (
	"fmt"

	"github.com/named-data/backdrop/std/log"
)

// Trash is an allocation nobody shares anymore.
// Drop destroys the payload and releases the allocation; it must be
// called exactly once.
type Trash interface {
	Drop()
}

// Strategy decides where and when Trash is dropped.
type Strategy interface {
	Backdrop(t Trash)
}

// Trivial drops synchronously on the releasing goroutine.
type Trivial struct{}

func (Trivial) Backdrop(t Trash) {
	t.Drop()
}

// Goroutine drops every allocation on a goroutine of its own.
type Goroutine struct{}

func (Goroutine) Backdrop(t Trash) {
	go dropLogged(t)
}

// Debug logs each disposal, then delegates to S.
type Debug[S Strategy] struct{}

func (Debug[S]) String() string {
	return "backdrop-debug"
}

func (d Debug[S]) Backdrop(t Trash) {
	var inner S
	log.Debug(d, "Disposing allocation",
		"trash", fmt.Sprintf("%T", t),
		"strategy", fmt.Sprintf("%T", inner))
	inner.Backdrop(t)
}

// dropLogged drops t, logging instead of crashing when the payload's
// teardown panics off the releasing goroutine.
func dropLogged(t Trash) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(nil, "Payload teardown panicked", "trash", fmt.Sprintf("%T", t), "err", r)
			ok = false
		}
	}()
	t.Drop()
	return true
}
