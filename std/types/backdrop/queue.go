package backdrop

import (
	"sync"

	"github.com/named-data/backdrop/std/types/lockfree"
)

var trashQueue = struct {
	sync.Mutex
	q *lockfree.YiQueue[Trash]
}{q: lockfree.NewYiQueue[Trash]()}

// TrashQueue delays disposal until the application calls CleanupTrash,
// for example once per frame or request.
type TrashQueue struct{}

func (TrashQueue) Backdrop(t Trash) {
	trashQueue.q.Push(t)
}

// CleanupTrash drops everything queued by TrashQueue so far and returns
// how many allocations were dropped.
func CleanupTrash() int {
	// the queue allows only one consumer at a time
	trashQueue.Lock()
	defer trashQueue.Unlock()
	return trashQueue.q.Drain(func(t Trash) { dropLogged(t) })
}

// PendingTrash is the number of allocations waiting in the TrashQueue.
func PendingTrash() int {
	return trashQueue.q.Len()
}
