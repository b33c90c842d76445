package backdrop

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

var limited = struct {
	sync.RWMutex
	limit int
	g     *errgroup.Group
}{}

func init() {
	SetDisposalLimit(runtime.GOMAXPROCS(0))
}

// Limited drops on background goroutines, at most SetDisposalLimit of them
// at a time. While the limit is reached the releasing goroutine drops the
// trash itself.
type Limited struct{}

func (Limited) Backdrop(t Trash) {
	// TryGo never blocks, so holding the read lock keeps it ordered
	// before any Wait on the same group
	limited.RLock()
	started := limited.g.TryGo(func() error {
		if !dropLogged(t) {
			return fmt.Errorf("%w: %T", ErrTeardownPanic, t)
		}
		return nil
	})
	limited.RUnlock()
	if !started {
		dropLogged(t)
	}
}

// SetDisposalLimit changes the concurrency limit and waits for Limited
// disposals started under the previous limit. n <= 0 means no limit.
func SetDisposalLimit(n int) {
	limited.Lock()
	prev := limited.g
	limited.limit = n
	limited.g = newLimitedGroup(n)
	limited.Unlock()

	if prev != nil {
		prev.Wait()
	}
}

// WaitLimited waits for every Limited disposal started so far and reports
// the first teardown failure among them.
func WaitLimited() error {
	limited.Lock()
	g := limited.g
	limited.g = newLimitedGroup(limited.limit)
	limited.Unlock()
	return g.Wait()
}

func newLimitedGroup(n int) *errgroup.Group {
	g := &errgroup.Group{}
	if n > 0 {
		g.SetLimit(n)
	}
	return g
}
