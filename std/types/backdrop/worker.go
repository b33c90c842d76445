package backdrop

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/named-data/backdrop/std/log"
	"github.com/named-data/backdrop/std/types/lockfree"
	"golang.org/x/sys/cpu"
)

// Worker drops trash on a single long-lived goroutine.
type Worker struct {
	queue *lockfree.YiQueue[Trash]
	_     cpu.CacheLinePad
	// disposed is written by the worker goroutine only
	disposed atomic.Uint64
	_        cpu.CacheLinePad

	config WorkerConfig

	// state guards the transition to stopped against concurrent Push
	state   sync.RWMutex
	started bool
	stopped bool
	quit    chan struct{}
	done    chan struct{}
}

// NewWorker creates a worker. Call Start to begin dropping.
func NewWorker(config WorkerConfig) (*Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Worker{
		queue:  lockfree.NewYiQueue[Trash](),
		config: config,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

func (w *Worker) String() string {
	return w.config.Name
}

// Start launches the worker goroutine. Trash pushed before Start is kept
// until then. Starting twice is a no-op.
func (w *Worker) Start() {
	w.state.Lock()
	defer w.state.Unlock()
	if w.started || w.stopped {
		return
	}
	w.started = true
	go w.run()
	log.Debug(w, "Trash worker started", "batch", w.config.BatchSize)
}

// Push hands t to the worker. After Stop, t is dropped on the caller.
func (w *Worker) Push(t Trash) {
	w.state.RLock()
	if w.stopped {
		w.state.RUnlock()
		dropLogged(t)
		return
	}
	w.queue.Push(t)
	w.state.RUnlock()
}

// Pending is the number of allocations waiting to be dropped.
func (w *Worker) Pending() int {
	return w.queue.Len()
}

// Disposed is the number of allocations the worker has dropped.
func (w *Worker) Disposed() uint64 {
	return w.disposed.Load()
}

// Stop drops everything still queued, then stops the worker.
// It waits until the worker goroutine exits or ctx is done.
func (w *Worker) Stop(ctx context.Context) error {
	w.state.Lock()
	if w.stopped {
		w.state.Unlock()
		return ErrWorkerStopped
	}
	w.stopped = true
	started := w.started
	w.state.Unlock()

	if !started {
		// nobody else consumes the queue
		w.drain()
		close(w.done)
		return nil
	}

	close(w.quit)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		select {
		case <-w.queue.Notify:
			w.drain()
		case <-w.quit:
			w.drain()
			log.Debug(w, "Trash worker stopped", "disposed", w.Disposed())
			return
		}
	}
}

func (w *Worker) drain() {
	batch := 0
	for t := range w.queue.Iter() {
		dropLogged(t)
		w.disposed.Add(1)
		if batch++; batch == w.config.BatchSize {
			if w.config.LogBatches {
				log.Debug(w, "Dropped batch", "size", batch, "pending", w.queue.Len())
			}
			batch = 0
			runtime.Gosched()
		}
	}
}

var defaultWorker struct {
	once sync.Once
	w    atomic.Pointer[Worker]
}

// DefaultWorker returns the worker used by TrashWorker, starting it on
// first use.
func DefaultWorker() *Worker {
	defaultWorker.once.Do(func() {
		if defaultWorker.w.Load() != nil {
			return
		}
		w, _ := NewWorker(DefaultWorkerConfig())
		w.Start()
		defaultWorker.w.Store(w)
	})
	return defaultWorker.w.Load()
}

// SetDefaultWorker replaces the worker used by TrashWorker and returns
// the previous one, which the caller should Stop.
func SetDefaultWorker(w *Worker) (prev *Worker) {
	DefaultWorker()
	w.Start()
	return defaultWorker.w.Swap(w)
}

// TrashWorker hands trash to DefaultWorker.
type TrashWorker struct{}

func (TrashWorker) Backdrop(t Trash) {
	DefaultWorker().Push(t)
}
