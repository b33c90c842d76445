package backdrop_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/named-data/backdrop/std/types/backdrop"
	tu "github.com/named-data/backdrop/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

type countingTrash struct {
	drops *atomic.Int32
	panic bool
}

func (c countingTrash) Drop() {
	c.drops.Add(1)
	if c.panic {
		panic("teardown failed")
	}
}

type closer struct{ closed bool }

func (c *closer) Drop() { c.closed = true }

type valueCloser struct{ hits *int }

func (v valueCloser) Drop() { *v.hits++ }

func TestTrivialDropsInline(t *testing.T) {
	var drops atomic.Int32
	backdrop.Trivial{}.Backdrop(countingTrash{drops: &drops})
	require.Equal(t, int32(1), drops.Load())
}

func TestGoroutineDropsEventually(t *testing.T) {
	var drops atomic.Int32
	backdrop.Goroutine{}.Backdrop(countingTrash{drops: &drops})
	require.Eventually(t, func() bool { return drops.Load() == 1 }, time.Second, time.Millisecond)
}

func TestDebugDelegates(t *testing.T) {
	var drops atomic.Int32
	backdrop.Debug[backdrop.Trivial]{}.Backdrop(countingTrash{drops: &drops})
	require.Equal(t, int32(1), drops.Load())
}

func TestDropValue(t *testing.T) {
	c := closer{}
	backdrop.DropValue(&c)
	require.Equal(t, closer{}, c) // zeroed after teardown

	ptr := &closer{}
	backdrop.DropValue(&ptr)
	require.Nil(t, ptr)

	hits := 0
	v := valueCloser{hits: &hits}
	backdrop.DropValue(&v)
	require.Equal(t, 1, hits)
	require.Nil(t, v.hits)

	n := 5
	backdrop.DropValue(&n)
	require.Equal(t, 0, n)

	var none *closer
	require.NotPanics(t, func() { backdrop.DropValue(&none) })
}

func TestHasDropper(t *testing.T) {
	require.True(t, backdrop.HasDropper[closer]())
	require.True(t, backdrop.HasDropper[*closer]())
	require.True(t, backdrop.HasDropper[valueCloser]())
	require.True(t, backdrop.HasDropper[backdrop.Dropper]())
	require.False(t, backdrop.HasDropper[int]())
	require.False(t, backdrop.HasDropper[[]byte]())
}

func TestTrashQueueDelays(t *testing.T) {
	var drops atomic.Int32
	for range 10 {
		backdrop.TrashQueue{}.Backdrop(countingTrash{drops: &drops})
	}
	require.Equal(t, int32(0), drops.Load())
	require.Equal(t, 10, backdrop.PendingTrash())

	require.Equal(t, 10, backdrop.CleanupTrash())
	require.Equal(t, int32(10), drops.Load())
	require.Equal(t, 0, backdrop.CleanupTrash())
}

func TestWorkerDrainsOnStop(t *testing.T) {
	tu.SetT(t)
	config := backdrop.DefaultWorkerConfig()
	config.BatchSize = 3
	w := tu.NoErr(backdrop.NewWorker(config))

	var drops atomic.Int32
	for range 10 {
		w.Push(countingTrash{drops: &drops})
	}
	require.Equal(t, 10, w.Pending())

	w.Start()
	require.NoError(t, w.Stop(context.Background()))
	require.Equal(t, int32(10), drops.Load())
	require.Equal(t, uint64(10), w.Disposed())

	// after stop, trash is dropped by the pusher
	w.Push(countingTrash{drops: &drops})
	require.Equal(t, int32(11), drops.Load())
	require.ErrorIs(t, w.Stop(context.Background()), backdrop.ErrWorkerStopped)
}

func TestWorkerSurvivesPanickingTeardown(t *testing.T) {
	tu.SetT(t)
	w := tu.NoErr(backdrop.NewWorker(backdrop.DefaultWorkerConfig()))
	w.Start()

	var drops atomic.Int32
	w.Push(countingTrash{drops: &drops, panic: true})
	w.Push(countingTrash{drops: &drops})
	require.Eventually(t, func() bool { return w.Disposed() == 2 }, time.Second, time.Millisecond)
	require.Equal(t, int32(2), drops.Load())
	require.NoError(t, w.Stop(context.Background()))
}

func TestWorkerConcurrentPush(t *testing.T) {
	tu.SetT(t)
	w := tu.NoErr(backdrop.NewWorker(backdrop.DefaultWorkerConfig()))
	w.Start()

	var drops atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				w.Push(countingTrash{drops: &drops})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, w.Stop(context.Background()))
	require.Equal(t, int32(4000), drops.Load())
}

func TestTrashWorkerUsesDefault(t *testing.T) {
	tu.SetT(t)
	w := tu.NoErr(backdrop.NewWorker(backdrop.WorkerConfig{Name: "test-worker", BatchSize: 1}))
	prev := backdrop.SetDefaultWorker(w)
	require.NotNil(t, prev)
	require.NoError(t, prev.Stop(context.Background()))

	var drops atomic.Int32
	backdrop.TrashWorker{}.Backdrop(countingTrash{drops: &drops})
	require.Eventually(t, func() bool { return drops.Load() == 1 }, time.Second, time.Millisecond)
	require.Same(t, w, backdrop.DefaultWorker())
}

// blockingTrash holds its background slot until released.
type blockingTrash struct {
	started chan struct{}
	release chan struct{}
}

func (b blockingTrash) Drop() {
	close(b.started)
	<-b.release
}

func TestLimited(t *testing.T) {
	backdrop.SetDisposalLimit(2)
	defer backdrop.SetDisposalLimit(0)

	var drops atomic.Int32
	for range 20 {
		backdrop.Limited{}.Backdrop(countingTrash{drops: &drops})
	}
	require.NoError(t, backdrop.WaitLimited())
	require.Equal(t, int32(20), drops.Load())
}

func TestLimitedInlineWhenFull(t *testing.T) {
	backdrop.SetDisposalLimit(1)
	defer backdrop.SetDisposalLimit(0)

	block := blockingTrash{started: make(chan struct{}), release: make(chan struct{})}
	backdrop.Limited{}.Backdrop(block)
	<-block.started

	// the only slot is taken, so this drop happens before Backdrop returns
	var drops atomic.Int32
	backdrop.Limited{}.Backdrop(countingTrash{drops: &drops})
	require.Equal(t, int32(1), drops.Load())

	close(block.release)
	require.NoError(t, backdrop.WaitLimited())
}

func TestLimitedReportsPanic(t *testing.T) {
	backdrop.SetDisposalLimit(1)
	defer backdrop.SetDisposalLimit(0)
	require.NoError(t, backdrop.WaitLimited())

	// a fresh group has its slot free, so the drop runs in the background
	var drops atomic.Int32
	backdrop.Limited{}.Backdrop(countingTrash{drops: &drops, panic: true})
	require.ErrorIs(t, backdrop.WaitLimited(), backdrop.ErrTeardownPanic)
	require.Equal(t, int32(1), drops.Load())
}

func TestParseWorkerConfig(t *testing.T) {
	tu.SetT(t)
	config := tu.NoErr(backdrop.ParseWorkerConfig([]byte("name: bg\nbatch_size: 16\nlog_batches: true\n")))
	require.Equal(t, "bg", config.Name)
	require.Equal(t, 16, config.BatchSize)
	require.True(t, config.LogBatches)

	config = tu.NoErr(backdrop.ParseWorkerConfig([]byte("log_batches: false\n")))
	require.Equal(t, backdrop.DefaultWorkerConfig(), config)

	config = tu.NoErr(backdrop.ParseWorkerConfig(nil))
	require.Equal(t, backdrop.DefaultWorkerConfig(), config)

	require.ErrorIs(t, tu.Err(backdrop.ParseWorkerConfig([]byte("batch_size: 0\n"))), backdrop.ErrInvalidConfig)
	require.ErrorIs(t, tu.Err(backdrop.ParseWorkerConfig([]byte("unknown: 1\n"))), backdrop.ErrInvalidConfig)
}
