package arc

import "sync/atomic"

// AllocStats is a snapshot of the allocation accounting.
type AllocStats struct {
	// Allocations not yet released
	Live int64
	// Bytes held by live allocations
	LiveBytes int64
	// Allocations ever made
	Total uint64
}

var allocs struct {
	live  atomic.Int64
	bytes atomic.Int64
	total atomic.Uint64
}

// Allocations returns the current allocation accounting.
func Allocations() AllocStats {
	return AllocStats{
		Live:      allocs.live.Load(),
		LiveBytes: allocs.bytes.Load(),
		Total:     allocs.total.Load(),
	}
}

func recordAlloc(size uintptr) {
	allocs.total.Add(1)
	allocs.live.Add(1)
	allocs.bytes.Add(int64(size))
}

func recordFree(size uintptr) {
	if allocs.live.Add(-1) < 0 {
		abort("arc: allocation released twice")
	}
	allocs.bytes.Add(-int64(size))
}
