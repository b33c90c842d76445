package arc

import "github.com/named-data/backdrop/std/types/backdrop"

const MaxRefcount = maxRefcount

// SetAbort replaces the overflow response and returns a restore func.
func SetAbort(fn func(string)) (restore func()) {
	prev := abort
	abort = fn
	return func() { abort = prev }
}

// ForceCount overwrites the strong count of a.
func ForceCount[T any, S backdrop.Strategy](a *Arc[T, S], n uint64) {
	a.p.count.Store(n)
}
