package arc

import (
	"cmp"

	"github.com/named-data/backdrop/std/types/backdrop"
)

// Equal compares the payloads of a and b. Handles sharing one allocation
// are equal without reading the payload.
func Equal[T comparable, S backdrop.Strategy](a, b *Arc[T, S]) bool {
	return a.p == b.p || a.p.data == b.p.data
}

// EqualFunc compares the payloads of a and b with eq.
func EqualFunc[T any, S backdrop.Strategy](a, b *Arc[T, S], eq func(x, y *T) bool) bool {
	return a.p == b.p || eq(&a.p.data, &b.p.data)
}

// Compare orders a and b by payload, like cmp.Compare.
func Compare[T cmp.Ordered, S backdrop.Strategy](a, b *Arc[T, S]) int {
	if a.p == b.p {
		return 0
	}
	return cmp.Compare(a.p.data, b.p.data)
}

// CompareFunc orders a and b by payload with cmpFn.
func CompareFunc[T any, S backdrop.Strategy](a, b *Arc[T, S], cmpFn func(x, y *T) int) int {
	if a.p == b.p {
		return 0
	}
	return cmpFn(&a.p.data, &b.p.data)
}
