package arc_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/named-data/backdrop/std/types/arc"
	"github.com/named-data/backdrop/std/types/backdrop"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := arc.New[backdrop.Trivial]("x")
	b := arc.New[backdrop.Trivial]("x")
	c := arc.New[backdrop.Trivial]("y")
	a2 := a.Clone()
	defer func() {
		for _, h := range []*arc.Arc[string, backdrop.Trivial]{&a, &b, &c, &a2} {
			h.Release()
		}
	}()

	require.True(t, arc.Equal(&a, &a2))
	require.True(t, arc.Equal(&a, &b))
	require.False(t, arc.Equal(&a, &c))
}

func TestEqualFunc(t *testing.T) {
	a := arc.FromSlice[backdrop.Trivial]([]int{1, 2})
	b := arc.FromSlice[backdrop.Trivial]([]int{1, 2})
	defer a.Release()
	defer b.Release()

	same := func(x, y *arc.HeaderSlice[struct{}, int]) bool {
		return slices.Equal(x.Slice(), y.Slice())
	}
	require.True(t, arc.EqualFunc(&a, &b, same))
}

func TestCompare(t *testing.T) {
	one := arc.New[backdrop.Trivial](1)
	two := arc.New[backdrop.Trivial](2)
	alias := one.Clone()
	defer one.Release()
	defer two.Release()
	defer alias.Release()

	require.Equal(t, -1, arc.Compare(&one, &two))
	require.Equal(t, 1, arc.Compare(&two, &one))
	require.Equal(t, 0, arc.Compare(&one, &alias))

	words := []arc.Arc[string, backdrop.Trivial]{
		arc.New[backdrop.Trivial]("b"),
		arc.New[backdrop.Trivial]("a"),
		arc.New[backdrop.Trivial]("c"),
	}
	slices.SortFunc(words, func(x, y arc.Arc[string, backdrop.Trivial]) int {
		return arc.Compare(&x, &y)
	})
	got := []string{}
	for i := range words {
		got = append(got, words[i].Load())
		words[i].Release()
	}
	require.Equal(t, "a,b,c", strings.Join(got, ","))
}

func TestCompareFunc(t *testing.T) {
	a := arc.New[backdrop.Trivial](point{1, 9})
	b := arc.New[backdrop.Trivial](point{2, 0})
	defer a.Release()
	defer b.Release()

	byX := func(p, q *point) int { return int(p.x - q.x) }
	require.Negative(t, arc.CompareFunc(&a, &b, byX))
}
