package arc_test

import (
	"testing"

	"github.com/named-data/backdrop/std/types/arc"
	"github.com/stretchr/testify/require"
)

type either = arc.Union[string, int, counted, countedB]

func TestUnionLeft(t *testing.T) {
	resetCounts()
	s := arc.New[counted]("left")
	keep := s.Clone()
	u := arc.NewLeft[int, countedB](&s)
	require.True(t, s.IsNil())

	require.True(t, u.IsLeft())
	require.False(t, u.IsRight())
	require.Equal(t, uintptr(keep.HeapPtr()), u.Word())

	view := u.Inspect()
	require.True(t, view.IsLeft())
	require.Equal(t, "left", view.Left().Unwrap().Load())
	require.False(t, view.Right().IsSet())

	c := u.Clone()
	require.True(t, c.PtrEq(&u))
	require.True(t, c.IsLeft())
	require.Equal(t, 3, keep.Count())

	keep.Release()
	u.Release()
	require.Equal(t, int32(0), disposals.Load())
	c.Release()
	require.Equal(t, int32(1), disposals.Load())
	require.Equal(t, int32(0), disposalsB.Load())
}

func TestUnionRight(t *testing.T) {
	resetCounts()
	n := arc.New[countedB](7)
	keep := n.Clone()
	u := arc.NewRight[string, counted](&n)

	require.True(t, u.IsRight())
	require.Equal(t, uintptr(keep.HeapPtr())|1, u.Word())
	require.Equal(t, 7, u.Inspect().Right().Unwrap().Load())
	require.False(t, u.Inspect().Left().IsSet())

	c := u.Clone()
	require.True(t, c.IsRight())
	require.Equal(t, 3, keep.Count())

	keep.Release()
	u.Release()
	c.Release()
	require.Equal(t, int32(1), disposalsB.Load())
	require.Equal(t, int32(0), disposals.Load())
}

func TestUnionIntoArc(t *testing.T) {
	resetCounts()
	n := arc.New[countedB](9)
	var u either = arc.NewRight[string, counted](&n)

	_, ok := u.IntoLeft()
	require.False(t, ok)
	require.False(t, u.IsNil())

	back, ok := u.IntoRight()
	require.True(t, ok)
	require.True(t, u.IsNil())
	require.Equal(t, 9, back.Load())
	require.Equal(t, 1, back.Count())
	back.Release()
	require.Equal(t, int32(1), disposalsB.Load())
}

func TestUnionCloneEmpty(t *testing.T) {
	var u either
	c := u.Clone()
	require.True(t, c.IsNil())

	n := arc.New[countedB](1)
	u = arc.NewRight[string, counted](&n)
	back, ok := u.IntoRight()
	require.True(t, ok)
	c = u.Clone()
	require.True(t, c.IsNil())
	back.Release()
}
