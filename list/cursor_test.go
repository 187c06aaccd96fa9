package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/container/list"
	"github.com/outofforest/container/test"
)

func TestIteratorsOnEmptyList(t *testing.T) {
	requireT := require.New(t)
	l := list.New[int]()

	requireT.Nil(l.IteratorStart())
	requireT.Nil(l.IteratorEnd())
	requireT.Nil(l.IteratorAt(0))
	requireT.Nil(l.IteratorAtValue(0))
}

func TestIteratorStart(t *testing.T) {
	requireT := require.New(t)
	l := list.New(testValues...)

	c := l.IteratorStart()
	requireT.Same(l.Root(), c.Current())
	requireT.Equal(testValues, test.CollectCursor(c))
}

func TestIteratorEnd(t *testing.T) {
	requireT := require.New(t)
	l := list.New(testValues...)

	c := l.IteratorEnd()
	requireT.Equal(11, c.Current().Value())
	requireT.False(c.HasNext())

	c.Next()
	requireT.Nil(c.Current())
}

func TestIteratorAt(t *testing.T) {
	requireT := require.New(t)
	l := list.New(testValues...)

	for i := range testValues {
		c := l.IteratorAt(i)
		requireT.NotNil(c)
		requireT.Equal(testValues[i:], test.CollectCursor(c))
	}

	requireT.Nil(l.IteratorAt(-1))
	requireT.Nil(l.IteratorAt(len(testValues)))
}

func TestIteratorAtValue(t *testing.T) {
	requireT := require.New(t)
	l := list.New(testValues...)

	c := l.IteratorAtValue(11)
	requireT.Equal(11, c.Current().Value())
	requireT.Same(l.Root().Next(), c.Current())

	requireT.Nil(l.IteratorAtValue(1))
}

func TestCursorHasNext(t *testing.T) {
	requireT := require.New(t)
	l := list.New(1, 2)

	c := l.IteratorStart()
	requireT.True(c.HasNext())
	c.Next()
	requireT.False(c.HasNext())
}

func TestCursorSeesInsertedNodes(t *testing.T) {
	requireT := require.New(t)
	l := list.New(1, 3)

	c := l.IteratorStart()
	requireT.True(l.InsertAfter(c.Current(), 2))
	requireT.Equal([]int{1, 2, 3}, test.CollectCursor(c))
}

func TestCursorPastEnd(t *testing.T) {
	requireT := require.New(t)
	l := list.New(1)

	c := l.IteratorStart()
	c.Next()
	requireT.Nil(c.Current())

	requireT.PanicsWithError(list.ErrCursorPastEnd.Error(), func() {
		c.Next()
	})
	requireT.PanicsWithError(list.ErrCursorPastEnd.Error(), func() {
		c.HasNext()
	})
}

func TestCursorInvalidated(t *testing.T) {
	requireT := require.New(t)
	l := list.New(testValues...)

	c := l.IteratorAt(3)
	requireT.True(l.Remove(31))

	requireT.PanicsWithError(list.ErrCursorInvalidated.Error(), func() {
		c.Current()
	})
	requireT.PanicsWithError(list.ErrCursorInvalidated.Error(), func() {
		c.Next()
	})
	requireT.PanicsWithError(list.ErrCursorInvalidated.Error(), func() {
		c.HasNext()
	})
}

func TestCursorSurvivesRemovalOfOtherNodes(t *testing.T) {
	requireT := require.New(t)
	l := list.New(testValues...)

	c := l.IteratorAtValue(21)
	requireT.True(l.Remove(10))
	requireT.Equal(1, l.RemoveAll(41))

	requireT.Equal([]int{21, 31, 11}, test.CollectCursor(c))
}
