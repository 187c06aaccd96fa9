package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/container/list"
)

func TestNewNode(t *testing.T) {
	requireT := require.New(t)
	n := list.NewNode("a")

	requireT.Equal("a", n.Value())
	requireT.Nil(n.Next())

	n.SetValue("b")
	requireT.Equal("b", n.Value())
}

func TestZeroNode(t *testing.T) {
	requireT := require.New(t)

	var n list.Node[int]
	requireT.Zero(n.Value())
	requireT.Nil(n.Next())

	c := n.CopyChain()
	requireT.NotSame(&n, c)
	requireT.Zero(c.Value())
	requireT.Nil(c.Next())
}

func TestCopyChain(t *testing.T) {
	requireT := require.New(t)
	l := list.New(1, 2, 3)

	c := l.IteratorAt(1).Current().CopyChain()
	requireT.Equal(2, c.Value())
	requireT.Equal(3, c.Next().Value())
	requireT.Nil(c.Next().Next())

	c.SetValue(20)
	c.Next().SetValue(30)
	requireT.Equal([]int{1, 2, 3}, collectChain(l.Root()))
	requireT.Equal([]int{20, 30}, collectChain(c))

	// Copied nodes are not attached to any list.
	requireT.False(l.InsertAfter(c, 4))
}

func TestCopyChainSingle(t *testing.T) {
	requireT := require.New(t)
	n := list.NewNode(5)

	c := n.CopyChain()
	requireT.NotSame(n, c)
	requireT.Equal(5, c.Value())
	requireT.Nil(c.Next())
}

func collectChain[T comparable](n *list.Node[T]) []T {
	values := []T{}
	for ; n != nil; n = n.Next() {
		values = append(values, n.Value())
	}
	return values
}
