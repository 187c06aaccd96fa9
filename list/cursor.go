package list

import (
	"github.com/pkg/errors"
)

var (
	// ErrCursorPastEnd is the panic value used when cursor already moved past the last node.
	ErrCursorPastEnd = errors.New("cursor is past the end of the list")

	// ErrCursorInvalidated is the panic value used when node pointed by cursor was removed from the list.
	ErrCursorInvalidated = errors.New("cursor points to a node removed from the list")
)

// Cursor is the forward-only position in the list.
// Cursor becomes invalid once the node it points to is removed from the list. Using invalid cursor panics.
type Cursor[T comparable] struct {
	list    *List[T]
	current *Node[T]
}

// Next moves cursor to the next node. After passing the last node Current returns nil.
func (c *Cursor[T]) Next() {
	c.verify()
	c.current = c.current.next
}

// HasNext reports if there is a node after the current one.
func (c *Cursor[T]) HasNext() bool {
	c.verify()
	return c.current.next != nil
}

// Current returns the node cursor points to, nil if cursor moved past the end.
func (c *Cursor[T]) Current() *Node[T] {
	if c.current != nil && c.current.list != c.list {
		panic(ErrCursorInvalidated)
	}
	return c.current
}

func (c *Cursor[T]) verify() {
	if c.current == nil {
		panic(ErrCursorPastEnd)
	}
	if c.current.list != c.list {
		panic(ErrCursorInvalidated)
	}
}
