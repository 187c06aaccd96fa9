package list

import (
	"iter"

	"github.com/outofforest/mass"
)

// DefaultConfig is the configuration used by New.
var DefaultConfig = Config{
	NodesPerBatch: 64,
}

// Config stores list configuration.
type Config struct {
	// NodesPerBatch is the number of nodes allocated at once when list runs out of preallocated ones.
	NodesPerBatch uint64
}

// New creates new list containing values in the order they are provided.
func New[T comparable](values ...T) *List[T] {
	return NewWithConfig(DefaultConfig, values...)
}

// NewWithConfig creates new list using provided config.
func NewWithConfig[T comparable](config Config, values ...T) *List[T] {
	if config.NodesPerBatch == 0 {
		config.NodesPerBatch = DefaultConfig.NodesPerBatch
	}

	l := &List[T]{
		config:    config,
		massNodes: mass.New[Node[T]](config.NodesPerBatch),
	}

	var tail *Node[T]
	for _, v := range values {
		n := l.newNode(v)
		if tail == nil {
			l.root = n
		} else {
			tail.next = n
		}
		tail = n
	}

	return l
}

// List is the singly-linked list.
// Values are compared using == operator of T. It means value equality for value types
// and identity for pointers, channels and interfaces holding them.
// List is not safe for concurrent use.
type List[T comparable] struct {
	config    Config
	root      *Node[T]
	massNodes *mass.Mass[Node[T]]
}

// Copy returns deep copy of the list. Modifications of the copy never affect the original list
// and vice versa.
func (l *List[T]) Copy() *List[T] {
	c := NewWithConfig[T](l.config)
	c.root = l.root.copyChain(c.massNodes.New, c)
	return c
}

// Root returns the first node of the list, nil if list is empty.
func (l *List[T]) Root() *Node[T] {
	return l.root
}

// Len returns number of values in the list.
func (l *List[T]) Len() int {
	var length int
	for n := l.root; n != nil; n = n.next {
		length++
	}
	return length
}

// Contains checks if value exists in the list.
func (l *List[T]) Contains(value T) bool {
	return l.nodeByValue(value) != nil
}

// InsertAtStart inserts value at the start of the list.
func (l *List[T]) InsertAtStart(value T) {
	n := l.newNode(value)
	n.next = l.root
	l.root = n
}

// InsertAfter inserts value right after the target node.
// If target is nil or is not attached to this list, nothing happens and false is returned.
func (l *List[T]) InsertAfter(target *Node[T], value T) bool {
	if target == nil || target.list != l {
		return false
	}

	n := l.newNode(value)
	n.next = target.next
	target.next = n
	return true
}

// InsertAfterValue inserts value right after the first node holding target value.
// If target value does not exist in the list, nothing happens and false is returned.
func (l *List[T]) InsertAfterValue(target, value T) bool {
	return l.InsertAfter(l.nodeByValue(target), value)
}

// InsertAtEnd inserts value at the end of the list.
func (l *List[T]) InsertAtEnd(value T) {
	n := l.newNode(value)
	if l.root == nil {
		l.root = n
		return
	}

	l.last().next = n
}

// Pop removes the node at position and returns its value.
// If position does not exist, zero value and false are returned and list stays untouched.
func (l *List[T]) Pop(position int) (T, bool) {
	n := l.nodeByPosition(position)
	if n == nil {
		var v T
		return v, false
	}

	v := n.value
	l.detach(n)
	return v, true
}

// Remove removes the first node holding value. It returns false if value does not exist.
func (l *List[T]) Remove(value T) bool {
	n := l.nodeByValue(value)
	if n == nil {
		return false
	}

	l.detach(n)
	return true
}

// RemoveAll removes all the nodes holding value and returns the number of removed nodes.
func (l *List[T]) RemoveAll(value T) int {
	var removed int
	for l.Remove(value) {
		removed++
	}
	return removed
}

// Values iterates over values from the start to the end of the list.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Nodes iterates over nodes from the start to the end of the list.
// The loop body may remove the visited node or any node after it, iteration continues with the first
// node still in the list. Removing nodes visited earlier is not supported.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		var prev *Node[T]
		for n := l.root; n != nil; {
			if !yield(n) {
				return
			}
			switch {
			case n.list == l:
				prev = n
				n = n.next
			case prev == nil:
				n = l.root
			default:
				n = prev.next
			}
		}
	}
}

// IteratorStart returns cursor pointing to the first node, nil if list is empty.
func (l *List[T]) IteratorStart() *Cursor[T] {
	return l.cursor(l.root)
}

// IteratorEnd returns cursor pointing to the last node, nil if list is empty.
func (l *List[T]) IteratorEnd() *Cursor[T] {
	return l.cursor(l.last())
}

// IteratorAt returns cursor pointing to the node at position, nil if position does not exist.
func (l *List[T]) IteratorAt(position int) *Cursor[T] {
	return l.cursor(l.nodeByPosition(position))
}

// IteratorAtValue returns cursor pointing to the first node holding value, nil if value does not exist.
func (l *List[T]) IteratorAtValue(value T) *Cursor[T] {
	return l.cursor(l.nodeByValue(value))
}

func (l *List[T]) cursor(n *Node[T]) *Cursor[T] {
	if n == nil {
		return nil
	}
	return &Cursor[T]{
		list:    l,
		current: n,
	}
}

func (l *List[T]) newNode(value T) *Node[T] {
	n := l.massNodes.New()
	n.value = value
	n.list = l
	return n
}

func (l *List[T]) last() *Node[T] {
	if l.root == nil {
		return nil
	}

	n := l.root
	for n.next != nil {
		n = n.next
	}
	return n
}

func (l *List[T]) nodeByValue(value T) *Node[T] {
	for n := l.root; n != nil; n = n.next {
		if n.value == value {
			return n
		}
	}
	return nil
}

func (l *List[T]) nodeByPosition(position int) *Node[T] {
	if position < 0 {
		return nil
	}

	var i int
	for n := l.root; n != nil; n = n.next {
		if i == position {
			return n
		}
		i++
	}
	return nil
}

// prevNode returns node preceding the target one. Nil is returned if target is the root
// or is not reachable.
func (l *List[T]) prevNode(target *Node[T]) *Node[T] {
	if l.root == nil || target == l.root {
		return nil
	}

	for n := l.root; n.next != nil; n = n.next {
		if n.next == target {
			return n
		}
	}
	return nil
}

// detach unlinks the node and clears it, so the value is not kept alive by the node batch.
func (l *List[T]) detach(n *Node[T]) {
	if n == nil || n.list != l {
		return
	}

	if n == l.root {
		l.root = n.next
	} else {
		prev := l.prevNode(n)
		if prev == nil {
			return
		}
		prev.next = n.next
	}

	var zero T
	n.value = zero
	n.next = nil
	n.list = nil
}
