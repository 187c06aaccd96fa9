package list

// NewNode creates node holding the value. The node is not attached to any list.
func NewNode[T comparable](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Node represents list node.
// Zero value is a valid node holding zero value of T.
// Removing node from the list clears its value and link.
type Node[T comparable] struct {
	value T
	next  *Node[T]

	// list is the list node is attached to, nil if node is detached.
	list *List[T]
}

// Value returns value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces value stored in the node.
func (n *Node[T]) SetValue(value T) {
	n.value = value
}

// Next returns the successor of the node, nil if node is the last one.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// CopyChain returns deep copy of the node and all its successors.
// Returned nodes are not attached to any list.
func (n *Node[T]) CopyChain() *Node[T] {
	return n.copyChain(func() *Node[T] {
		return &Node[T]{}
	}, nil)
}

func (n *Node[T]) copyChain(newNode func() *Node[T], l *List[T]) *Node[T] {
	if n == nil {
		return nil
	}

	head := newNode()
	head.value = n.value
	head.list = l

	dst := head
	for src := n.next; src != nil; src = src.next {
		dst.next = newNode()
		dst = dst.next
		dst.value = src.value
		dst.list = l
	}

	return head
}
