package tree

import (
	"fmt"
	"strings"
)

// Order selects a traversal strategy.
type Order int

const (
	// PreOrder visits a node before its children, later siblings first.
	PreOrder Order = iota
	// PostOrder visits children before their parent, first sibling first.
	PostOrder
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a configuration string to an Order. An empty string
// selects PreOrder.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preorder", "pre":
		return PreOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	default:
		return PreOrder, fmt.Errorf("unknown traversal order %q: must be 'preorder' or 'postorder'", s)
	}
}

// Tree owns every node reachable from Root. A nil Root is an empty tree.
type Tree struct {
	Root *Node
}

// New wraps root in a Tree.
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t == nil || t.Root == nil
}

// Len returns the number of reachable nodes.
func (t *Tree) Len() int {
	count := 0
	t.Traverse(func(*Node) { count++ })
	return count
}

// Walk visits every reachable node once using the given order.
func (t *Tree) Walk(order Order, visit func(*Node)) {
	switch order {
	case PostOrder:
		t.TraversePostOrder(visit)
	default:
		t.Traverse(visit)
	}
}
