package tree

// RootParent is the parent id that marks a node as the root.
const RootParent int64 = -1

// Node is a single parsed record.
type Node struct {
	ID       int64
	ParentID int64
	Value    int64
	Children []*Node
}

// NewNode creates a node with no children.
func NewNode(id, parentID, value int64) *Node {
	return &Node{ID: id, ParentID: parentID, Value: value}
}

// AddChild appends a child in attachment order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// IsRoot reports whether the node declares itself the root.
func (n *Node) IsRoot() bool {
	return n.ParentID == RootParent
}
