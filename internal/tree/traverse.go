package tree

// Traverse visits every reachable node exactly once, root first. Children
// are pushed in stored order, so the last child of a node is descended into
// before its earlier siblings.
func (t *Tree) Traverse(visit func(*Node)) {
	if t.Empty() {
		return
	}

	stack := []*Node{t.Root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visit != nil {
			visit(current)
		}

		stack = append(stack, current.Children...)
	}
}

// TraversePostOrder visits every reachable node exactly once, children
// before their parent and the first child first. The visited set only
// prevents descending into a finished child again.
func (t *Tree) TraversePostOrder(visit func(*Node)) {
	if t.Empty() {
		return
	}

	visited := make(map[*Node]struct{})
	path := []*Node{t.Root}

	for len(path) > 0 {
		current := path[len(path)-1]

		if next := firstUnvisited(current, visited); next != nil {
			path = append(path, next)
			continue
		}

		if visit != nil {
			visit(current)
		}
		visited[current] = struct{}{}
		path = path[:len(path)-1]
	}
}

func firstUnvisited(n *Node, visited map[*Node]struct{}) *Node {
	for _, child := range n.Children {
		if _, done := visited[child]; !done {
			return child
		}
	}
	return nil
}

// Depth returns the number of levels in the tree; an empty tree has depth 0.
func (t *Tree) Depth() int {
	if t.Empty() {
		return 0
	}

	type frame struct {
		node  *Node
		level int
	}

	deepest := 0
	stack := []frame{{node: t.Root, level: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.level > deepest {
			deepest = f.level
		}
		for _, child := range f.node.Children {
			stack = append(stack, frame{node: child, level: f.level + 1})
		}
	}
	return deepest
}
