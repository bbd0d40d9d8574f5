// Package aggregate computes totals over a built tree.
package aggregate

import "github.com/vk/treeweight/internal/tree"

// Summary is the result of one full traversal.
type Summary struct {
	Total int64
	Nodes int
	Depth int
}

// TotalWeight sums the value of every node reachable from the root. An
// empty tree weighs 0.
func TotalWeight(t *tree.Tree) int64 {
	return TotalWeightOrder(t, tree.PreOrder)
}

// TotalWeightOrder is TotalWeight using the given traversal order. Every
// order yields the same total.
func TotalWeightOrder(t *tree.Tree, order tree.Order) int64 {
	var total int64
	t.Walk(order, func(n *tree.Node) {
		total += n.Value
	})
	return total
}

// Summarize collects the total, node count and depth of t.
func Summarize(t *tree.Tree, order tree.Order) Summary {
	var s Summary
	t.Walk(order, func(n *tree.Node) {
		s.Total += n.Value
		s.Nodes++
	})
	s.Depth = t.Depth()
	return s
}
