// Package tree holds the node model and the traversal algorithms used to
// aggregate over it. A Tree is built once by the builder package and is not
// mutated afterwards; traversals keep their bookkeeping local.
package tree
