package builder

// Report explains how the records of an input were linked. It lets callers
// account for nodes that exist in the input but not in the tree.
type Report struct {
	// Records is the number of nodes constructed.
	Records int
	// Skipped lists line numbers dropped under CoerceMalformed.
	Skipped []int
	// Disconnected lists ids of nodes whose parent id never resolved, or
	// resolved to the node itself.
	Disconnected []int64
	// Shadowed lists ids that were declared again and replaced in the
	// lookup table. The earlier node stays wherever it was attached.
	Shadowed []int64
	// ReplacedRoots lists ids of roots superseded by a later root.
	ReplacedRoots []int64
}
