package builder

import (
	"github.com/vk/treeweight/internal/tree"
)

// linker owns the id lookup table and root selection during one build.
type linker struct {
	policy Policy
	table  map[int64]*tree.Node
	root   *tree.Node
	report *Report
}

func newLinker(policy Policy, report *Report) *linker {
	return &linker{
		policy: policy,
		table:  make(map[int64]*tree.Node),
		report: report,
	}
}

// register constructs a node for rec and inserts it into the lookup table,
// replacing any earlier node with the same id.
func (l *linker) register(rec record) (*tree.Node, error) {
	if rec.parentID == rec.id && l.policy.RejectSelfParent {
		return nil, &ParseError{Kind: SelfParent, Line: rec.line, Field: 2}
	}

	if _, exists := l.table[rec.id]; exists {
		if l.policy.RejectDuplicates {
			return nil, &ParseError{Kind: DuplicateID, Line: rec.line, Field: 1}
		}
		l.report.Shadowed = append(l.report.Shadowed, rec.id)
	}

	n := tree.NewNode(rec.id, rec.parentID, rec.value)
	l.table[rec.id] = n
	l.report.Records++
	return n, nil
}

// attach links n to its parent as found in the lookup table at call time,
// or makes it the root. A node whose parent does not resolve, or resolves
// to the node itself, is left disconnected.
func (l *linker) attach(n *tree.Node, line int) error {
	if parent, ok := l.table[n.ParentID]; ok {
		if parent == n {
			l.report.Disconnected = append(l.report.Disconnected, n.ID)
			return nil
		}
		parent.AddChild(n)
		return nil
	}

	if n.IsRoot() {
		if l.root != nil {
			if l.policy.RejectMultipleRoots {
				return &ParseError{Kind: MultipleRoots, Line: line, Field: 2}
			}
			l.report.ReplacedRoots = append(l.report.ReplacedRoots, l.root.ID)
		}
		l.root = n
		return nil
	}

	l.report.Disconnected = append(l.report.Disconnected, n.ID)
	return nil
}

// linkSinglePass registers and attaches each record in line order, so a
// parent must already be registered when its child is read.
func (l *linker) linkSinglePass(records []record) error {
	for _, rec := range records {
		n, err := l.register(rec)
		if err != nil {
			return err
		}
		if err := l.attach(n, rec.line); err != nil {
			return err
		}
	}
	return nil
}

// linkTwoPass registers every record first and then attaches each node, in
// line order, to the final table entry for its parent id.
func (l *linker) linkTwoPass(records []record) error {
	nodes := make([]*tree.Node, 0, len(records))
	for _, rec := range records {
		n, err := l.register(rec)
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
	}

	for i, n := range nodes {
		if err := l.attach(n, records[i].line); err != nil {
			return err
		}
	}
	return nil
}
