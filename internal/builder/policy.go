package builder

import (
	"fmt"
	"strings"
)

// Linking selects how parent references are resolved.
type Linking int

const (
	// SinglePass attaches a node only if its parent appeared on an earlier
	// line. Forward references stay disconnected.
	SinglePass Linking = iota
	// TwoPass parses every record before resolving any parent reference.
	TwoPass
)

// String implements fmt.Stringer.
func (l Linking) String() string {
	if l == TwoPass {
		return "two_pass"
	}
	return "single_pass"
}

// ParseLinking maps a configuration string to a Linking mode.
func ParseLinking(s string) (Linking, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single_pass", "single-pass":
		return SinglePass, nil
	case "two_pass", "two-pass":
		return TwoPass, nil
	default:
		return SinglePass, fmt.Errorf("unknown linking mode %q: must be 'single_pass' or 'two_pass'", s)
	}
}

// Policy controls how the builder treats inputs the record format allows
// but that do not describe a well-formed tree.
type Policy struct {
	Linking Linking

	// RejectDuplicates fails on a repeated id instead of replacing the
	// earlier node in the lookup table.
	RejectDuplicates bool

	// RejectMultipleRoots fails on a second root instead of letting the
	// last one win.
	RejectMultipleRoots bool

	// RequireRoot fails when no root is declared instead of returning an
	// empty tree.
	RequireRoot bool

	// RejectSelfParent fails on a node that names itself as its parent
	// instead of leaving it disconnected.
	RejectSelfParent bool

	// CoerceMalformed counts malformed value fields as zero and skips
	// lines whose id or parent id cannot be read, instead of failing.
	CoerceMalformed bool
}

// DefaultPolicy returns the lenient policy of the original tool: single-pass
// linking, duplicates replace, last root wins, no root yields an empty tree,
// a node that is its own parent is left disconnected. Malformed numbers are
// still rejected.
func DefaultPolicy() Policy {
	return Policy{Linking: SinglePass}
}

// Strict returns a policy that rejects duplicate ids, multiple roots, a
// missing root and self-parented nodes. Linking stays single-pass.
func Strict() Policy {
	return Policy{
		Linking:             SinglePass,
		RejectDuplicates:    true,
		RejectMultipleRoots: true,
		RequireRoot:         true,
		RejectSelfParent:    true,
	}
}
