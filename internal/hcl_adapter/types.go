package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level schema of a settings file.
type fileRoot struct {
	Input   *InputBlock   `hcl:"input,block"`
	Output  *OutputBlock  `hcl:"output,block"`
	Logging *LoggingBlock `hcl:"logging,block"`
	Policy  *PolicyBlock  `hcl:"policy,block"`
	Watch   *WatchBlock   `hcl:"watch,block"`
}

// InputBlock is the `input` block.
type InputBlock struct {
	Path       string   `hcl:"path,optional"`
	Extensions []string `hcl:"extensions,optional"`
}

// OutputBlock is the `output` block.
type OutputBlock struct {
	Format string `hcl:"format,optional"`
	Order  string `hcl:"order,optional"`
}

// LoggingBlock is the `logging` block.
type LoggingBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// PolicyBlock is the `policy` block. Switches are pointers so that an
// explicit false can override strict.
type PolicyBlock struct {
	Strict              *bool  `hcl:"strict,optional"`
	Linking             string `hcl:"linking,optional"`
	RejectDuplicates    *bool  `hcl:"reject_duplicates,optional"`
	RejectMultipleRoots *bool  `hcl:"reject_multiple_roots,optional"`
	RequireRoot         *bool  `hcl:"require_root,optional"`
	RejectSelfParent    *bool  `hcl:"reject_self_parent,optional"`
	CoerceMalformed     *bool  `hcl:"coerce_malformed,optional"`
}

// WatchBlock is the `watch` block. Debounce accepts a duration string
// ("250ms") or a number of milliseconds.
type WatchBlock struct {
	Enabled  bool           `hcl:"enabled,optional"`
	Debounce hcl.Expression `hcl:"debounce,optional"`
}
