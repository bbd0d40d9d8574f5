package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vk/treeweight/internal/aggregate"
	"github.com/vk/treeweight/internal/builder"
	"github.com/vk/treeweight/internal/ctxlog"
	"github.com/vk/treeweight/internal/source"
	"github.com/vk/treeweight/internal/tree"
)

// User-facing messages shown instead of a total.
const (
	MsgInvalidInput = "Invalid Input File!"
	MsgFailedToLoad = "Failed to load file"
)

// ParseTree validates and evaluates text with the default policy and
// returns its total weight.
func ParseTree(text string) (int64, error) {
	res := New(builder.DefaultPolicy(), tree.PreOrder).Evaluate(context.Background(), source.Input{Text: text})
	return res.Total, res.Err
}

// Message returns the text shown to the user for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, source.ErrMissingSource), errors.Is(err, source.ErrFailedToLoad):
		return MsgFailedToLoad
	default:
		return MsgInvalidInput
	}
}

// Engine evaluates inputs with a fixed policy and traversal order.
type Engine struct {
	policy builder.Policy
	order  tree.Order
}

// New creates an Engine.
func New(policy builder.Policy, order tree.Order) *Engine {
	return &Engine{policy: policy, order: order}
}

// Result is the outcome of evaluating one input.
type Result struct {
	Name  string
	RunID string

	Total int64
	Nodes int
	Depth int

	// Unreachable counts constructed nodes that are not part of the tree.
	Unreachable int
	Report      *builder.Report

	Err error
}

// Failed reports whether the input could not be evaluated.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Evaluate builds and aggregates one input. Errors are returned in the
// Result, never panicked.
func (e *Engine) Evaluate(ctx context.Context, in source.Input) *Result {
	res := &Result{Name: in.Name, RunID: uuid.NewString()}
	ctx = ctxlog.With(ctx, "run_id", res.RunID, "input", in.Name)
	logger := ctxlog.FromContext(ctx)

	t, report, err := builder.Build(ctx, in.Text, e.policy)
	if err != nil {
		logger.Warn("Input rejected.", "error", err)
		res.Err = err
		return res
	}

	summary := aggregate.Summarize(t, e.order)
	res.Total = summary.Total
	res.Nodes = summary.Nodes
	res.Depth = summary.Depth
	res.Report = report
	res.Unreachable = report.Records - summary.Nodes

	logger.Debug("Input evaluated.",
		"total", res.Total,
		"nodes", res.Nodes,
		"depth", res.Depth,
		"unreachable", res.Unreachable,
		"order", e.order.String())
	return res
}

// EvaluateAll evaluates inputs in order. If ctx is done it stops and returns
// the results so far together with the context error.
func (e *Engine) EvaluateAll(ctx context.Context, inputs []source.Input) ([]*Result, error) {
	results := make([]*Result, 0, len(inputs))
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			ctxlog.FromContext(ctx).Debug("Evaluation interrupted.", "done", len(results), "skipped", len(inputs)-len(results))
			return results, err
		}
		results = append(results, e.Evaluate(ctx, in))
	}
	return results, nil
}
