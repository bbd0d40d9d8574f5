package hcl_adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/treeweight/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl populates omitted optional expression fields with a
// zero-width placeholder, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}

// decodeDuration evaluates expr as a duration string or a number of
// milliseconds.
func decodeDuration(expr hcl.Expression, evalCtx *hcl.EvalContext) (time.Duration, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}

	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid duration",
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		}}
	}

	if val.IsNull() || !val.IsKnown() {
		return 0, invalid("The duration must not be null.")
	}

	switch val.Type() {
	case cty.String:
		d, err := time.ParseDuration(val.AsString())
		if err != nil {
			return 0, invalid(err.Error())
		}
		return d, nil
	case cty.Number:
		var ms int64
		if err := gocty.FromCtyValue(val, &ms); err != nil {
			return 0, invalid(fmt.Sprintf("A number of milliseconds must be a whole number: %s.", err))
		}
		return time.Duration(ms) * time.Millisecond, nil
	default:
		return 0, invalid(fmt.Sprintf("Expected a string such as \"250ms\" or a number of milliseconds, got %s.", val.Type().FriendlyName()))
	}
}
