package hcl_adapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/treeweight/internal/config"
)

// translate merges the decoded blocks into model. Attributes left out of
// the file keep the model's defaults.
func (l *Loader) translate(ctx context.Context, root *fileRoot, model *config.Model, evalCtx *hcl.EvalContext) error {
	if in := root.Input; in != nil {
		setString(&model.Input.Path, in.Path)
		if len(in.Extensions) > 0 {
			model.Input.Extensions = in.Extensions
		}
	}

	if out := root.Output; out != nil {
		setString(&model.Output.Format, out.Format)
		setString(&model.Output.Order, out.Order)
	}

	if lg := root.Logging; lg != nil {
		setString(&model.Logging.Level, lg.Level)
		setString(&model.Logging.Format, lg.Format)
	}

	if p := root.Policy; p != nil {
		if p.Strict != nil {
			model.Policy.SetStrict(*p.Strict)
		}
		setString(&model.Policy.Linking, p.Linking)
		setBool(&model.Policy.RejectDuplicates, p.RejectDuplicates)
		setBool(&model.Policy.RejectMultipleRoots, p.RejectMultipleRoots)
		setBool(&model.Policy.RequireRoot, p.RequireRoot)
		setBool(&model.Policy.RejectSelfParent, p.RejectSelfParent)
		setBool(&model.Policy.CoerceMalformed, p.CoerceMalformed)
	}

	if w := root.Watch; w != nil {
		model.Watch.Enabled = w.Enabled
		if isExprDefined(ctx, w.Debounce, "debounce") {
			d, diags := decodeDuration(w.Debounce, evalCtx)
			if diags.HasErrors() {
				return diags
			}
			model.Watch.Debounce = d
		}
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
