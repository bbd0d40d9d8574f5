package builder

import (
	"context"

	"github.com/vk/treeweight/internal/ctxlog"
	"github.com/vk/treeweight/internal/tree"
)

// Build parses text and links its records into a tree according to policy.
// The returned Report is populated even when the tree is empty.
func Build(ctx context.Context, text string, policy Policy) (*tree.Tree, *Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting tree construction.", "bytes", len(text), "linking", policy.Linking.String())

	if err := CheckCharacters(text); err != nil {
		logger.Debug("Build: Input rejected by character check.", "error", err)
		return nil, nil, err
	}

	report := &Report{}

	// First phase: parse every line into a record.
	lines := splitLines(text)
	records := make([]record, 0, len(lines))
	for _, line := range lines {
		rec, ok, err := parseRecord(line, policy.CoerceMalformed)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			logger.Debug("Build: Skipping unreadable line.", "line", line.number)
			report.Skipped = append(report.Skipped, line.number)
			continue
		}
		records = append(records, rec)
	}
	logger.Debug("Build: Record parsing complete.", "record_count", len(records), "skipped", len(report.Skipped))

	// Second phase: link records into a tree.
	l := newLinker(policy, report)
	var err error
	if policy.Linking == TwoPass {
		err = l.linkTwoPass(records)
	} else {
		err = l.linkSinglePass(records)
	}
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Build: Linking complete.",
		"disconnected", len(report.Disconnected),
		"shadowed", len(report.Shadowed),
		"replaced_roots", len(report.ReplacedRoots))

	if l.root == nil {
		if policy.RequireRoot {
			return nil, nil, &ParseError{Kind: NoRoot}
		}
		logger.Debug("Build: No root declared, returning empty tree.")
	}

	logger.Debug("Build: Tree construction successful.")
	return tree.New(l.root), report, nil
}
