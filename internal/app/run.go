package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/treeweight/internal/ctxlog"
	"github.com/vk/treeweight/internal/engine"
	"github.com/vk/treeweight/internal/watch"
)

// ErrInputRejected is returned by Run when at least one input failed to
// parse. The results have already been written.
var ErrInputRejected = errors.New("one or more inputs were rejected")

// Run reads the configured inputs, evaluates them and writes the results.
// In watch mode it then keeps re-evaluating on every change until ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "watch", a.config.Watch)

	err := a.evaluate(ctx)
	if !a.config.Watch {
		a.logger.Debug("App.Run method finished.", "error", err)
		return err
	}
	if err != nil {
		a.logger.Debug("Initial evaluation finished with errors.", "error", err)
	}

	w, werr := watch.New(a.config.InputPath, a.config.Debounce, func(ctx context.Context) {
		if err := a.evaluate(ctx); err != nil {
			a.logger.Debug("Re-evaluation finished with errors.", "error", err)
		}
	})
	if werr != nil {
		return fmt.Errorf("failed to start watch mode: %w", werr)
	}
	return w.Run(ctx)
}

// evaluate performs one read-evaluate-write cycle.
func (a *App) evaluate(ctx context.Context) error {
	inputs, err := a.reader.Read(ctx, a.config.InputPath)
	if err != nil {
		a.logger.Warn("Failed to load input.", "error", err)
		if werr := a.sink.Write([]*engine.Result{{Name: a.config.InputPath, Err: err}}); werr != nil {
			return fmt.Errorf("failed to write result: %w", werr)
		}
		return err
	}

	results, ctxErr := a.engine.EvaluateAll(ctx, inputs)
	if len(results) > 0 {
		if err := a.sink.Write(results); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if ctxErr != nil {
		a.logger.Info("Evaluation interrupted.", "inputs", len(inputs), "evaluated", len(results))
		return fmt.Errorf("evaluation interrupted: %w", ctxErr)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	a.logger.Info("Evaluation complete.", "inputs", len(results), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInputRejected, failed, len(results))
	}
	return nil
}
