package app

import (
	"context"
	"fmt"

	"github.com/Comfy-Org/node-diff/internal/ctxlog"
	"github.com/Comfy-Org/node-diff/internal/diff"
	"github.com/Comfy-Org/node-diff/internal/registry"
	"github.com/Comfy-Org/node-diff/internal/report"
)

// Run executes the compatibility check based on the provided configuration.
// It loads both registries, diffs them, writes the report, and returns
// ErrBreakingChanges when the candidate breaks a still-present node's
// declared interface.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	base, err := registry.Load(ctx, appConfig.BasePath)
	if err != nil {
		return fmt.Errorf("failed to load base registry: %w", err)
	}
	candidate, err := registry.Load(ctx, appConfig.CandidatePath)
	if err != nil {
		return fmt.Errorf("failed to load candidate registry: %w", err)
	}

	a.logger.Debug("Comparing registries...", "base_nodes", base.Len(), "candidate_nodes", candidate.Len())
	diffReport := diff.Compare(base, candidate)

	var warnings []registry.Warning
	warnings = append(warnings, base.Warnings()...)
	warnings = append(warnings, candidate.Warnings()...)
	report.Write(a.outW, diffReport, warnings)

	a.logger.Debug("App.Run method finished.",
		"findings", len(diffReport.Findings),
		"added", len(diffReport.Added),
		"removed", len(diffReport.Removed),
	)

	if diffReport.HasBreaking() {
		return ErrBreakingChanges
	}
	return nil
}
