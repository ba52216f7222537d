// Package slog provides logging decorators for docpatch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/serenity-rs/docpatch"
)

// Ensure LoggingPatcher implements docpatch.Patcher at compile time.
var _ docpatch.Patcher = (*LoggingPatcher)(nil)

// LoggingPatcher wraps a Patcher with logging of each tree pass.
type LoggingPatcher struct {
	next   docpatch.Patcher
	logger *slog.Logger
}

// NewLoggingPatcher creates a new LoggingPatcher.
func NewLoggingPatcher(next docpatch.Patcher, logger *slog.Logger) *LoggingPatcher {
	return &LoggingPatcher{next: next, logger: logger}
}

// PatchTree delegates to the wrapped patcher and logs the outcome.
func (p *LoggingPatcher) PatchTree(ctx context.Context, pattern string, patch docpatch.Patch, opts docpatch.PatchOptions) (report *docpatch.Report, err error) {
	defer func(begin time.Time) {
		scanned, patched := 0, 0
		if report != nil {
			scanned = report.Scanned
			patched = report.Patched
		}
		p.logger.Info("tree pass",
			"pattern", pattern,
			"scanned", scanned,
			"patched", patched,
			"dry_run", opts.DryRun,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.PatchTree(ctx, pattern, patch, opts)
}
