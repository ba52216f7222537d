package main

import (
	"fmt"
	"time"

	"github.com/serenity-rs/docpatch"
)

// Run executes the patch command.
func (c *PatchCmd) Run(deps *Dependencies) error {
	patch := docpatch.DefaultPatch()
	start := time.Now()

	opts := docpatch.PatchOptions{
		DryRun:      c.DryRun,
		Concurrency: c.Concurrency,
	}
	if !c.Quiet {
		opts.Progress = func(ev docpatch.ProgressEvent) {
			fmt.Fprintf(deps.Stdout, "Processing %s\n", ev.Path)
		}
	}

	report, err := deps.Patcher.PatchTree(deps.Ctx, c.Pattern, patch, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docpatch.ErrorMessage(err))
		return err
	}

	verb := "Patched"
	if c.DryRun {
		verb = "Would patch"
	}
	fmt.Fprintf(deps.Stdout, "%s %d of %d files (%d unchanged)\n", verb, report.Patched, report.Scanned, report.Unchanged)

	// Record the run; a ledger failure must not turn a successful
	// patch pass into a failed one.
	if deps.Runs != nil {
		run := &docpatch.Run{
			Pattern:   c.Pattern,
			Scanned:   report.Scanned,
			Patched:   report.Patched,
			Unchanged: report.Unchanged,
			DryRun:    c.DryRun,
			StartedAt: start.UTC(),
			Duration:  time.Since(start),
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record run: %s\n", docpatch.ErrorMessage(err))
		}
	}

	return nil
}
