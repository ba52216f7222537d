package main

import (
	"fmt"
	"time"

	"github.com/serenity-rs/docpatch"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, docpatch.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docpatch.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'docpatch patch' to create one.")
		return nil
	}

	for _, run := range runs {
		mode := ""
		if run.DryRun {
			mode = "  (dry run)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  patched %d/%d in %s%s\n",
			run.ID, run.StartedAt.Format(time.RFC3339), run.Pattern,
			run.Patched, run.Scanned, run.Duration.Round(time.Millisecond), mode)
	}

	return nil
}
