package docpatch

import (
	"context"
	"time"
)

// Run represents one recorded invocation of the patcher.
type Run struct {
	ID        string        `json:"id"`
	Pattern   string        `json:"pattern"`
	Scanned   int           `json:"scanned"`
	Patched   int           `json:"patched"`
	Unchanged int           `json:"unchanged"`
	DryRun    bool          `json:"dryRun"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Pattern == "" {
		return Errorf(EINVALID, "run pattern required")
	}
	if r.Scanned < r.Patched+r.Unchanged {
		return Errorf(EINVALID, "run counts inconsistent")
	}
	return nil
}

// RunService represents a service for recording and querying runs.
type RunService interface {
	// CreateRun records a completed run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID      *string `json:"id"`
	Pattern *string `json:"pattern"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
