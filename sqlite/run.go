package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serenity-rs/docpatch"
)

// Compile-time interface verification.
var _ docpatch.RunService = (*RunService)(nil)

// RunService implements docpatch.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a completed run.
func (s *RunService) CreateRun(ctx context.Context, run *docpatch.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, pattern, scanned, patched, unchanged, dry_run, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Pattern, run.Scanned, run.Patched, run.Unchanged, run.DryRun,
		run.StartedAt.Format(time.RFC3339), run.Duration.Milliseconds())

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter docpatch.RunFilter) ([]*docpatch.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, pattern, scanned, patched, unchanged, dry_run, started_at, duration_ms FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Pattern != nil {
		query.WriteString(" AND pattern = ?")
		args = append(args, *filter.Pattern)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*docpatch.Run
	for rows.Next() {
		var run docpatch.Run
		var startedAt string
		var durationMS int64

		if err := rows.Scan(&run.ID, &run.Pattern, &run.Scanned, &run.Patched, &run.Unchanged,
			&run.DryRun, &startedAt, &durationMS); err != nil {
			return nil, err
		}

		run.StartedAt, err = parseRFC3339(startedAt, "started_at")
		if err != nil {
			return nil, err
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
