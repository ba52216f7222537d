package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/serenity-rs/docpatch"
	"github.com/serenity-rs/docpatch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an in-memory database, closed automatically on cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID and persists the run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		ctx := context.Background()

		run := &docpatch.Run{
			Pattern:   docpatch.DefaultPattern,
			Scanned:   5,
			Patched:   3,
			Unchanged: 2,
			Duration:  1500 * time.Millisecond,
		}

		err := svc.CreateRun(ctx, run)

		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())

		got, err := svc.FindRuns(ctx, docpatch.RunFilter{ID: &run.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, run.Pattern, got[0].Pattern)
		assert.Equal(t, 5, got[0].Scanned)
		assert.Equal(t, 3, got[0].Patched)
		assert.Equal(t, 2, got[0].Unchanged)
		assert.Equal(t, 1500*time.Millisecond, got[0].Duration)
	})

	t.Run("rejects invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))

		err := svc.CreateRun(context.Background(), &docpatch.Run{})

		require.Error(t, err)
		assert.Equal(t, docpatch.EINVALID, docpatch.ErrorCode(err))
	})

	t.Run("persists dry run flag", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		ctx := context.Background()

		run := &docpatch.Run{Pattern: "docs/**/*.html", DryRun: true}
		require.NoError(t, svc.CreateRun(ctx, run))

		got, err := svc.FindRuns(ctx, docpatch.RunFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].DryRun)
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns runs newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		ctx := context.Background()

		older := &docpatch.Run{
			Pattern:   "a/**/*.html",
			StartedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		}
		newer := &docpatch.Run{
			Pattern:   "b/**/*.html",
			StartedAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		}
		require.NoError(t, svc.CreateRun(ctx, older))
		require.NoError(t, svc.CreateRun(ctx, newer))

		got, err := svc.FindRuns(ctx, docpatch.RunFilter{})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b/**/*.html", got[0].Pattern)
		assert.Equal(t, "a/**/*.html", got[1].Pattern)
	})

	t.Run("filters by pattern", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateRun(ctx, &docpatch.Run{Pattern: "a/**/*.html"}))
		require.NoError(t, svc.CreateRun(ctx, &docpatch.Run{Pattern: "b/**/*.html"}))

		pattern := "a/**/*.html"
		got, err := svc.FindRuns(ctx, docpatch.RunFilter{Pattern: &pattern})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a/**/*.html", got[0].Pattern)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			run := &docpatch.Run{
				Pattern:   "a/**/*.html",
				StartedAt: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			}
			require.NoError(t, svc.CreateRun(ctx, run))
		}

		got, err := svc.FindRuns(ctx, docpatch.RunFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), got[0].StartedAt)
	})

	t.Run("empty ledger returns no runs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))

		got, err := svc.FindRuns(context.Background(), docpatch.RunFilter{})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
