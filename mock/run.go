package mock

import (
	"context"

	"github.com/serenity-rs/docpatch"
)

var _ docpatch.RunService = (*RunService)(nil)

// RunService is a mock implementation of docpatch.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *docpatch.Run) error
	FindRunsFn  func(ctx context.Context, filter docpatch.RunFilter) ([]*docpatch.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *docpatch.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter docpatch.RunFilter) ([]*docpatch.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
