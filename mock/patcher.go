// Package mock provides function-field mock implementations of docpatch
// interfaces for testing.
package mock

import (
	"context"

	"github.com/serenity-rs/docpatch"
)

var _ docpatch.Patcher = (*Patcher)(nil)

// Patcher is a mock implementation of docpatch.Patcher.
type Patcher struct {
	PatchTreeFn func(ctx context.Context, pattern string, patch docpatch.Patch, opts docpatch.PatchOptions) (*docpatch.Report, error)
}

func (p *Patcher) PatchTree(ctx context.Context, pattern string, patch docpatch.Patch, opts docpatch.PatchOptions) (*docpatch.Report, error) {
	return p.PatchTreeFn(ctx, pattern, patch, opts)
}
