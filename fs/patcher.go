// Package fs applies patches to documentation trees on the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/serenity-rs/docpatch"
	"golang.org/x/sync/errgroup"
)

// Ensure Patcher implements docpatch.Patcher at compile time.
var _ docpatch.Patcher = (*Patcher)(nil)

// Patcher applies patches to files matched by a recursive glob.
type Patcher struct{}

// NewPatcher creates a new Patcher.
func NewPatcher() *Patcher {
	return &Patcher{}
}

// Glob returns the files matching a recursive glob pattern.
// A pattern with no matches yields an empty slice and no error.
func Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, docpatch.Errorf(docpatch.EINVALID, "invalid glob pattern %q: %v", pattern, err)
	}
	return matches, nil
}

// PatchTree enumerates files matching pattern and applies patch to each.
// Files are rewritten in place, with truncation, only when the patch
// changed their content. The first read or write failure aborts the pass.
func (p *Patcher) PatchTree(ctx context.Context, pattern string, patch docpatch.Patch, opts docpatch.PatchOptions) (*docpatch.Report, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	paths, err := Glob(pattern)
	if err != nil {
		return nil, err
	}

	report := &docpatch.Report{
		Scanned: len(paths),
		Files:   make([]docpatch.FileResult, len(paths)),
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path
		if opts.Progress != nil {
			opts.Progress(docpatch.ProgressEvent{
				Path:  path,
				Index: i + 1,
				Total: len(paths),
			})
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := patchFile(path, patch, opts.DryRun)
			if err != nil {
				return err
			}
			report.Files[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, f := range report.Files {
		if f.Patched {
			report.Patched++
		} else {
			report.Unchanged++
		}
	}

	return report, nil
}

// patchFile reads a single file, applies the patch, and writes the file
// back only when the content changed (or reports without writing on a
// dry run).
func patchFile(path string, patch docpatch.Patch, dryRun bool) (docpatch.FileResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return docpatch.FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, changed := patch.Apply(string(raw))
	if changed && !dryRun {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return docpatch.FileResult{}, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return docpatch.FileResult{
		Path:    path,
		Patched: changed,
		Hash:    computeHash(content),
	}, nil
}

// computeHash returns the xxhash digest of content as a hex string.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
