package docpatch

import "context"

// FileResult records the outcome for a single documentation page.
type FileResult struct {
	Path string

	// Patched reports whether the marker was found and the fragment
	// injected (or would have been, on a dry run).
	Patched bool

	// Hash is the xxhash digest of the file content after the pass,
	// formatted as a hex string.
	Hash string
}

// Report aggregates the outcome of one pass over a documentation tree.
type Report struct {
	Scanned   int
	Patched   int
	Unchanged int
	Files     []FileResult
}

// ProgressEvent reports that a discovered file is being processed.
type ProgressEvent struct {
	Path  string
	Index int // 1-based position within the pass
	Total int
}

// ProgressFunc is called once per discovered file, before it is processed.
type ProgressFunc func(ProgressEvent)

// PatchOptions configures a tree pass.
type PatchOptions struct {
	// DryRun computes results without writing any file.
	DryRun bool

	// Concurrency bounds the number of files processed at once.
	// Zero or one preserves the sequential single-file-at-a-time
	// behavior; files are independent so higher values are safe.
	Concurrency int

	// Progress, if set, is invoked for every discovered file.
	Progress ProgressFunc
}

// Patcher applies a patch to every file matching a recursive glob pattern.
// Implementations hide file enumeration, I/O, and write-back semantics.
type Patcher interface {
	// PatchTree enumerates files matching pattern and applies patch to
	// each. Files whose content is unchanged by the patch are not
	// rewritten. Any read or write failure aborts the pass; there is no
	// per-file error isolation. An empty match set yields an empty
	// report and no error.
	PatchTree(ctx context.Context, pattern string, patch Patch, opts PatchOptions) (*Report, error)
}
