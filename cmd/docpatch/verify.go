package main

import (
	"fmt"
	"os"

	"github.com/serenity-rs/docpatch"
	"github.com/serenity-rs/docpatch/fs"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	patch := docpatch.DefaultPatch()

	paths, err := fs.Glob(c.Pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docpatch.ErrorMessage(err))
		return err
	}

	unpatched := 0
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		insp, err := deps.Inspector.Inspect(string(raw), patch)
		if err != nil {
			return err
		}

		if insp.HasMarker {
			fmt.Fprintf(deps.Stdout, "unpatched: %s\n", path)
			unpatched++
		}
	}

	if unpatched > 0 {
		return docpatch.Errorf(docpatch.EINTERNAL, "%d of %d files still contain the unpatched marker", unpatched, len(paths))
	}

	fmt.Fprintf(deps.Stdout, "Verified %d files.\n", len(paths))
	return nil
}
