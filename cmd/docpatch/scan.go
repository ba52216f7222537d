package main

import (
	"fmt"
	"os"

	"github.com/serenity-rs/docpatch"
	"github.com/serenity-rs/docpatch/fs"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	patch := docpatch.DefaultPatch()

	paths, err := fs.Glob(c.Pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docpatch.ErrorMessage(err))
		return err
	}

	if len(paths) == 0 {
		fmt.Fprintln(deps.Stdout, "No files matched.")
		return nil
	}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		insp, err := deps.Inspector.Inspect(string(raw), patch)
		if err != nil {
			return err
		}

		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", path, generatorName(insp.Generator), sidebarState(insp))
	}

	return nil
}

func generatorName(g docpatch.Generator) string {
	if g == docpatch.GeneratorUnknown {
		return "(unknown)"
	}
	return string(g)
}

// sidebarState summarizes an inspection in one word.
func sidebarState(insp *docpatch.Inspection) string {
	switch {
	case insp.HasHeaderImage:
		return "patched"
	case insp.HasMarker:
		return "unpatched"
	case insp.HasSidebar:
		return "sidebar-without-marker"
	default:
		return "no-sidebar"
	}
}
