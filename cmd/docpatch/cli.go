package main

import (
	"context"
	"io"

	"github.com/serenity-rs/docpatch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Patcher   docpatch.Patcher
	Runs      docpatch.RunService
	Inspector docpatch.PageInspector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Patch   PatchCmd   `cmd:"" default:"withargs" help:"Inject the header image into sidebar navs"`
	Scan    ScanCmd    `cmd:"" help:"List documentation pages and their sidebar state"`
	Verify  VerifyCmd  `cmd:"" help:"Fail if any page still contains the unpatched marker"`
	History HistoryCmd `cmd:"" help:"List recorded runs"`
}

// PatchCmd is the "patch" subcommand.
type PatchCmd struct {
	Pattern     string `arg:"" optional:"" default:"target/doc/serenity/**/*.html" help:"Recursive glob for documentation pages"`
	DryRun      bool   `short:"n" help:"Report what would change without writing"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent file limit"`
	Quiet       bool   `short:"q" help:"Suppress per-file output"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Pattern string `arg:"" optional:"" default:"target/doc/serenity/**/*.html" help:"Recursive glob for documentation pages"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	Pattern string `arg:"" optional:"" default:"target/doc/serenity/**/*.html" help:"Recursive glob for documentation pages"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `default:"20" help:"Maximum number of runs to show"`
}
