package mock

import "github.com/serenity-rs/docpatch"

var _ docpatch.PageInspector = (*PageInspector)(nil)

// PageInspector is a mock implementation of docpatch.PageInspector.
type PageInspector struct {
	InspectFn func(html string, patch docpatch.Patch) (*docpatch.Inspection, error)
}

func (i *PageInspector) Inspect(html string, patch docpatch.Patch) (*docpatch.Inspection, error) {
	return i.InspectFn(html, patch)
}

var _ docpatch.GeneratorDetector = (*GeneratorDetector)(nil)

// GeneratorDetector is a mock implementation of docpatch.GeneratorDetector.
type GeneratorDetector struct {
	DetectFn func(html string) docpatch.Generator
}

func (d *GeneratorDetector) Detect(html string) docpatch.Generator {
	return d.DetectFn(html)
}
