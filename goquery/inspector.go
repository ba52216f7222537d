package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/serenity-rs/docpatch"
)

// Ensure Inspector implements docpatch.PageInspector at compile time.
var _ docpatch.PageInspector = (*Inspector)(nil)

// Inspector reports the sidebar state of a documentation page.
// Structural checks (sidebar presence, generator) use parsed HTML;
// marker and fragment checks stay literal to match what the patch
// operation would actually do.
type Inspector struct {
	detector docpatch.GeneratorDetector
}

// NewInspector creates a new Inspector using the given detector.
func NewInspector(detector docpatch.GeneratorDetector) *Inspector {
	return &Inspector{detector: detector}
}

// Inspect analyzes a page and returns its sidebar state relative to patch.
func (i *Inspector) Inspect(html string, patch docpatch.Patch) (*docpatch.Inspection, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docpatch.Errorf(docpatch.EINVALID, "failed to parse HTML: %v", err)
	}

	return &docpatch.Inspection{
		Generator:      i.detector.Detect(html),
		HasSidebar:     doc.Find("nav.sidebar").Length() > 0,
		HasMarker:      strings.Contains(html, patch.Marker),
		HasHeaderImage: strings.Contains(html, patch.Fragment),
	}, nil
}
