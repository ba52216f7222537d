// Package goquery provides HTML inspection for documentation pages.
// It backs the read-only scan and verify commands; the patch operation
// itself is a literal substring substitution and never parses HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/serenity-rs/docpatch"
)

// Ensure Detector implements docpatch.GeneratorDetector at compile time.
var _ docpatch.GeneratorDetector = (*Detector)(nil)

// Detector identifies documentation generators from HTML content.
// It checks meta generator tags first, then generator-specific CSS
// classes and structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified generator.
// Returns GeneratorUnknown if the generator cannot be determined.
func (d *Detector) Detect(html string) docpatch.Generator {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docpatch.GeneratorUnknown
	}

	// Meta generator tags are the most reliable signal when present.
	if generator := d.detectFromMetaGenerator(doc); generator != docpatch.GeneratorUnknown {
		return generator
	}

	// Rustdoc markers. nav.sidebar plus rustdoc-specific containers.
	if d.hasSelector(doc, "nav.sidebar") &&
		(d.hasSelector(doc, ".rustdoc") || d.hasSelector(doc, "#rustdoc_body_wrapper") || d.hasSelector(doc, ".docblock")) {
		return docpatch.GeneratorRustdoc
	}

	// mdBook markers.
	if d.hasSelector(doc, "#sidebar .chapter") ||
		d.hasSelector(doc, ".sidebar-scrollbox") ||
		d.hasSelector(doc, "#mdbook-help-container") {
		return docpatch.GeneratorMdBook
	}

	// Sphinx markers (including the ReadTheDocs theme).
	if d.hasSelector(doc, ".toctree-wrapper") ||
		d.hasSelector(doc, ".wy-nav-side") ||
		d.hasSelector(doc, ".sphinxsidebar") {
		return docpatch.GeneratorSphinx
	}

	// MkDocs Material markers.
	if d.hasSelector(doc, "[data-md-color-scheme]") ||
		d.hasSelector(doc, "[data-md-component]") ||
		d.hasSelector(doc, ".md-nav--primary") {
		return docpatch.GeneratorMkDocs
	}

	// Docusaurus markers.
	if d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") {
		return docpatch.GeneratorDocusaurus
	}

	// A bare nav.sidebar without other markers is still most likely
	// rustdoc output, which carries no meta generator tag.
	if d.hasSelector(doc, "nav.sidebar") {
		return docpatch.GeneratorRustdoc
	}

	return docpatch.GeneratorUnknown
}

// detectFromMetaGenerator checks the meta generator tag.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) docpatch.Generator {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return docpatch.GeneratorUnknown
	}

	switch {
	case strings.Contains(generator, "rustdoc"):
		return docpatch.GeneratorRustdoc
	case strings.Contains(generator, "mdbook"):
		return docpatch.GeneratorMdBook
	case strings.Contains(generator, "sphinx"):
		return docpatch.GeneratorSphinx
	case strings.Contains(generator, "mkdocs"):
		return docpatch.GeneratorMkDocs
	case strings.Contains(generator, "docusaurus"):
		return docpatch.GeneratorDocusaurus
	}

	return docpatch.GeneratorUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
