package docpatch

// Generator identifies a documentation generator.
type Generator string

// Supported documentation generators.
const (
	GeneratorUnknown    Generator = ""
	GeneratorRustdoc    Generator = "rustdoc"
	GeneratorMdBook     Generator = "mdbook"
	GeneratorSphinx     Generator = "sphinx"
	GeneratorMkDocs     Generator = "mkdocs"
	GeneratorDocusaurus Generator = "docusaurus"
)

// GeneratorDetector identifies documentation generators from HTML.
type GeneratorDetector interface {
	// Detect analyzes HTML and returns the identified generator.
	// Returns GeneratorUnknown if the generator cannot be determined.
	Detect(html string) Generator
}

// Inspection describes the sidebar state of a documentation page.
type Inspection struct {
	Generator Generator

	// HasSidebar reports whether the page contains a sidebar nav
	// element, regardless of exact markup.
	HasSidebar bool

	// HasMarker reports whether the literal unpatched marker is
	// present, i.e. the page is still patchable.
	HasMarker bool

	// HasHeaderImage reports whether the page already carries the
	// injected fragment.
	HasHeaderImage bool
}

// PageInspector reports the sidebar state of a documentation page.
// Used by read-only commands; the patch itself never parses HTML.
type PageInspector interface {
	Inspect(html string, patch Patch) (*Inspection, error)
}
