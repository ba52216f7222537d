package docpatch

import "strings"

// Default patch constants. Running the tool with no arguments patches the
// rustdoc output tree of the serenity library with these values.
const (
	// DefaultPattern matches every generated documentation page.
	DefaultPattern = "target/doc/serenity/**/*.html"

	// DefaultMarker locates the insertion point: the opening tag of the
	// rustdoc sidebar nav, including its trailing newline.
	DefaultMarker = "<nav class=\"sidebar\">\n"

	// DefaultImageURL is the documentation header image.
	DefaultImageURL = "https://docs.austinhellyer.me/serenity.rs/docs_header.png"
)

// DefaultPatch returns the header-image patch applied by a bare run.
func DefaultPatch() Patch {
	return Patch{
		Marker:   DefaultMarker,
		Fragment: `<img src="` + DefaultImageURL + `">`,
	}
}

// Patch describes a literal substring injection. Fragment is inserted at
// the first occurrence of Marker, before the marker's trailing newline
// when it has one.
type Patch struct {
	Marker   string
	Fragment string
}

// Validate returns an error if the patch contains invalid fields.
func (p Patch) Validate() error {
	if p.Marker == "" {
		return Errorf(EINVALID, "patch marker required")
	}
	if p.Fragment == "" {
		return Errorf(EINVALID, "patch fragment required")
	}
	return nil
}

// Apply returns content with Fragment injected at the first occurrence of
// Marker, and whether the content changed. Only the first occurrence is
// modified; content without the marker is returned unchanged. A page that
// already carries the fragment no longer contains the literal marker, so
// reapplying is a no-op.
func (p Patch) Apply(content string) (string, bool) {
	idx := strings.Index(content, p.Marker)
	if idx == -1 {
		return content, false
	}

	insertAt := idx + len(p.Marker)
	if strings.HasSuffix(p.Marker, "\n") {
		insertAt--
	}

	return content[:insertAt] + p.Fragment + content[insertAt:], true
}
