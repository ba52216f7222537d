// Package docpatch post-processes generated HTML documentation trees,
// injecting a header image into the sidebar navigation markup of each
// page. It finds pages with a recursive glob, performs a literal
// first-occurrence substring substitution, and rewrites a file only
// when the substitution changed its content.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., fs/,
// sqlite/, goquery/).
package docpatch
