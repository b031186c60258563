// Package vanilla renders an HTML snapshot of a form document using pongo2
// templates, with state colours resolved from a go-theme manifest.
package vanilla
