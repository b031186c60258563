// Package pongo adapts a pongo2 template set to the template.TemplateRenderer
// interface. Data passed to templates is normalised through JSON so struct
// values are addressed by their json field names.
package pongo
