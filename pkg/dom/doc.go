// Package dom models the slice of a page the signup validator touches: one
// form, its inputs with their constraint attributes and custom validity, the
// error slots bound to them, and synchronous event dispatch. Documents are
// built from a model.FormModel and passed explicitly to the validator and
// orchestrator.
package dom
