// Package validator implements the per-field check: clear the previous
// message and classes, force a missing verdict for required-but-blank values
// or run the field's custom rule, ask the validity source for the final
// state, then write the highest priority message and the valid/invalid
// class.
package validator
