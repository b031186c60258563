// Package model defines the declarative form description a document is built
// from. Fields carry the element id, the id of the error slot bound to them,
// the input type and the built-in constraints (required, minLength/maxLength,
// pattern) encoded as string parameters so descriptions round-trip through
// YAML and JSON unchanged. SignupForm returns the canonical signup layout:
// form `signupForm`, inputs `username`, `email`, `password`,
// `confirm-password`, their `*Error` slots, and the `form-group-signup` /
// `error-message-signup` classes used by the bulk reset pass.
package model
