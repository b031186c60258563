// Package orchestrator binds a rule table to a document. Each field's input
// event runs its validator; fields with a match rule are re-checked when the
// field they mirror changes and they are non-empty. The submit event runs
// every validator, always cancels the default action, notifies the outcome
// and, on success, resets values, classes and error slots.
package orchestrator
