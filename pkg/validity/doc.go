// Package validity abstracts the constraint-validation facility a field is
// checked against. A Source reports a State (the set of failing categories
// plus any forced Override) and State.Verdict resolves the single category a
// message is chosen for. Constraints is the default Source; tests substitute
// a SourceFunc.
package validity
