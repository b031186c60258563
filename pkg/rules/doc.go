// Package rules holds the canonical signup rule table: which error slot each
// field reports into and which custom rule runs on top of the built-in
// constraints. Rules are bound to a Lookup so cross-field checks read sibling
// values without global state. Tables can also be loaded from YAML files.
package rules
