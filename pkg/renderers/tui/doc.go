// Package tui drives a form document from the terminal using survey prompts.
package tui
