// Package text renders a plain-text validation report for a form document.
package text
