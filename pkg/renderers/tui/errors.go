package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrDeclined is returned when the user chose not to submit.
	ErrDeclined = errors.New("tui: submission declined")
	// ErrAttemptsExhausted is returned when the form is still invalid after
	// the configured number of submit rounds.
	ErrAttemptsExhausted = errors.New("tui: form still invalid after retries")
)
