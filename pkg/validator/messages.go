package validator

import (
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/validity"
)

// Messages holds the canned text shown for each built-in verdict. TooShort
// and TooLong are format strings receiving the declared bound.
type Messages struct {
	Required        string
	TypeMismatch    string
	TooShort        string
	TooLong         string
	PatternMismatch string
	Other           string
}

// DefaultMessages returns the English messages.
func DefaultMessages() Messages {
	return Messages{
		Required:        "This field is required",
		TypeMismatch:    "Please enter a valid value",
		TooShort:        "Minimum length is %d characters",
		TooLong:         "Maximum length is %d characters",
		PatternMismatch: "Please match the requested format",
		Other:           "Please enter a valid value",
	}
}

// For selects the message for a failing state. A verdict forced by the
// override reports the override's own message when it has one.
func (m Messages) For(state validity.State) string {
	verdict := state.Verdict()
	if state.FromOverride(verdict) && state.Override.Message != "" {
		return state.Override.Message
	}

	switch verdict {
	case validity.Valid:
		return ""
	case validity.Missing:
		return m.Required
	case validity.TypeMismatch:
		return m.TypeMismatch
	case validity.TooShort:
		return fmt.Sprintf(m.TooShort, state.MinLength)
	case validity.TooLong:
		return fmt.Sprintf(m.TooLong, state.MaxLength)
	case validity.PatternMismatch:
		return m.PatternMismatch
	default:
		if state.Override.Message != "" {
			return state.Override.Message
		}
		return m.Other
	}
}
