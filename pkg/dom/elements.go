package dom

import (
	"regexp"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/validity"
)

const (
	ClassValid   = "valid"
	ClassInvalid = "invalid"
)

// FieldState is the per-field UI state derived from the style classes.
type FieldState string

const (
	StatePristine FieldState = "pristine"
	StateValid    FieldState = "valid"
	StateInvalid  FieldState = "invalid"
)

// Input is an input element with its constraints and custom validity.
type Input struct {
	id          string
	label       string
	placeholder string
	inputType   model.InputType
	required    bool
	minLength   int
	maxLength   int
	pattern     *regexp.Regexp
	patternRaw  string

	value    string
	override validity.Override
	Classes  ClassList
}

var _ validity.Target = (*Input)(nil)

func (i *Input) ID() string { return i.id }
func (i *Input) Label() string { return i.label }
func (i *Input) Placeholder() string { return i.placeholder }
func (i *Input) Value() string { return i.value }
func (i *Input) Required() bool { return i.required }
func (i *Input) Type() model.InputType { return i.inputType }
func (i *Input) Pattern() *regexp.Regexp { return i.pattern }
func (i *Input) PatternSource() string { return i.patternRaw }
func (i *Input) CustomValidity() validity.Override {
	return i.override
}

// MinLength returns the declared minimum length, if any.
func (i *Input) MinLength() (int, bool) {
	return i.minLength, i.minLength >= 0
}

// MaxLength returns the declared maximum length, if any.
func (i *Input) MaxLength() (int, bool) {
	return i.maxLength, i.maxLength >= 0
}

// SetValue replaces the current value. It does not dispatch an event.
func (i *Input) SetValue(value string) {
	i.value = value
}

// SetCustomValidity installs or clears (zero value) the override.
func (i *Input) SetCustomValidity(override validity.Override) {
	i.override = override
}

// State derives the field state from the style classes.
func (i *Input) State() FieldState {
	switch {
	case i.Classes.Contains(ClassInvalid):
		return StateInvalid
	case i.Classes.Contains(ClassValid):
		return StateValid
	default:
		return StatePristine
	}
}

// Slot is the error display bound to an input.
type Slot struct {
	id      string
	text    string
	Classes ClassList
}

func (s *Slot) ID() string { return s.id }
func (s *Slot) Text() string { return s.text }

// SetText replaces the slot text.
func (s *Slot) SetText(text string) {
	s.text = text
}

// Group wraps one input and its slot, the way a form-group container does.
type Group struct {
	Classes ClassList
	Input   *Input
	Slot    *Slot
}

// Form is the form element. Reset restores every input to its empty value
// but, like a browser form reset, leaves classes, slot text and custom
// validity untouched.
type Form struct {
	id    string
	title string
	doc   *Document
}

func (f *Form) ID() string { return f.id }
func (f *Form) Title() string { return f.title }

// Reset clears all input values.
func (f *Form) Reset() {
	if f == nil || f.doc == nil {
		return
	}
	for _, group := range f.doc.groups {
		group.Input.SetValue("")
	}
}
