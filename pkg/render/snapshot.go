package render

import (
	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// FieldView is the template-friendly state of one form group.
type FieldView struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Type         string   `json:"type"`
	Value        string   `json:"value"`
	Required     bool     `json:"required"`
	MinLength    int      `json:"minLength,omitempty"`
	MaxLength    int      `json:"maxLength,omitempty"`
	Pattern      string   `json:"pattern,omitempty"`
	State        string   `json:"state"`
	Classes      []string `json:"classes"`
	SlotID       string   `json:"slotId"`
	SlotClasses  []string `json:"slotClasses"`
	GroupClasses []string `json:"groupClasses"`
	Message      string   `json:"message"`
}

// FormView is the template-friendly state of a document.
type FormView struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Valid  bool        `json:"valid"`
	Fields []FieldView `json:"fields"`
}

// Snapshot captures the document as it currently stands. Password values are
// never copied into the view. Valid is true only when every field carries
// the valid class.
func Snapshot(doc *dom.Document) FormView {
	if doc == nil {
		return FormView{}
	}
	view := FormView{
		ID:    doc.Form().ID(),
		Title: doc.Form().Title(),
		Valid: true,
	}
	for _, group := range doc.Groups() {
		input := group.Input
		field := FieldView{
			ID:           input.ID(),
			Label:        input.Label(),
			Placeholder:  input.Placeholder(),
			Type:         string(input.Type()),
			Value:        input.Value(),
			Required:     input.Required(),
			Pattern:      input.PatternSource(),
			State:        string(input.State()),
			Classes:      input.Classes.Values(),
			SlotID:       group.Slot.ID(),
			SlotClasses:  group.Slot.Classes.Values(),
			GroupClasses: group.Classes.Values(),
			Message:      group.Slot.Text(),
		}
		if n, ok := input.MinLength(); ok {
			field.MinLength = n
		}
		if n, ok := input.MaxLength(); ok {
			field.MaxLength = n
		}
		if input.Type() == model.InputTypePassword {
			field.Value = ""
		}
		if input.State() != dom.StateValid {
			view.Valid = false
		}
		view.Fields = append(view.Fields, field)
	}
	return view
}
