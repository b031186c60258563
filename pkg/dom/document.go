package dom

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// ErrElementNotFound is returned when an id does not resolve to an element.
var ErrElementNotFound = errors.New("dom: element not found")

// Document holds the form, its inputs and error slots, and the listeners
// bound to them. It is the single context object validators and the
// orchestrator share; nothing is looked up globally.
type Document struct {
	form      *Form
	groups    []*Group
	inputs    map[string]*Input
	slots     map[string]*Slot
	listeners map[listenerKey][]Handler
}

// FromModel builds a document from a form description. Invalid pattern or
// length constraints are ignored, matching how browsers treat malformed
// attributes.
func FromModel(form model.FormModel) (*Document, error) {
	id := strings.TrimSpace(form.ID)
	if id == "" {
		return nil, errors.New("dom: form id is required")
	}

	doc := &Document{
		inputs:    make(map[string]*Input, len(form.Fields)),
		slots:     make(map[string]*Slot, len(form.Fields)),
		listeners: make(map[listenerKey][]Handler),
	}
	doc.form = &Form{id: id, title: form.Title, doc: doc}

	for _, field := range form.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, errors.New("dom: field name is required")
		}
		if name == id {
			return nil, fmt.Errorf("dom: field %q collides with the form id", name)
		}
		if _, exists := doc.inputs[name]; exists {
			return nil, fmt.Errorf("dom: duplicate field %q", name)
		}
		slotID := strings.TrimSpace(field.ErrorSlot)
		if slotID == "" {
			return nil, fmt.Errorf("dom: field %q has no error slot", name)
		}
		if _, exists := doc.slots[slotID]; exists {
			return nil, fmt.Errorf("dom: duplicate error slot %q", slotID)
		}

		input := newInput(field)
		slot := &Slot{id: slotID}
		if form.SlotClass != "" {
			slot.Classes.Add(form.SlotClass)
		}
		group := &Group{Input: input, Slot: slot}
		if form.GroupClass != "" {
			group.Classes.Add(form.GroupClass)
		}

		doc.inputs[name] = input
		doc.slots[slotID] = slot
		doc.groups = append(doc.groups, group)
	}

	return doc, nil
}

func newInput(field model.Field) *Input {
	kind := field.Type
	if kind == "" {
		kind = model.InputTypeText
	}
	input := &Input{
		id:          strings.TrimSpace(field.Name),
		label:       field.Label,
		placeholder: field.Placeholder,
		inputType:   kind,
		required:    field.Required,
		minLength:   -1,
		maxLength:   -1,
	}
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleMinLength:
			if n, ok := parseLength(rule.Params["value"]); ok {
				input.minLength = n
			}
		case model.ValidationRuleMaxLength:
			if n, ok := parseLength(rule.Params["value"]); ok {
				input.maxLength = n
			}
		case model.ValidationRulePattern:
			expr := rule.Params["pattern"]
			if expr == "" {
				continue
			}
			// pattern attributes must match the whole value
			if re, err := regexp.Compile("^(?:" + expr + ")$"); err == nil {
				input.pattern = re
				input.patternRaw = expr
			}
		}
	}
	return input
}

func parseLength(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Form returns the form element.
func (d *Document) Form() *Form {
	return d.form
}

// Groups returns the form groups in declaration order.
func (d *Document) Groups() []*Group {
	return append([]*Group(nil), d.groups...)
}

// Input resolves an input by id.
func (d *Document) Input(id string) (*Input, bool) {
	input, ok := d.inputs[id]
	return input, ok
}

// Slot resolves an error slot by id.
func (d *Document) Slot(id string) (*Slot, bool) {
	slot, ok := d.slots[id]
	return slot, ok
}

// Value returns the current value of the input with the given id, or "".
func (d *Document) Value(id string) string {
	if input, ok := d.inputs[id]; ok {
		return input.Value()
	}
	return ""
}

// InputsInGroups returns every input inside a group carrying class.
func (d *Document) InputsInGroups(class string) []*Input {
	var out []*Input
	for _, group := range d.groups {
		if group.Classes.Contains(class) {
			out = append(out, group.Input)
		}
	}
	return out
}

// SlotsByClass returns every slot carrying class.
func (d *Document) SlotsByClass(class string) []*Slot {
	var out []*Slot
	for _, group := range d.groups {
		if group.Slot.Classes.Contains(class) {
			out = append(out, group.Slot)
		}
	}
	return out
}

func (d *Document) hasElement(id string) bool {
	if d.form != nil && d.form.id == id {
		return true
	}
	if _, ok := d.inputs[id]; ok {
		return true
	}
	_, ok := d.slots[id]
	return ok
}

// AddEventListener registers handler for events of typ targeting id.
func (d *Document) AddEventListener(id string, typ EventType, handler Handler) error {
	if handler == nil {
		return errors.New("dom: handler is nil")
	}
	if !d.hasElement(id) {
		return fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	key := listenerKey{target: id, typ: typ}
	d.listeners[key] = append(d.listeners[key], handler)
	return nil
}

// Dispatch runs the listeners for the event synchronously in registration
// order and reports whether the default action is still allowed.
func (d *Document) Dispatch(event *Event) bool {
	if event == nil {
		return false
	}
	for _, handler := range d.listeners[listenerKey{target: event.Target, typ: event.Type}] {
		handler(event)
	}
	return !event.DefaultPrevented()
}
