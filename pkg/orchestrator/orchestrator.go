package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/notify"
	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

var (
	errDocumentMissing = errors.New("orchestrator: document is required")
	errEmptyTable      = errors.New("orchestrator: rule table has no entries")
)

// binding ties a rule table entry to the elements it drives.
type binding struct {
	entry rules.Entry
	input *dom.Input
	slot  *dom.Slot
	rule  rules.Rule
}

// SubmitResult captures the outcome of a submit event.
type SubmitResult struct {
	Valid     bool
	Prevented bool
	// Fields holds each field's verdict and Messages the text its slot showed
	// before any reset ran.
	Fields   map[string]bool
	Messages map[string]string
}

// Orchestrator wires input and submit events on a document to the field
// validator according to a rule table.
type Orchestrator struct {
	doc       *dom.Document
	validator *validator.Validator
	notifier  notify.Notifier
	logger    *zap.Logger

	bindings []*binding
	byField  map[string]*binding

	groupClass     string
	slotClass      string
	successMessage string
	failureMessage string

	last    SubmitResult
	lastErr error
}

// New binds every table entry to its input and slot in doc and registers the
// input and submit listeners. Missing elements are reported as errors.
func New(doc *dom.Document, table rules.Table, options ...Option) (*Orchestrator, error) {
	if doc == nil {
		return nil, errDocumentMissing
	}
	if len(table.Entries) == 0 {
		return nil, errEmptyTable
	}

	o := &Orchestrator{
		doc:            doc,
		validator:      validator.New(),
		logger:         zap.NewNop(),
		byField:        make(map[string]*binding, len(table.Entries)),
		groupClass:     model.SignupGroupClass,
		slotClass:      model.SignupSlotClass,
		successMessage: DefaultSuccessMessage,
		failureMessage: DefaultFailureMessage,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.notifier == nil {
		o.notifier = notify.NewLogger(o.logger)
	}

	for _, entry := range table.Entries {
		input, ok := doc.Input(entry.Field)
		if !ok {
			return nil, fmt.Errorf("orchestrator: field %q: %w", entry.Field, dom.ErrElementNotFound)
		}
		slot, ok := doc.Slot(entry.Slot)
		if !ok {
			return nil, fmt.Errorf("orchestrator: slot %q: %w", entry.Slot, dom.ErrElementNotFound)
		}
		if _, dup := o.byField[entry.Field]; dup {
			return nil, fmt.Errorf("orchestrator: duplicate rule table entry for %q", entry.Field)
		}
		b := &binding{entry: entry, input: input, slot: slot}
		if entry.Rule != nil {
			b.rule = entry.Rule(doc)
		}
		o.bindings = append(o.bindings, b)
		o.byField[entry.Field] = b
	}

	// Own listeners first so a field is always checked before its dependents.
	for _, b := range o.bindings {
		b := b
		if err := doc.AddEventListener(b.entry.Field, dom.EventInput, func(*dom.Event) {
			o.validate(b)
		}); err != nil {
			return nil, fmt.Errorf("orchestrator: bind %q: %w", b.entry.Field, err)
		}
	}
	for _, b := range o.bindings {
		b := b
		target := b.entry.DependsOn
		if target == "" {
			continue
		}
		if _, ok := doc.Input(target); !ok {
			return nil, fmt.Errorf("orchestrator: %q depends on %q: %w", b.entry.Field, target, dom.ErrElementNotFound)
		}
		if err := doc.AddEventListener(target, dom.EventInput, func(*dom.Event) {
			if b.input.Value() != "" {
				o.validate(b)
			}
		}); err != nil {
			return nil, fmt.Errorf("orchestrator: bind %q: %w", target, err)
		}
	}

	if err := doc.AddEventListener(doc.Form().ID(), dom.EventSubmit, o.handleSubmit); err != nil {
		return nil, fmt.Errorf("orchestrator: bind submit: %w", err)
	}

	return o, nil
}

// Document returns the bound document.
func (o *Orchestrator) Document() *dom.Document {
	return o.doc
}

// Fields returns the bound field ids in table order.
func (o *Orchestrator) Fields() []string {
	out := make([]string, 0, len(o.bindings))
	for _, b := range o.bindings {
		out = append(out, b.entry.Field)
	}
	return out
}

// Input sets the field value and dispatches an input event for it.
func (o *Orchestrator) Input(field, value string) error {
	input, ok := o.doc.Input(field)
	if !ok {
		return fmt.Errorf("orchestrator: field %q: %w", field, dom.ErrElementNotFound)
	}
	input.SetValue(value)
	o.doc.Dispatch(dom.NewEvent(context.Background(), dom.EventInput, field))
	return nil
}

// ValidateField runs the validator for a single field.
func (o *Orchestrator) ValidateField(field string) (bool, error) {
	b, ok := o.byField[field]
	if !ok {
		return false, fmt.Errorf("orchestrator: field %q: %w", field, dom.ErrElementNotFound)
	}
	return o.validate(b), nil
}

// ValidateAll runs every validator without short-circuiting and reports
// whether all passed.
func (o *Orchestrator) ValidateAll() (bool, map[string]bool) {
	results := make(map[string]bool, len(o.bindings))
	valid := true
	for _, b := range o.bindings {
		ok := o.validate(b)
		results[b.entry.Field] = ok
		valid = valid && ok
	}
	return valid, results
}

// Submit dispatches a submit event on the form and returns its outcome.
// The returned error comes from the notifier.
func (o *Orchestrator) Submit(ctx context.Context) (SubmitResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o.last, o.lastErr = SubmitResult{}, nil

	event := dom.NewEvent(ctx, dom.EventSubmit, o.doc.Form().ID())
	o.doc.Dispatch(event)

	result := o.last
	result.Prevented = event.DefaultPrevented()
	return result, o.lastErr
}

// Reset clears every value, every valid/invalid class on inputs inside the
// reset groups, and every slot carrying the slot class. Inputs return to the
// pristine state.
func (o *Orchestrator) Reset() {
	o.doc.Form().Reset()
	for _, input := range o.doc.InputsInGroups(o.groupClass) {
		input.Classes.Remove(dom.ClassValid, dom.ClassInvalid)
	}
	for _, slot := range o.doc.SlotsByClass(o.slotClass) {
		slot.SetText("")
	}
}

func (o *Orchestrator) validate(b *binding) bool {
	return o.validator.Validate(b.input, b.slot, b.rule)
}

func (o *Orchestrator) handleSubmit(event *dom.Event) {
	valid, fields := o.ValidateAll()
	messages := make(map[string]string, len(o.bindings))
	for _, b := range o.bindings {
		messages[b.entry.Field] = b.slot.Text()
	}
	o.last = SubmitResult{Valid: valid, Fields: fields, Messages: messages}

	// Submission never leaves the page; success is reported and the form reset.
	event.PreventDefault()

	if !valid {
		o.logger.Info("submit blocked", zap.Any("fields", fields))
		o.lastErr = o.notify(event.Context(), notify.Notice{Kind: notify.KindFailure, Message: o.failureMessage})
		return
	}

	o.logger.Info("submit accepted")
	o.lastErr = o.notify(event.Context(), notify.Notice{Kind: notify.KindSuccess, Message: o.successMessage})
	o.Reset()
}

func (o *Orchestrator) notify(ctx context.Context, notice notify.Notice) error {
	if err := o.notifier.Notify(ctx, notice); err != nil {
		return fmt.Errorf("orchestrator: notify: %w", err)
	}
	return nil
}
