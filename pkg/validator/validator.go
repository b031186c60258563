package validator

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/validity"
)

// Validator checks one field at a time and renders the outcome into the
// field's classes and error slot.
type Validator struct {
	source   validity.Source
	messages Messages
	logger   *zap.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithSource overrides the validity source.
func WithSource(source validity.Source) Option {
	return func(v *Validator) {
		if source != nil {
			v.source = source
		}
	}
}

// WithMessages overrides the canned messages. Empty entries keep defaults.
func WithMessages(messages Messages) Option {
	return func(v *Validator) {
		defaults := v.messages
		if messages.Required == "" {
			messages.Required = defaults.Required
		}
		if messages.TypeMismatch == "" {
			messages.TypeMismatch = defaults.TypeMismatch
		}
		if messages.TooShort == "" {
			messages.TooShort = defaults.TooShort
		}
		if messages.TooLong == "" {
			messages.TooLong = defaults.TooLong
		}
		if messages.PatternMismatch == "" {
			messages.PatternMismatch = defaults.PatternMismatch
		}
		if messages.Other == "" {
			messages.Other = defaults.Other
		}
		v.messages = messages
	}
}

// WithLogger attaches a logger for verdict tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// New constructs a Validator backed by validity.Constraints.
func New(options ...Option) *Validator {
	v := &Validator{
		source:   validity.NewConstraints(),
		messages: DefaultMessages(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Validate resets the field's UI state, applies the required-but-empty check
// or the custom rule, resolves the verdict through the source and renders it.
// It reports whether the field is valid. A nil input or slot yields false.
func (v *Validator) Validate(input *dom.Input, slot *dom.Slot, rule rules.Rule) bool {
	if input == nil || slot == nil {
		return false
	}

	slot.SetText("")
	input.Classes.Remove(dom.ClassValid, dom.ClassInvalid)

	if input.Required() && strings.TrimSpace(input.Value()) == "" {
		input.SetCustomValidity(validity.Force(validity.Missing, v.messages.Required))
	} else {
		input.SetCustomValidity(validity.Override{})
		if rule != nil {
			if override, forced := rule(input.Value()); forced {
				input.SetCustomValidity(override)
			}
		}
	}

	state := v.source.Check(input)
	if !state.Valid() {
		message := v.messages.For(state)
		slot.SetText(message)
		input.Classes.Add(dom.ClassInvalid)
		v.logger.Debug("field invalid",
			zap.String("field", input.ID()),
			zap.Stringer("verdict", state.Verdict()),
			zap.String("message", message),
		)
		return false
	}

	input.Classes.Add(dom.ClassValid)
	v.logger.Debug("field valid", zap.String("field", input.ID()))
	return true
}
