package orchestrator

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/notify"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

const (
	DefaultFailureMessage = "Please fix the errors before submitting."
	DefaultSuccessMessage = "Form submitted successfully!"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithValidator injects the field validator.
func WithValidator(v *validator.Validator) Option {
	return func(o *Orchestrator) {
		if v != nil {
			o.validator = v
		}
	}
}

// WithNotifier sets where submit notices go.
func WithNotifier(n notify.Notifier) Option {
	return func(o *Orchestrator) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithNoticeMessages overrides the success and failure notice text.
func WithNoticeMessages(success, failure string) Option {
	return func(o *Orchestrator) {
		if success != "" {
			o.successMessage = success
		}
		if failure != "" {
			o.failureMessage = failure
		}
	}
}

// WithResetClasses overrides the group and slot classes the reset pass
// selects by.
func WithResetClasses(groupClass, slotClass string) Option {
	return func(o *Orchestrator) {
		if groupClass != "" {
			o.groupClass = groupClass
		}
		if slotClass != "" {
			o.slotClass = slotClass
		}
	}
}
