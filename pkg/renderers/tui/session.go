package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/orchestrator"
)

const defaultMaxRounds = 3

// Session fills a form from the terminal. Every answer is dispatched as an
// input event so the field's message shows up right after the prompt, and
// the form is submitted once every field has been answered.
type Session struct {
	orch          *orchestrator.Orchestrator
	driver        PromptDriver
	theme         Theme
	maxRounds     int
	confirmSubmit bool
	logger        *zap.Logger
}

// New constructs a Session for orch.
func New(orch *orchestrator.Orchestrator, options ...Option) (*Session, error) {
	if orch == nil {
		return nil, errors.New("tui: orchestrator is required")
	}
	s := &Session{
		orch:      orch,
		theme:     DefaultTheme(),
		maxRounds: defaultMaxRounds,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run prompts for every field, submits, and re-prompts the fields that failed
// until the submit succeeds or the rounds run out.
func (s *Session) Run(ctx context.Context) (orchestrator.SubmitResult, error) {
	fields := s.orch.Fields()
	for round := 1; round <= s.maxRounds; round++ {
		for _, field := range fields {
			if err := s.promptField(ctx, field); err != nil {
				return orchestrator.SubmitResult{}, err
			}
		}

		if s.confirmSubmit {
			ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Submit the form?", Default: true})
			if err != nil {
				return orchestrator.SubmitResult{}, err
			}
			if !ok {
				return orchestrator.SubmitResult{}, ErrDeclined
			}
		}

		result, err := s.orch.Submit(ctx)
		if err != nil {
			return result, err
		}
		if result.Valid {
			return result, nil
		}
		s.logger.Debug("submit rejected", zap.Int("round", round), zap.Any("fields", result.Fields))

		fields = fields[:0:0]
		for _, field := range s.orch.Fields() {
			if !result.Fields[field] {
				fields = append(fields, field)
			}
		}
		if round == s.maxRounds {
			return result, ErrAttemptsExhausted
		}
	}
	return orchestrator.SubmitResult{}, ErrAttemptsExhausted
}

// promptField asks for a value until the field validates or the user has
// been shown its message once per round.
func (s *Session) promptField(ctx context.Context, field string) error {
	input, ok := s.orch.Document().Input(field)
	if !ok {
		return fmt.Errorf("tui: field %q: %w", field, dom.ErrElementNotFound)
	}

	for attempt := 0; attempt < s.maxRounds; attempt++ {
		value, err := s.ask(ctx, input)
		if err != nil {
			return err
		}
		if err := s.orch.Input(field, value); err != nil {
			return err
		}
		if input.State() != dom.StateInvalid {
			return nil
		}
		if err := s.driver.Info(ctx, s.theme.ErrorPrefix+s.message(input)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) ask(ctx context.Context, input *dom.Input) (string, error) {
	cfg := InputConfig{
		Message: promptLabel(input),
		Help:    constraintHelp(input),
	}
	if input.Type() == model.InputTypePassword {
		return s.driver.Password(ctx, cfg)
	}
	cfg.Default = input.Value()
	return s.driver.Input(ctx, cfg)
}

func (s *Session) message(input *dom.Input) string {
	for _, group := range s.orch.Document().Groups() {
		if group.Input == input {
			return group.Slot.Text()
		}
	}
	return ""
}

func promptLabel(input *dom.Input) string {
	label := input.Label()
	if label == "" {
		label = input.ID()
	}
	if input.Required() {
		label += " *"
	}
	return label
}

func constraintHelp(input *dom.Input) string {
	var parts []string
	if n, ok := input.MinLength(); ok {
		parts = append(parts, fmt.Sprintf("at least %d characters", n))
	}
	if n, ok := input.MaxLength(); ok {
		parts = append(parts, fmt.Sprintf("at most %d characters", n))
	}
	if p := input.Placeholder(); p != "" {
		parts = append(parts, p)
	}
	return strings.Join(parts, "; ")
}
