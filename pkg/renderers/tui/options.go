package tui

import "go.uber.org/zap"

// Theme captures the prefixes the session puts in front of messages.
type Theme struct {
	ErrorPrefix   string
	SuccessPrefix string
	FailurePrefix string
}

// DefaultTheme returns plain ASCII prefixes.
func DefaultTheme() Theme {
	return Theme{
		ErrorPrefix:   "  ! ",
		SuccessPrefix: "[ok] ",
		FailurePrefix: "[error] ",
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithMaxRounds caps how many times the session re-prompts invalid fields
// after a failed submit.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

// WithConfirmSubmit asks for confirmation before each submit.
func WithConfirmSubmit(enabled bool) Option {
	return func(s *Session) {
		s.confirmSubmit = enabled
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
