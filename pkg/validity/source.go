package validity

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// Target is the view of a field a Source evaluates.
type Target interface {
	Value() string
	Required() bool
	Type() model.InputType
	MinLength() (int, bool)
	MaxLength() (int, bool)
	Pattern() *regexp.Regexp
	CustomValidity() Override
}

// Source evaluates built-in constraints plus any override on a target.
type Source interface {
	Check(target Target) State
}

// SourceFunc adapts a function into a Source.
type SourceFunc func(target Target) State

// Check implements Source.
func (f SourceFunc) Check(target Target) State {
	return f(target)
}

// EmailTag is the validator tag for the HTML "valid e-mail address" grammar.
const EmailTag = "browser_email"

// browserEmail is the WHATWG valid e-mail address production. Quoted and
// non-ASCII local parts are rejected, dotless domains are accepted.
var browserEmail = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+" +
		`@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

// Constraints mirrors browser constraint validation: valueMissing on an
// empty required value, typeMismatch for malformed emails, tooShort/tooLong
// and patternMismatch on non-empty values, and the custom validity override.
// Email values are sanitized first (line breaks stripped, surrounding
// whitespace trimmed) and lengths count UTF-16 code units.
type Constraints struct {
	validate *validator.Validate
}

var _ Source = (*Constraints)(nil)

// NewConstraints constructs the default Source.
func NewConstraints() *Constraints {
	return &Constraints{validate: newValidate()}
}

func newValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation(EmailTag, func(fl validator.FieldLevel) bool {
		return browserEmail.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return validate
}

// sanitize applies the value sanitization algorithm of the input type.
func sanitize(kind model.InputType, value string) string {
	switch kind {
	case model.InputTypeEmail:
		value = strings.NewReplacer("\r", "", "\n", "").Replace(value)
		return strings.Trim(value, " \t\n\f\r")
	default:
		return value
	}
}

// codeUnits counts value the way minlength and maxlength do.
func codeUnits(value string) int {
	return len(utf16.Encode([]rune(value)))
}

// Check implements Source.
func (c *Constraints) Check(target Target) State {
	var state State
	if target == nil {
		state.Flags = FlagCustom
		state.Override = Force(Other, "")
		return state
	}

	value := sanitize(target.Type(), target.Value())
	if target.Required() && value == "" {
		state.Flags |= FlagMissing
	}

	if value != "" {
		if c.typeMismatch(target.Type(), value) {
			state.Flags |= FlagTypeMismatch
		}
		length := codeUnits(value)
		if minLen, ok := target.MinLength(); ok {
			state.MinLength = minLen
			if length < minLen {
				state.Flags |= FlagTooShort
			}
		}
		if maxLen, ok := target.MaxLength(); ok {
			state.MaxLength = maxLen
			if length > maxLen {
				state.Flags |= FlagTooLong
			}
		}
		if re := target.Pattern(); re != nil && !re.MatchString(value) {
			state.Flags |= FlagPatternMismatch
		}
	}

	if override := target.CustomValidity(); override.Active() {
		state.Override = override
		state.Flags |= FlagFor(override.Verdict)
	}
	return state
}

func (c *Constraints) typeMismatch(kind model.InputType, value string) bool {
	switch kind {
	case model.InputTypeEmail:
		if c.validate == nil {
			c.validate = newValidate()
		}
		return c.validate.Var(value, EmailTag) != nil
	default:
		return false
	}
}
