package rules

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/validity"
)

const (
	MessageCharset     = "Username may only contain letters, numbers, and underscores"
	MessageStrength    = "Password must include uppercase, lowercase, number, and special character"
	MessageMismatch    = "Passwords do not match"
	MessageEmailDomain = "Email domain is not allowed"
)

var (
	// UsernameCharset is the canonical username alphabet.
	UsernameCharset = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	// SpecialCharacter treats any non-alphanumeric character as special.
	SpecialCharacter = regexp.MustCompile(`[^A-Za-z0-9]`)

	upperCase = regexp.MustCompile(`[A-Z]`)
	lowerCase = regexp.MustCompile(`[a-z]`)
	digit     = regexp.MustCompile(`\d`)
)

// Lookup gives rules read-only access to other field values.
type Lookup interface {
	Value(id string) string
}

// Rule inspects the current value and optionally forces a verdict.
type Rule func(value string) (validity.Override, bool)

// Builder binds a rule to the document it reads sibling values from.
type Builder func(form Lookup) Rule

// Charset rejects non-empty trimmed values not matching expr.
func Charset(expr *regexp.Regexp, message string) Builder {
	if message == "" {
		message = MessageCharset
	}
	return func(Lookup) Rule {
		return func(value string) (validity.Override, bool) {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" || expr == nil || expr.MatchString(trimmed) {
				return validity.Override{}, false
			}
			return validity.Force(validity.PatternMismatch, message), true
		}
	}
}

// Strength rejects non-empty values that do not contain an uppercase letter,
// a lowercase letter, a digit and a character matched by special.
func Strength(special *regexp.Regexp, message string) Builder {
	if special == nil {
		special = SpecialCharacter
	}
	if message == "" {
		message = MessageStrength
	}
	return func(Lookup) Rule {
		return func(value string) (validity.Override, bool) {
			if value == "" {
				return validity.Override{}, false
			}
			if upperCase.MatchString(value) &&
				lowerCase.MatchString(value) &&
				digit.MatchString(value) &&
				special.MatchString(value) {
				return validity.Override{}, false
			}
			return validity.Force(validity.Custom, message), true
		}
	}
}

// Match rejects values that differ from the current value of target.
func Match(target, message string) Builder {
	if message == "" {
		message = MessageMismatch
	}
	return func(form Lookup) Rule {
		return func(value string) (validity.Override, bool) {
			var other string
			if form != nil {
				other = form.Value(target)
			}
			if value == other {
				return validity.Override{}, false
			}
			return validity.Force(validity.Custom, message), true
		}
	}
}

// EmailDomain rejects non-empty addresses whose domain is not listed.
// Domains compare case-insensitively.
func EmailDomain(domains []string, message string) Builder {
	if message == "" {
		message = MessageEmailDomain
	}
	allowed := make(map[string]struct{}, len(domains))
	for _, domain := range domains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain != "" {
			allowed[domain] = struct{}{}
		}
	}
	return func(Lookup) Rule {
		return func(value string) (validity.Override, bool) {
			value = strings.TrimSpace(value)
			if value == "" || len(allowed) == 0 {
				return validity.Override{}, false
			}
			at := strings.LastIndexByte(value, '@')
			if at >= 0 {
				if _, ok := allowed[strings.ToLower(value[at+1:])]; ok {
					return validity.Override{}, false
				}
			}
			return validity.Force(validity.Custom, message), true
		}
	}
}
