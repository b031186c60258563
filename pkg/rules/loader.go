package rules

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTable wraps every structural problem found in a rule file.
var ErrInvalidTable = errors.New("rules: invalid rule table")

type tableFile struct {
	Fields []entryFile `yaml:"fields" validate:"required,min=1,dive"`
}

type entryFile struct {
	Field string    `yaml:"field" validate:"required"`
	Slot  string    `yaml:"slot" validate:"required"`
	Rule  *ruleFile `yaml:"rule" validate:"omitempty"`
}

type ruleFile struct {
	Kind    string   `yaml:"kind" validate:"required,oneof=charset strength match email_domain"`
	Pattern string   `yaml:"pattern"`
	Special string   `yaml:"special"`
	Target  string   `yaml:"target" validate:"required_if=Kind match"`
	Domains []string `yaml:"domains" validate:"required_if=Kind email_domain"`
	Message string   `yaml:"message"`
}

var (
	fileValidator = validator.New(validator.WithRequiredStructEnabled())
	messagePolicy = bluemonday.StrictPolicy()
)

// LoadTableFile reads and compiles a YAML rule file.
func LoadTableFile(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("rules: read %s: %w", path, err)
	}
	table, err := LoadTable(raw)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadTable parses a YAML rule table. Messages are stripped of markup since
// they are rendered as plain slot text.
func LoadTable(raw []byte) (Table, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Table{}, fmt.Errorf("%w: document is empty", ErrInvalidTable)
	}

	var file tableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Table{}, fmt.Errorf("rules: parse: %w", err)
	}
	if err := fileValidator.Struct(file); err != nil {
		return Table{}, formatValidationError(err)
	}

	table := Table{Entries: make([]Entry, 0, len(file.Fields))}
	for idx, item := range file.Fields {
		entry := Entry{
			Field: strings.TrimSpace(item.Field),
			Slot:  strings.TrimSpace(item.Slot),
		}
		if item.Rule != nil {
			if err := compileRule(&entry, *item.Rule); err != nil {
				return Table{}, fmt.Errorf("%w: fields[%d] (%s): %v", ErrInvalidTable, idx, entry.Field, err)
			}
		}
		table.Entries = append(table.Entries, entry)
	}
	return table, nil
}

func compileRule(entry *Entry, rule ruleFile) error {
	message := strings.TrimSpace(messagePolicy.Sanitize(rule.Message))
	entry.Kind = rule.Kind

	switch rule.Kind {
	case KindCharset:
		expr := UsernameCharset
		if rule.Pattern != "" {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				return fmt.Errorf("pattern: %w", err)
			}
			expr = re
		}
		entry.Rule = Charset(expr, message)
	case KindStrength:
		special := SpecialCharacter
		if rule.Special != "" {
			re, err := regexp.Compile(rule.Special)
			if err != nil {
				return fmt.Errorf("special: %w", err)
			}
			special = re
		}
		entry.Rule = Strength(special, message)
	case KindMatch:
		target := strings.TrimSpace(rule.Target)
		entry.DependsOn = target
		entry.Rule = Match(target, message)
	case KindEmailDomain:
		entry.Rule = EmailDomain(rule.Domains, message)
	default:
		return fmt.Errorf("unknown rule kind %q", rule.Kind)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	errs := []error{ErrInvalidTable}
	for _, fieldErr := range validationErrors {
		errs = append(errs, fmt.Errorf("%s: failed %q", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return errors.Join(errs...)
}
