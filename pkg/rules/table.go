package rules

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formcheck/pkg/model"
)

const (
	KindCharset     = "charset"
	KindStrength    = "strength"
	KindMatch       = "match"
	KindEmailDomain = "email_domain"
)

// Entry binds one field to its error slot and optional custom rule.
type Entry struct {
	Field string
	Slot  string
	Kind  string
	// DependsOn names the field whose changes re-run this entry while it is
	// non-empty. Only match rules set it.
	DependsOn string
	Rule      Builder
}

// Table is the ordered rule table the orchestrator binds.
type Table struct {
	Entries []Entry
}

// DefaultTable returns the canonical signup rule table.
func DefaultTable() Table {
	return Table{Entries: []Entry{
		{Field: model.FieldUsername, Slot: "usernameError", Kind: KindCharset, Rule: Charset(UsernameCharset, MessageCharset)},
		{Field: model.FieldEmail, Slot: "emailError"},
		{Field: model.FieldPassword, Slot: "passwordError", Kind: KindStrength, Rule: Strength(SpecialCharacter, MessageStrength)},
		{
			Field:     model.FieldConfirmPassword,
			Slot:      "confirmPasswordError",
			Kind:      KindMatch,
			DependsOn: model.FieldPassword,
			Rule:      Match(model.FieldPassword, MessageMismatch),
		},
	}}
}

// WithEmailDomains returns a copy of t where the email entry, when it has no
// custom rule yet, only accepts addresses on domains. An empty list returns t
// unchanged.
func (t Table) WithEmailDomains(domains []string) Table {
	if len(domains) == 0 {
		return t
	}
	out := Table{Entries: append([]Entry(nil), t.Entries...)}
	for i := range out.Entries {
		entry := &out.Entries[i]
		if entry.Field == model.FieldEmail && entry.Rule == nil {
			entry.Kind = KindEmailDomain
			entry.Rule = EmailDomain(domains, MessageEmailDomain)
		}
	}
	return out
}

// Entry returns the entry for field.
func (t Table) Entry(field string) (Entry, bool) {
	for _, entry := range t.Entries {
		if entry.Field == field {
			return entry, true
		}
	}
	return Entry{}, false
}

// Problem describes a mismatch between a table and the form it targets.
type Problem struct {
	Field   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Message)
}

// Verify checks that every entry refers to fields and slots present in form
// and that every form field is covered. Problems are sorted by field.
func (t Table) Verify(form model.FormModel) []Problem {
	var problems []Problem
	seen := make(map[string]struct{}, len(t.Entries))

	for _, entry := range t.Entries {
		if _, dup := seen[entry.Field]; dup {
			problems = append(problems, Problem{Field: entry.Field, Message: "duplicate entry"})
			continue
		}
		seen[entry.Field] = struct{}{}

		field, ok := form.Field(entry.Field)
		if !ok {
			problems = append(problems, Problem{Field: entry.Field, Message: "unknown field"})
			continue
		}
		if field.ErrorSlot != entry.Slot {
			problems = append(problems, Problem{
				Field:   entry.Field,
				Message: fmt.Sprintf("slot %q does not match form slot %q", entry.Slot, field.ErrorSlot),
			})
		}
		if entry.DependsOn != "" {
			if entry.DependsOn == entry.Field {
				problems = append(problems, Problem{Field: entry.Field, Message: "match rule targets itself"})
			} else if _, ok := form.Field(entry.DependsOn); !ok {
				problems = append(problems, Problem{
					Field:   entry.Field,
					Message: fmt.Sprintf("match target %q is not a form field", entry.DependsOn),
				})
			}
		}
	}

	for _, field := range form.Fields {
		if _, ok := seen[field.Name]; !ok {
			problems = append(problems, Problem{Field: field.Name, Message: "no rule table entry"})
		}
	}

	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].Field < problems[j].Field
	})
	return problems
}
