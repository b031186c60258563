package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formcheck/pkg/model"
)

const sampleTable = `
fields:
  - field: username
    slot: usernameError
    rule:
      kind: charset
      message: "<b>Letters</b>, digits and underscores only"
  - field: email
    slot: emailError
    rule:
      kind: email_domain
      domains: [example.com]
  - field: password
    slot: passwordError
    rule:
      kind: strength
      special: '[!@#$%^&*]'
  - field: confirm-password
    slot: confirmPasswordError
    rule:
      kind: match
      target: password
`

func TestLoadTable(t *testing.T) {
	table, err := LoadTable([]byte(sampleTable))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if problems := table.Verify(model.SignupForm()); len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}

	username, _ := table.Entry("username")
	override, forced := username.Rule(nil)("ab!")
	if !forced {
		t.Fatalf("charset rule not applied")
	}
	if override.Message != "Letters, digits and underscores only" {
		t.Fatalf("markup not stripped: %q", override.Message)
	}

	password, _ := table.Entry("password")
	if _, forced := password.Rule(nil)("Abcdef1~"); !forced {
		t.Fatalf("custom special set should reject '~'")
	}
	if _, forced := password.Rule(nil)("Abcdef1!"); forced {
		t.Fatalf("custom special set should accept '!'")
	}

	confirm, _ := table.Entry("confirm-password")
	if confirm.DependsOn != "password" || confirm.Kind != KindMatch {
		t.Fatalf("unexpected confirm entry: %+v", confirm)
	}

	email, _ := table.Entry("email")
	if _, forced := email.Rule(nil)("ada@other.org"); !forced {
		t.Fatalf("email domain rule not applied")
	}
}

func TestLoadTable_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"no fields":      "fields: []",
		"unknown kind":   "fields:\n  - field: a\n    slot: b\n    rule:\n      kind: bogus\n",
		"match target":   "fields:\n  - field: a\n    slot: b\n    rule:\n      kind: match\n",
		"missing slot":   "fields:\n  - field: a\n",
		"bad pattern":    "fields:\n  - field: a\n    slot: b\n    rule:\n      kind: charset\n      pattern: '('\n",
		"domain missing": "fields:\n  - field: a\n    slot: b\n    rule:\n      kind: email_domain\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadTable([]byte(raw))
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("expected ErrInvalidTable, got %v", err)
			}
		})
	}
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := LoadTableFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(table.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(table.Entries))
	}

	if _, err := LoadTableFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
