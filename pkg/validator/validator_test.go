package validator

import (
	"testing"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/validity"
)

func signupDoc(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.FromModel(model.SignupForm())
	if err != nil {
		t.Fatalf("from model: %v", err)
	}
	return doc
}

func elements(t *testing.T, doc *dom.Document, field, slot string) (*dom.Input, *dom.Slot) {
	t.Helper()
	input, ok := doc.Input(field)
	if !ok {
		t.Fatalf("missing input %q", field)
	}
	errSlot, ok := doc.Slot(slot)
	if !ok {
		t.Fatalf("missing slot %q", slot)
	}
	return input, errSlot
}

func assertExactlyOneState(t *testing.T, input *dom.Input) {
	t.Helper()
	valid := input.Classes.Contains(dom.ClassValid)
	invalid := input.Classes.Contains(dom.ClassInvalid)
	if valid == invalid {
		t.Fatalf("%s: expected exactly one of valid/invalid, got %q", input.ID(), input.Classes.String())
	}
}

func TestValidate_RequiredEmpty(t *testing.T) {
	doc := signupDoc(t)
	v := New()
	fields := map[string]string{
		"username":         "usernameError",
		"email":            "emailError",
		"password":         "passwordError",
		"confirm-password": "confirmPasswordError",
	}
	for field, slotID := range fields {
		for _, value := range []string{"", "   "} {
			input, slot := elements(t, doc, field, slotID)
			input.SetValue(value)
			if v.Validate(input, slot, nil) {
				t.Fatalf("%s %q: expected invalid", field, value)
			}
			if slot.Text() != "This field is required" {
				t.Fatalf("%s %q: unexpected message %q", field, value, slot.Text())
			}
			assertExactlyOneState(t, input)
		}
	}
}

func TestValidate_Username(t *testing.T) {
	doc := signupDoc(t)
	v := New()
	input, slot := elements(t, doc, "username", "usernameError")
	entry, _ := rules.DefaultTable().Entry("username")
	rule := entry.Rule(doc)

	input.SetValue("ab!")
	if v.Validate(input, slot, rule) {
		t.Fatalf("ab! should be invalid")
	}
	if slot.Text() != rules.MessageCharset {
		t.Fatalf("unexpected message %q", slot.Text())
	}
	if got := validity.NewConstraints().Check(input).Verdict(); got != validity.PatternMismatch {
		t.Fatalf("expected pattern-mismatch verdict, got %s", got)
	}
	assertExactlyOneState(t, input)

	input.SetValue("ab_1")
	if !v.Validate(input, slot, rule) {
		t.Fatalf("ab_1 should be valid, got %q", slot.Text())
	}
	if slot.Text() != "" || input.State() != dom.StateValid {
		t.Fatalf("stale state after valid check: %q %s", slot.Text(), input.State())
	}
	assertExactlyOneState(t, input)

	input.SetValue("a!")
	v.Validate(input, slot, rule)
	if slot.Text() != "Minimum length is 3 characters" {
		t.Fatalf("too-short should outrank the charset rule, got %q", slot.Text())
	}
}

func TestValidate_Email(t *testing.T) {
	doc := signupDoc(t)
	v := New()
	input, slot := elements(t, doc, "email", "emailError")

	input.SetValue("ada@")
	if v.Validate(input, slot, nil) {
		t.Fatalf("ada@ should be invalid")
	}
	if slot.Text() != "Please enter a valid value" {
		t.Fatalf("unexpected message %q", slot.Text())
	}

	input.SetValue("ada@example.com")
	if !v.Validate(input, slot, nil) {
		t.Fatalf("valid email rejected: %q", slot.Text())
	}
}

func TestValidate_Password(t *testing.T) {
	doc := signupDoc(t)
	v := New()
	input, slot := elements(t, doc, "password", "passwordError")
	entry, _ := rules.DefaultTable().Entry("password")
	rule := entry.Rule(doc)

	input.SetValue("abcdefgh")
	if v.Validate(input, slot, rule) {
		t.Fatalf("abcdefgh should be invalid")
	}
	if slot.Text() != rules.MessageStrength {
		t.Fatalf("unexpected message %q", slot.Text())
	}

	input.SetValue("Abcdef1!")
	if !v.Validate(input, slot, rule) {
		t.Fatalf("Abcdef1! should be valid, got %q", slot.Text())
	}
}

func TestValidate_ConfirmPassword(t *testing.T) {
	doc := signupDoc(t)
	v := New()
	password, _ := doc.Input("password")
	input, slot := elements(t, doc, "confirm-password", "confirmPasswordError")
	entry, _ := rules.DefaultTable().Entry("confirm-password")
	rule := entry.Rule(doc)

	password.SetValue("Abcdef1!")
	input.SetValue("Abcdef1!")
	if !v.Validate(input, slot, rule) {
		t.Fatalf("matching confirm rejected: %q", slot.Text())
	}

	password.SetValue("Abcdef2!")
	if v.Validate(input, slot, rule) {
		t.Fatalf("stale confirm accepted")
	}
	if slot.Text() != rules.MessageMismatch {
		t.Fatalf("unexpected message %q", slot.Text())
	}
}

func TestValidate_UsesInjectedSource(t *testing.T) {
	doc := signupDoc(t)
	input, slot := elements(t, doc, "email", "emailError")
	input.SetValue("anything")

	calls := 0
	source := validity.SourceFunc(func(target validity.Target) validity.State {
		calls++
		return validity.State{Flags: validity.FlagTooLong, MaxLength: 4}
	})
	v := New(WithSource(source), WithMessages(Messages{TooLong: "at most %d"}))

	if v.Validate(input, slot, nil) {
		t.Fatalf("fake source verdict ignored")
	}
	if calls != 1 {
		t.Fatalf("expected one source call, got %d", calls)
	}
	if slot.Text() != "at most 4" {
		t.Fatalf("unexpected message %q", slot.Text())
	}
}

func TestValidate_RuleSeesFreshOverride(t *testing.T) {
	doc := signupDoc(t)
	v := New()
	input, slot := elements(t, doc, "username", "usernameError")
	input.SetCustomValidity(validity.Force(validity.Custom, "stale"))
	input.SetValue("ada_l")

	if !v.Validate(input, slot, nil) {
		t.Fatalf("previous override leaked into the check: %q", slot.Text())
	}
}

func TestValidate_NilElements(t *testing.T) {
	if New().Validate(nil, nil, nil) {
		t.Fatalf("nil elements must fail")
	}
}

func TestMessages_Priority(t *testing.T) {
	m := DefaultMessages()
	state := validity.State{
		Flags:     validity.FlagTooShort | validity.FlagPatternMismatch | validity.FlagCustom,
		MinLength: 5,
		Override:  validity.Force(validity.Custom, "custom"),
	}
	if got := m.For(state); got != "Minimum length is 5 characters" {
		t.Fatalf("unexpected message %q", got)
	}

	state.Flags = validity.FlagCustom
	if got := m.For(state); got != "custom" {
		t.Fatalf("unexpected message %q", got)
	}

	if got := m.For(validity.State{Flags: validity.FlagCustom}); got != m.Other {
		t.Fatalf("unexpected fallback %q", got)
	}
}
