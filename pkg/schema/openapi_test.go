package schema

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/model"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile("testdata/signup.openapi.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return raw
}

func TestFormFromOpenAPI(t *testing.T) {
	form, err := FormFromOpenAPI(context.Background(), loadFixture(t), "signup")
	if err != nil {
		t.Fatalf("form from openapi: %v", err)
	}

	want := model.FormModel{
		ID:         "signup",
		Title:      "Sign up",
		GroupClass: model.SignupGroupClass,
		SlotClass:  model.SignupSlotClass,
		Fields: []model.Field{
			{
				Name:        "username",
				Type:        model.InputTypeText,
				Required:    true,
				Label:       "Username",
				ErrorSlot:   "usernameError",
				Validations: []model.ValidationRule{model.MinLength("3"), model.MaxLength("20")},
			},
			{Name: "email", Type: model.InputTypeEmail, Required: true, Label: "Email", ErrorSlot: "emailError"},
			{
				Name:        "password",
				Type:        model.InputTypePassword,
				Required:    true,
				Label:       "password",
				ErrorSlot:   "passwordError",
				Validations: []model.ValidationRule{model.MinLength("8")},
			},
			{
				Name:      "confirm-password",
				Type:      model.InputTypePassword,
				Required:  true,
				Label:     "Confirm password",
				ErrorSlot: "confirmPasswordError",
			},
			{
				Name:        "newsletter",
				Type:        model.InputTypeText,
				Label:       "newsletter",
				ErrorSlot:   "newsletterSlot",
				Validations: []model.ValidationRule{model.Pattern("yes|no")},
			},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestFormFromOpenAPI_Errors(t *testing.T) {
	raw := loadFixture(t)

	if _, err := FormFromOpenAPI(context.Background(), raw, "missing"); !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := FormFromOpenAPI(context.Background(), raw, "health"); !errors.Is(err, ErrNoRequestBody) {
		t.Fatalf("expected ErrNoRequestBody, got %v", err)
	}
	if _, err := FormFromOpenAPI(context.Background(), nil, "signup"); err == nil {
		t.Fatalf("expected error for empty payload")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FormFromOpenAPI(ctx, raw, "signup"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOperations(t *testing.T) {
	ops, err := Operations(context.Background(), loadFixture(t))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	want := []Operation{{ID: "signup", Method: "POST", Path: "/signup"}}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestRead(t *testing.T) {
	fsys := fstest.MapFS{"specs/signup.yaml": {Data: loadFixture(t)}}

	raw, err := Read(context.Background(), fsys, SourceFromFS("specs/signup.yaml"))
	if err != nil {
		t.Fatalf("read fs: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("expected payload")
	}

	if _, err := Read(context.Background(), nil, SourceFromFS("specs/signup.yaml")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
	if _, err := Read(context.Background(), nil, SourceFromFile("testdata/signup.openapi.yaml")); err != nil {
		t.Fatalf("read file: %v", err)
	}
	if _, err := Read(context.Background(), nil, SourceFromFile("testdata/missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSlotID(t *testing.T) {
	cases := map[string]string{
		"username":         "usernameError",
		"confirm-password": "confirmPasswordError",
		"first_name":       "firstNameError",
	}
	for in, want := range cases {
		if got := slotID(in); got != want {
			t.Fatalf("slotID(%q) = %q, want %q", in, got, want)
		}
	}
}
