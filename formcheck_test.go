package formcheck

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/notify"
	"github.com/goliatone/go-formcheck/pkg/orchestrator"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

func TestNewSignup_FillAndSubmit(t *testing.T) {
	recorder := &notify.Recorder{}
	form, err := NewSignup(orchestrator.WithNotifier(recorder))
	if err != nil {
		t.Fatalf("new signup: %v", err)
	}

	err = form.Fill(map[string]string{
		"username":         "ada_l",
		"email":            "ada@example.com",
		"password":         "Abcdef1!",
		"confirm-password": "Abcdef1!",
	})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	result, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid submit, got %+v", result)
	}
	if notice, _ := recorder.Last(); notice.Kind != notify.KindSuccess {
		t.Fatalf("unexpected notice %+v", notice)
	}
}

func TestFill_UnknownField(t *testing.T) {
	form, err := NewSignup(orchestrator.WithNotifier(&notify.Recorder{}))
	if err != nil {
		t.Fatalf("new signup: %v", err)
	}
	if err := form.Fill(map[string]string{"nickname": "x"}); !errors.Is(err, dom.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
}

func TestNew_TableMismatch(t *testing.T) {
	table := rules.Table{Entries: []rules.Entry{{Field: "username", Slot: "wrongSlot"}}}
	if _, err := New(model.SignupForm(), table); !errors.Is(err, ErrTableMismatch) {
		t.Fatalf("expected ErrTableMismatch, got %v", err)
	}
}

func TestFormFromOpenAPIFile(t *testing.T) {
	path := filepath.Join("pkg", "schema", "testdata", "signup.openapi.yaml")
	form, err := FormFromOpenAPIFile(context.Background(), path, "signup")
	if err != nil {
		t.Fatalf("form from openapi: %v", err)
	}
	fields := make([]string, 0, len(form.Fields))
	for _, f := range form.Fields {
		fields = append(fields, f.Name)
	}
	want := []string{"username", "email", "password", "confirm-password", "newsletter"}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRenderers(t *testing.T) {
	registry, err := NewRenderers()
	if err != nil {
		t.Fatalf("new renderers: %v", err)
	}
	if diff := cmp.Diff([]string{"html", "text"}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}

	form, err := NewSignup(orchestrator.WithNotifier(&notify.Recorder{}))
	if err != nil {
		t.Fatalf("new signup: %v", err)
	}
	renderer, err := registry.Get("text")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	out, err := renderer.Render(context.Background(), form.Document)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), "signupForm: invalid") {
		t.Fatalf("unexpected report %q", out)
	}
}

func TestAssetsFS(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "formcheck.css")
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".error-message-signup") {
		t.Fatalf("stylesheet missing slot rule")
	}
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/form.tmpl"); err != nil {
		t.Fatalf("read template: %v", err)
	}
}
