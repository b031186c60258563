package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func checkConfig(valuesFile, format string) *config.Config {
	return &config.Config{
		Env:        "dev",
		LogLevel:   "warn",
		Mode:       config.ModeCheck,
		ValuesFile: valuesFile,
		Format:     format,
		MaxRounds:  3,
	}
}

func TestRunCheck_Valid(t *testing.T) {
	values := writeFile(t, "values.yaml", `
username: ada_l
email: ada@example.com
password: Abcdef1!
confirm-password: Abcdef1!
`)
	var stdout, stderr bytes.Buffer
	code, err := run(context.Background(), checkConfig(values, "text"), zap.NewNop(), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if !strings.HasPrefix(stdout.String(), "signupForm: valid\n") {
		t.Fatalf("unexpected report %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Form submitted successfully!") {
		t.Fatalf("expected success notice, got %q", stderr.String())
	}
}

func TestRunCheck_Invalid(t *testing.T) {
	values := writeFile(t, "values.json", `{"username": "ab!", "email": "ada@example.com", "password": "abcdefgh"}`)
	var stdout, stderr bytes.Buffer
	code, err := run(context.Background(), checkConfig(values, "html"), zap.NewNop(), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	for _, fragment := range []string{
		`<form id="signupForm"`,
		"Username may only contain letters, numbers, and underscores",
		"Password must include uppercase, lowercase, number, and special character",
		"This field is required",
	} {
		if !strings.Contains(stdout.String(), fragment) {
			t.Fatalf("report missing %q", fragment)
		}
	}
	if !strings.Contains(stderr.String(), "Please fix the errors before submitting.") {
		t.Fatalf("expected failure notice, got %q", stderr.String())
	}
}

func TestRunCheck_EmailDomains(t *testing.T) {
	values := writeFile(t, "values.yaml", `
username: ada_l
email: ada@other.org
password: Abcdef1!
confirm-password: Abcdef1!
`)
	cfg := checkConfig(values, "text")
	cfg.EmailDomains = []string{"example.com"}

	var stdout, stderr bytes.Buffer
	code, err := run(context.Background(), cfg, zap.NewNop(), &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != exitInvalid || !strings.Contains(stdout.String(), "Email domain is not allowed") {
		t.Fatalf("expected domain rejection, got %d %q", code, stdout.String())
	}
}

func TestRunCheck_OutputFile(t *testing.T) {
	values := writeFile(t, "values.yaml", "username: ada_l\n")
	out := filepath.Join(t.TempDir(), "report.txt")
	cfg := checkConfig(values, "text")
	cfg.Output = out

	var stdout, stderr bytes.Buffer
	if _, err := run(context.Background(), cfg, zap.NewNop(), &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("report should not go to stdout")
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "username [valid]") {
		t.Fatalf("unexpected report %q", data)
	}
}

func TestRunCheck_UnknownField(t *testing.T) {
	values := writeFile(t, "values.yaml", "nickname: ada\n")
	var stdout, stderr bytes.Buffer
	code, err := run(context.Background(), checkConfig(values, "text"), zap.NewNop(), &stdout, &stderr)
	if err == nil || code != exitUsage {
		t.Fatalf("expected usage error, got %d %v", code, err)
	}
}
