package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Env:       "dev",
		LogLevel:  "warn",
		Mode:      ModeInteractive,
		Format:    "text",
		MaxRounds: 3,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "formcheck.yaml")
	content := []byte("format: html\nmode: check\nvalues_file: from-file.yaml\nmax_rounds: 5\n")
	if err := os.WriteFile(file, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("FORMCHECK_VALUES_FILE", "from-env.yaml")
	t.Setenv("FORMCHECK_EMAIL_DOMAINS", "Example.com, example.org")

	cfg, err := Load([]string{"--config", file, "--max_rounds", "2"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "html" || cfg.Mode != ModeCheck {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.ValuesFile != "from-env.yaml" {
		t.Fatalf("env should override file, got %q", cfg.ValuesFile)
	}
	if cfg.MaxRounds != 2 {
		t.Fatalf("flag should override file, got %d", cfg.MaxRounds)
	}
	if diff := cmp.Diff([]string{"example.com", "example.org"}, cfg.EmailDomains); diff != "" {
		t.Fatalf("email domains mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][]string{
		"unknown format":       {"--format", "pdf"},
		"check without values": {"--mode", "check"},
		"schema without op id": {"--schema_file", "api.yaml"},
		"rounds out of range":  {"--max_rounds", "0"},
		"bad email domain":     {"--email_domains", "not a domain"},
		"unknown env":          {"--env", "staging"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(args, nil); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	if _, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	if _, err := Load([]string{"--nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
