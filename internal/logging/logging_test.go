package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		env      string
		encoding string
		want     zap.AtomicLevel
	}{
		{name: "dev debug", level: "debug", env: "dev", encoding: "console", want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "prod upper case", level: "WARN", env: "prod", encoding: "json", want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "invalid level", level: "loud", env: "dev", encoding: "console", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config(tt.level, tt.env)
			if cfg.Encoding != tt.encoding {
				t.Fatalf("encoding: want %s, got %s", tt.encoding, cfg.Encoding)
			}
			if cfg.Level.Level() != tt.want.Level() {
				t.Fatalf("level: want %s, got %s", tt.want.Level(), cfg.Level.Level())
			}
			if len(cfg.OutputPaths) != 1 || cfg.OutputPaths[0] != "stderr" {
				t.Fatalf("unexpected output paths %v", cfg.OutputPaths)
			}
		})
	}
}

func TestBuildLogger(t *testing.T) {
	logger, err := BuildLogger("info", "prod")
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger")
	}
}

func TestIsValidLogLevel(t *testing.T) {
	if !IsValidLogLevel("Debug") || IsValidLogLevel("verbose") {
		t.Fatalf("unexpected level validation")
	}
}
