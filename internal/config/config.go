package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix of every environment variable Load reads.
const EnvPrefix = "FORMCHECK"

const (
	ModeInteractive = "interactive"
	ModeCheck       = "check"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of formcheck-cli.
type Config struct {
	Env      string `mapstructure:"env" validate:"oneof=dev prod"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error dpanic panic fatal"`

	// Mode "interactive" prompts in the terminal; "check" replays a values
	// file and writes a report.
	Mode       string `mapstructure:"mode" validate:"oneof=interactive check"`
	ValuesFile string `mapstructure:"values_file" validate:"required_if=Mode check"`
	Format     string `mapstructure:"format" validate:"oneof=html text"`
	Output     string `mapstructure:"output"`

	RulesFile   string `mapstructure:"rules_file"`
	SchemaFile  string `mapstructure:"schema_file"`
	OperationID string `mapstructure:"operation_id" validate:"required_with=SchemaFile"`

	EmailDomains  []string `mapstructure:"email_domains" validate:"dive,hostname"`
	ThemeVariant  string   `mapstructure:"theme_variant"`
	MaxRounds     int      `mapstructure:"max_rounds" validate:"gte=1,lte=10"`
	ConfirmSubmit bool     `mapstructure:"confirm_submit"`
}

// Load merges defaults, an optional config file, FORMCHECK_* environment
// variables (after loading .env), and explicitly set flags from args.
// Precedence, highest first: flags, env, file, defaults.
func Load(args []string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	flags := NewFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range allKeys() {
		_ = v.BindEnv(key)
	}

	configFile, _ := flags.GetString("config")
	if err := mergeConfigFile(v, configFile, logger); err != nil {
		return nil, err
	}

	setDefaults(v)

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed && f.Name != "config" {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.EmailDomains = compact(cfg.EmailDomains)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewFlagSet declares every flag Load understands.
func NewFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("formcheck", pflag.ContinueOnError)
	flags.String("config", "", "Config file (default: formcheck.{yaml,yml,json} in the working directory)")
	flags.String("env", "dev", `Runtime environment "dev"|"prod"`)
	flags.String("log_level", "warn", "Log level")
	flags.String("mode", ModeInteractive, `"interactive" prompts in the terminal, "check" replays a values file`)
	flags.String("values_file", "", "YAML or JSON file of field values (check mode)")
	flags.String("format", "text", `Report format "text"|"html"`)
	flags.String("output", "", "Report destination (default: stdout)")
	flags.String("rules_file", "", "YAML rule table replacing the built-in one")
	flags.String("schema_file", "", "OpenAPI document the form is derived from")
	flags.String("operation_id", "", "Operation whose request body describes the form")
	flags.StringSlice("email_domains", nil, "Restrict email addresses to these domains")
	flags.String("theme_variant", "", "Theme variant for HTML reports")
	flags.Int("max_rounds", 3, "Re-prompt rounds after a failed submit (interactive mode)")
	flags.Bool("confirm_submit", false, "Ask before submitting (interactive mode)")
	return flags
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"mode", "values_file", "format", "output",
		"rules_file", "schema_file", "operation_id",
		"email_domains", "theme_variant", "max_rounds", "confirm_submit",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "warn")
	v.SetDefault("mode", ModeInteractive)
	v.SetDefault("format", "text")
	v.SetDefault("email_domains", []string{})
	v.SetDefault("max_rounds", 3)
	v.SetDefault("confirm_submit", false)
}

func mergeConfigFile(v *viper.Viper, explicit string, logger *zap.Logger) error {
	candidates := []string{explicit}
	if explicit == "" {
		candidates = []string{"formcheck.yaml", "formcheck.yml", "formcheck.json"}
	}
	for _, file := range candidates {
		b, err := os.ReadFile(file)
		if err != nil {
			if explicit != "" {
				return fmt.Errorf("config: read %s: %w", file, err)
			}
			continue
		}
		v.SetConfigType(strings.TrimPrefix(filepath.Ext(file), "."))
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			return fmt.Errorf("config: decode %s: %w", file, err)
		}
		logger.Debug("loaded config file", zap.String("file", file))
	}
	return nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	errs := []error{ErrInvalidConfig}
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return errors.Join(errs...)
}

func compact(values []string) []string {
	var out []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, strings.ToLower(trimmed))
		}
	}
	return out
}
