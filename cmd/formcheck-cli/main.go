package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcheck"
	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/internal/logging"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/notify"
	"github.com/goliatone/go-formcheck/pkg/orchestrator"
	"github.com/goliatone/go-formcheck/pkg/renderers/tui"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
	exitAborted = 130
	outputPerms = 0o644
)

func main() {
	boot := logging.BootstrapLogger()
	cfg, err := config.Load(os.Args[1:], boot)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(exitOK)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	logger := logging.MustBuildLogger(cfg.LogLevel, cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code, err := run(ctx, cfg, logger, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) (int, error) {
	form, table, err := loadForm(ctx, cfg)
	if err != nil {
		return exitUsage, err
	}

	switch cfg.Mode {
	case config.ModeCheck:
		return runCheck(ctx, cfg, logger, form, table, stdout, stderr)
	default:
		return runInteractive(ctx, cfg, logger, form, table, stdout)
	}
}

func loadForm(ctx context.Context, cfg *config.Config) (model.FormModel, rules.Table, error) {
	form := model.SignupForm()
	if cfg.SchemaFile != "" {
		derived, err := formcheck.FormFromOpenAPIFile(ctx, cfg.SchemaFile, cfg.OperationID)
		if err != nil {
			return model.FormModel{}, rules.Table{}, err
		}
		form = derived
	}

	table := rules.DefaultTable()
	if cfg.RulesFile != "" {
		loaded, err := rules.LoadTableFile(cfg.RulesFile)
		if err != nil {
			return model.FormModel{}, rules.Table{}, err
		}
		table = loaded
	}
	return form, table.WithEmailDomains(cfg.EmailDomains), nil
}

func runCheck(ctx context.Context, cfg *config.Config, logger *zap.Logger, form model.FormModel, table rules.Table, stdout, stderr io.Writer) (int, error) {
	values, err := readValues(cfg.ValuesFile)
	if err != nil {
		return exitUsage, err
	}

	bound, err := formcheck.New(form, table,
		orchestrator.WithLogger(logger),
		orchestrator.WithValidator(validator.New(validator.WithLogger(logger))),
		orchestrator.WithNotifier(notify.Multi(
			notify.NewWriter(stderr),
			notify.NewLogger(logger),
		)),
	)
	if err != nil {
		return exitUsage, err
	}
	if err := bound.Fill(values); err != nil {
		return exitUsage, err
	}

	// Reported before submit, since a successful submit resets the form.
	bound.Orchestrator.ValidateAll()
	renderers, err := formcheck.NewRenderers(vanilla.WithThemeVariant(cfg.ThemeVariant))
	if err != nil {
		return exitUsage, err
	}
	renderer, err := renderers.Get(cfg.Format)
	if err != nil {
		return exitUsage, err
	}
	report, err := renderer.Render(ctx, bound.Document)
	if err != nil {
		return exitUsage, err
	}
	if err := writeReport(cfg.Output, stdout, report); err != nil {
		return exitUsage, err
	}

	result, err := bound.Submit(ctx)
	if err != nil {
		return exitUsage, err
	}
	if !result.Valid {
		return exitInvalid, nil
	}
	return exitOK, nil
}

func runInteractive(ctx context.Context, cfg *config.Config, logger *zap.Logger, form model.FormModel, table rules.Table, stdout io.Writer) (int, error) {
	driver := tui.NewSurveyDriver(stdout)
	theme := tui.DefaultTheme()

	bound, err := formcheck.New(form, table,
		orchestrator.WithLogger(logger),
		orchestrator.WithValidator(validator.New(validator.WithLogger(logger))),
		orchestrator.WithNotifier(notify.Multi(
			tui.NewNotifier(driver, theme),
			notify.NewLogger(logger),
		)),
	)
	if err != nil {
		return exitUsage, err
	}

	session, err := tui.New(bound.Orchestrator,
		tui.WithPromptDriver(driver),
		tui.WithTheme(theme),
		tui.WithMaxRounds(cfg.MaxRounds),
		tui.WithConfirmSubmit(cfg.ConfirmSubmit),
		tui.WithLogger(logger),
	)
	if err != nil {
		return exitUsage, err
	}

	_, err = session.Run(ctx)
	switch {
	case err == nil:
		return exitOK, nil
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		return exitAborted, nil
	case errors.Is(err, tui.ErrDeclined), errors.Is(err, tui.ErrAttemptsExhausted):
		return exitInvalid, err
	default:
		return exitUsage, err
	}
}

// readValues decodes a flat field -> value mapping. YAML is a superset of
// JSON, so both formats are accepted.
func readValues(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode values %s: %w", path, err)
	}
	return values, nil
}

func writeReport(path string, stdout io.Writer, report []byte) error {
	if path == "" {
		_, err := stdout.Write(report)
		return err
	}
	if err := os.WriteFile(path, report, outputPerms); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
