package tui

import (
	"context"

	"github.com/goliatone/go-formcheck/pkg/notify"
)

// NewNotifier reports submit notices through the prompt driver so they land
// in the same terminal as the prompts.
func NewNotifier(driver PromptDriver, theme Theme) notify.Notifier {
	return notify.Func(func(ctx context.Context, notice notify.Notice) error {
		prefix := theme.SuccessPrefix
		if notice.Kind == notify.KindFailure {
			prefix = theme.FailurePrefix
		}
		return driver.Info(ctx, prefix+notice.Message)
	})
}
