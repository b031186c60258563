package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Kind distinguishes the submit outcomes a notice reports.
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

// Notice is a user-visible message raised at the end of a submit.
type Notice struct {
	Kind    Kind
	Message string
}

// Notifier presents notices. Implementations may block until the user has
// acknowledged the notice.
type Notifier interface {
	Notify(ctx context.Context, notice Notice) error
}

// Func adapts a function into a Notifier.
type Func func(ctx context.Context, notice Notice) error

// Notify implements Notifier.
func (f Func) Notify(ctx context.Context, notice Notice) error {
	return f(ctx, notice)
}

// Writer prints notices to an io.Writer, one per line.
type Writer struct {
	out           io.Writer
	successPrefix string
	failurePrefix string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPrefixes sets the line prefixes for success and failure notices.
func WithPrefixes(success, failure string) WriterOption {
	return func(w *Writer) {
		w.successPrefix = success
		w.failurePrefix = failure
	}
}

// NewWriter constructs a Writer. A nil out writes to stdout.
func NewWriter(out io.Writer, options ...WriterOption) *Writer {
	if out == nil {
		out = os.Stdout
	}
	w := &Writer{out: out}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Notify implements Notifier.
func (w *Writer) Notify(ctx context.Context, notice Notice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := w.successPrefix
	if notice.Kind == KindFailure {
		prefix = w.failurePrefix
	}
	_, err := fmt.Fprintln(w.out, prefix+notice.Message)
	return err
}

// Logger reports notices through zap; failures log at warn level.
type Logger struct {
	logger *zap.Logger
}

// NewLogger constructs a Logger notifier.
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger}
}

// Notify implements Notifier.
func (l *Logger) Notify(_ context.Context, notice Notice) error {
	fields := []zap.Field{zap.String("kind", string(notice.Kind))}
	if notice.Kind == KindFailure {
		l.logger.Warn(notice.Message, fields...)
		return nil
	}
	l.logger.Info(notice.Message, fields...)
	return nil
}

// Multi fans a notice out to every notifier and joins their errors.
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, notice Notice) error {
		var errs []error
		for _, n := range notifiers {
			if n == nil {
				continue
			}
			if err := n.Notify(ctx, notice); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// Recorder keeps every notice it receives.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Notifier.
func (r *Recorder) Notify(_ context.Context, notice Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
	return nil
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}
