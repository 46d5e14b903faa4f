package contentcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-agency-site/internal/commands"
	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

const checkOperation = "content.check"

// ErrCheckerRequired is returned when no checker is wired.
var ErrCheckerRequired = errors.New("content command: checker is nil")

var _ command.Commander[CheckContentCommand] = (*CheckContentHandler)(nil)

// CheckContentHandler runs the content linter through the shared command handler.
type CheckContentHandler struct {
	inner *commands.Handler[CheckContentCommand]
}

// NewCheckContentHandler creates a handler bound to checker.
func NewCheckContentHandler(checker *Checker, logger interfaces.Logger, opts ...commands.HandlerOption[CheckContentCommand]) *CheckContentHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CheckContentCommand) error {
		if checker == nil {
			return ErrCheckerRequired
		}

		report, err := checker.Check(ctx, msg.kinds(), msg.Locales)
		if err != nil {
			return err
		}

		entry := logging.WithFields(baseLogger, map[string]any{
			"checked":     report.Checked,
			"issue_count": len(report.Issues),
		})
		if report.OK() {
			entry.Info("content.command.check.completed")
		} else {
			entry.Warn("content.command.check.issues_found")
		}

		if msg.OnComplete != nil {
			msg.OnComplete(report)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CheckContentCommand]{
		commands.WithLogger[CheckContentCommand](baseLogger),
		commands.WithOperation[CheckContentCommand](checkOperation),
		commands.WithMessageFields(func(msg CheckContentCommand) map[string]any {
			return map[string]any{
				"kinds":   msg.Kinds,
				"locales": msg.Locales,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CheckContentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CheckContentCommand].
func (h *CheckContentHandler) Execute(ctx context.Context, msg CheckContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RegisterContentCommands builds the content handlers and registers them
// with reg when it is non-nil.
func RegisterContentCommands(reg commands.CommandRegistry, md interfaces.MarkdownService, provider interfaces.LoggerProvider, opts ...commands.HandlerOption[CheckContentCommand]) (*CheckContentHandler, error) {
	if md == nil {
		return nil, errors.New("content command registration: markdown service is nil")
	}

	handler := NewCheckContentHandler(NewChecker(md), commands.CommandLogger(provider, "content"), opts...)
	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
