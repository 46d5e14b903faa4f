package commands

import (
	"context"
	"errors"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// DefaultCommandTimeout bounds a single command execution.
const DefaultCommandTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler wraps command execution with the shared site concerns (context, logging, error tagging).
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
	fields    func(T) map[string]any
	telemetry Telemetry[T]
}

// NewHandler creates a handler that satisfies go-command's Commander interface while applying
// validation, logging and timeout enforcement.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: DefaultCommandTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Execute conforms to command.Commander[T].Execute and applies validation, context management,
// logging, and error categorisation before delegating to the wrapped function.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	ctx = ensureContext(ctx)
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	fields := map[string]any{
		"command": command.GetMessageType(msg),
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	if h.fields != nil {
		for key, value := range h.fields(msg) {
			fields[key] = value
		}
	}
	logger := logging.WithFields(h.logger, fields)
	logger.Debug("command.execute.start")

	start := time.Now()
	err := h.exec(ctx, msg)
	if err == nil {
		err = ctx.Err()
	}

	info := TelemetryInfo{
		Command:   command.GetMessageType(msg),
		Operation: h.operation,
		Fields:    fields,
		Duration:  time.Since(start),
		Error:     err,
		Status:    telemetryStatus(err),
		Logger:    logger,
	}
	if h.telemetry != nil {
		h.telemetry(ctx, msg, info)
	} else {
		logOutcome(logger, info)
	}

	switch info.Status {
	case TelemetryStatusSuccess:
		return nil
	case TelemetryStatusContextError:
		return wrapContextError(err)
	default:
		return wrapExecuteError(err)
	}
}

// WithTimeout overrides the default execution timeout. Zero or negative disables it.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithOperation sets a human-friendly operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithMessageFields adds message derived fields to every log entry.
func WithMessageFields[T command.Message](fn func(T) map[string]any) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.fields = fn
	}
}

// WithTelemetry replaces the default outcome logging with a callback.
func WithTelemetry[T command.Message](telemetry Telemetry[T]) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.telemetry = telemetry
	}
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func telemetryStatus(err error) TelemetryStatus {
	switch {
	case err == nil:
		return TelemetryStatusSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return TelemetryStatusContextError
	default:
		return TelemetryStatusFailed
	}
}
