package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// TelemetryStatus captures the result category for command execution.
type TelemetryStatus string

const (
	// TelemetryStatusSuccess indicates the command completed without errors.
	TelemetryStatusSuccess TelemetryStatus = "success"
	// TelemetryStatusFailed indicates the command execution returned an error.
	TelemetryStatusFailed TelemetryStatus = "failed"
	// TelemetryStatusContextError indicates execution failed due to context cancellation or deadline.
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo describes a command execution outcome provided to telemetry callbacks.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is invoked once per execution, after the wrapped function returns.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry returns a telemetry callback that logs command outcomes with the supplied logger.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(_ context.Context, _ T, info TelemetryInfo) {
		info.Logger = logging.WithFields(logger, info.Fields)
		logOutcome(info.Logger, info)
	}
}

func logOutcome(logger interfaces.Logger, info TelemetryInfo) {
	args := []any{"duration_ms", info.Duration.Milliseconds()}
	switch info.Status {
	case TelemetryStatusSuccess:
		logger.Info("command.execute.success", args...)
	case TelemetryStatusContextError:
		logger.Error("command.execute.context_error", append(args, "error", info.Error)...)
	default:
		logger.Error("command.execute.failed", append(args, "error", info.Error)...)
	}
}
