package estimatecmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-agency-site/internal/commands"
	"github.com/goliatone/go-agency-site/internal/estimate"
	"github.com/goliatone/go-agency-site/internal/logging"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

const calculateOperation = "estimate.calculate"

// ErrServiceRequired is returned when no estimate service is wired.
var ErrServiceRequired = errors.New("estimate command: service is nil")

var _ command.Commander[CalculateEstimateCommand] = (*CalculateEstimateHandler)(nil)

// CalculateEstimateHandler runs the estimate service through the shared command handler.
type CalculateEstimateHandler struct {
	inner *commands.Handler[CalculateEstimateCommand]
}

// NewCalculateEstimateHandler creates a handler bound to the supplied estimate service.
func NewCalculateEstimateHandler(service estimate.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CalculateEstimateCommand]) *CalculateEstimateHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CalculateEstimateCommand) error {
		if service == nil {
			return ErrServiceRequired
		}

		result, err := service.Estimate(ctx, msg.Request())
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"estimate_id": result.ID,
			"total":       result.Total,
			"weeks_min":   result.Weeks.Min,
			"weeks_max":   result.Weeks.Max,
		}).Info("estimate.command.calculate.completed")

		if msg.OnComplete != nil {
			msg.OnComplete(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CalculateEstimateCommand]{
		commands.WithLogger[CalculateEstimateCommand](baseLogger),
		commands.WithOperation[CalculateEstimateCommand](calculateOperation),
		commands.WithMessageFields(func(msg CalculateEstimateCommand) map[string]any {
			return map[string]any{
				"project_type":      msg.ProjectType,
				"scale":             msg.Scale,
				"feature_count":     len(msg.Features),
				"timeline_priority": msg.TimelinePriority,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CalculateEstimateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CalculateEstimateCommand].
func (h *CalculateEstimateHandler) Execute(ctx context.Context, msg CalculateEstimateCommand) error {
	return h.inner.Execute(ctx, msg)
}
