package estimatecmd

import (
	"errors"

	"github.com/goliatone/go-agency-site/internal/commands"
	"github.com/goliatone/go-agency-site/internal/estimate"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// HandlerSet groups the estimate command handlers produced by RegisterEstimateCommands.
type HandlerSet struct {
	Calculate *CalculateEstimateHandler
}

// RegisterEstimateCommands builds the estimate handlers and registers them
// with reg when it is non-nil.
func RegisterEstimateCommands(reg commands.CommandRegistry, service estimate.Service, provider interfaces.LoggerProvider, opts ...commands.HandlerOption[CalculateEstimateCommand]) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("estimate command registration: service is nil")
	}

	logger := commands.CommandLogger(provider, "estimate")
	calculate := NewCalculateEstimateHandler(service, logger, opts...)

	if reg != nil {
		if err := reg.RegisterCommand(calculate); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Calculate: calculate}, nil
}
