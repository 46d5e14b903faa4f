package estimatecmd

import (
	"github.com/goliatone/go-agency-site/internal/estimate"
)

const calculateMessageType = "site.estimate.calculate"

// CalculateEstimateCommand asks for a project estimate. OnComplete receives
// the computed estimate when set.
type CalculateEstimateCommand struct {
	ProjectType      string   `json:"projectType"`
	Scale            string   `json:"scale"`
	Features         []string `json:"features,omitempty"`
	TimelinePriority int      `json:"timelinePriority"`
	SupportPlan      string   `json:"supportPlan,omitempty"`

	OnComplete func(*estimate.Estimate) `json:"-"`
}

// Type implements command.Message.
func (CalculateEstimateCommand) Type() string { return calculateMessageType }

// Validate checks the normalized request so aliases such as "small" pass.
func (cmd CalculateEstimateCommand) Validate() error {
	return cmd.Request().Normalize().Validate()
}

// Request converts the command into a calculator request.
func (cmd CalculateEstimateCommand) Request() estimate.Request {
	return estimate.Request{
		ProjectType:      cmd.ProjectType,
		Scale:            cmd.Scale,
		Features:         append([]string(nil), cmd.Features...),
		TimelinePriority: cmd.TimelinePriority,
		SupportPlan:      cmd.SupportPlan,
	}
}
