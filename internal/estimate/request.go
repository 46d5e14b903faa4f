package estimate

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request describes the project to estimate.
type Request struct {
	ProjectType      string   `json:"projectType"`
	Scale            string   `json:"scale"`
	Features         []string `json:"features"`
	TimelinePriority int      `json:"timelinePriority"`
	SupportPlan      string   `json:"supportPlan,omitempty"`
}

// Normalize trims and lowercases enum values, resolves scale aliases,
// defaults the support plan and drops duplicate or blank feature ids.
func (r Request) Normalize() Request {
	out := Request{
		ProjectType:      strings.ToLower(strings.TrimSpace(r.ProjectType)),
		Scale:            string(NormalizeScale(r.Scale)),
		TimelinePriority: r.TimelinePriority,
		SupportPlan:      strings.ToLower(strings.TrimSpace(r.SupportPlan)),
		Features:         []string{},
	}
	if out.SupportPlan == "" {
		out.SupportPlan = string(SupportNone)
	}
	seen := make(map[string]struct{}, len(r.Features))
	for _, feature := range r.Features {
		id := strings.TrimSpace(feature)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out.Features = append(out.Features, id)
	}
	return out
}

// Validate checks a normalized request.
func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProjectType, validation.Required, validation.In(stringValues(projectTypes)...)),
		validation.Field(&r.Scale, validation.Required, validation.In(stringValues(scales)...)),
		validation.Field(&r.TimelinePriority, validation.Required, validation.In(1, 2, 3)),
		validation.Field(&r.Features, validation.Length(0, 32), validation.Each(validation.Length(1, 64))),
		validation.Field(&r.SupportPlan, validation.In(stringValues(supportPlans)...)),
	)
}

func stringValues[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
