package estimate

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record is a persisted estimate.
type Record struct {
	bun.BaseModel `bun:"table:estimates,alias:est"`

	ID               uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ProjectType      string    `bun:"project_type,notnull" json:"projectType"`
	Scale            string    `bun:"scale,notnull" json:"scale"`
	Features         []string  `bun:"features,type:jsonb" json:"features"`
	TimelinePriority int       `bun:"timeline_priority,notnull" json:"timelinePriority"`
	SupportPlan      string    `bun:"support_plan,notnull" json:"supportPlan"`
	BasePrice        float64   `bun:"base_price,notnull" json:"basePrice"`
	FeaturesCost     float64   `bun:"features_cost,notnull" json:"featuresCost"`
	RushMultiplier   float64   `bun:"rush_multiplier,notnull" json:"rushMultiplier"`
	Total            float64   `bun:"total,notnull" json:"total"`
	PriceMin         int       `bun:"price_min,notnull" json:"priceMin"`
	PriceMax         int       `bun:"price_max,notnull" json:"priceMax"`
	WeeksMin         int       `bun:"weeks_min,notnull" json:"weeksMin"`
	WeeksMax         int       `bun:"weeks_max,notnull" json:"weeksMax"`
	MonthlySupport   float64   `bun:"monthly_support,notnull" json:"monthlySupport"`
	CreatedAt        time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
}

// NewRecord projects a calculation result into a storable record.
func NewRecord(id uuid.UUID, result Result, createdAt time.Time) *Record {
	return &Record{
		ID:               id,
		ProjectType:      string(result.ProjectType),
		Scale:            string(result.Scale),
		Features:         append([]string{}, result.Features...),
		TimelinePriority: result.TimelinePriority,
		SupportPlan:      string(result.SupportPlan),
		BasePrice:        result.BasePrice,
		FeaturesCost:     result.FeaturesCost,
		RushMultiplier:   result.RushMultiplier,
		Total:            result.Total,
		PriceMin:         result.PriceRange.Min,
		PriceMax:         result.PriceRange.Max,
		WeeksMin:         result.Weeks.Min,
		WeeksMax:         result.Weeks.Max,
		MonthlySupport:   result.MonthlySupport,
		CreatedAt:        createdAt,
	}
}

// Estimate rebuilds the logged estimate from the record.
func (r *Record) Estimate() *Estimate {
	return &Estimate{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Result: Result{
			ProjectType:      ProjectType(r.ProjectType),
			Scale:            Scale(r.Scale),
			Features:         append([]string{}, r.Features...),
			TimelinePriority: r.TimelinePriority,
			SupportPlan:      SupportPlan(r.SupportPlan),
			BasePrice:        r.BasePrice,
			FeaturesCost:     r.FeaturesCost,
			RushMultiplier:   r.RushMultiplier,
			Total:            r.Total,
			PriceRange:       Range{Min: r.PriceMin, Max: r.PriceMax},
			Weeks:            Range{Min: r.WeeksMin, Max: r.WeeksMax},
			MonthlySupport:   r.MonthlySupport,
			Currency:         Currency,
		},
	}
}
