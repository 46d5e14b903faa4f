package estimate

import "math"

// Currency of every amount produced by the calculator.
const Currency = "EUR"

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Result is the outcome of a calculation.
type Result struct {
	ProjectType      ProjectType `json:"projectType"`
	Scale            Scale       `json:"scale"`
	Features         []string    `json:"features"`
	TimelinePriority int         `json:"timelinePriority"`
	SupportPlan      SupportPlan `json:"supportPlan"`

	BasePrice      float64 `json:"basePrice"`
	FeaturesCost   float64 `json:"featuresCost"`
	RushMultiplier float64 `json:"rushMultiplier"`
	Total          float64 `json:"total"`
	PriceRange     Range   `json:"priceRange"`
	Weeks          Range   `json:"weeks"`
	MonthlySupport float64 `json:"monthlySupport"`
	Currency       string  `json:"currency"`
}

// Calculator computes estimates. It holds no mutable state.
type Calculator struct {
	band float64
}

// NewCalculator returns a calculator quoting prices within ±band of the total.
func NewCalculator(band float64) Calculator {
	if band <= 0 || band >= 1 {
		band = DefaultPriceBand
	}
	return Calculator{band: band}
}

// Band reports the relative width of the price range.
func (c Calculator) Band() float64 {
	if c.band == 0 {
		return DefaultPriceBand
	}
	return c.band
}

// Calculate is total over validated requests: unknown feature ids cost
// nothing and the request is normalized first.
func (c Calculator) Calculate(req Request) Result {
	req = req.Normalize()
	projectType := ProjectType(req.ProjectType)
	scale := Scale(req.Scale)
	band := c.Band()

	basePrice := math.Round(webPrice[scale] * typeMultiplier[projectType])

	var featuresCost float64
	for _, id := range req.Features {
		featuresCost += PriceImpact(projectType, id)
	}

	rush := rushMultiplier[req.TimelinePriority]
	total := clean((basePrice + featuresCost) * rush)

	featureWeeks := (len(req.Features) + 1) / 2
	totalWeeks := clean(float64(baseWeeks[scale]+featureWeeks) * timeMultiplier[req.TimelinePriority])
	minWeeks := int(math.Floor(clean(totalWeeks * 0.9)))
	if minWeeks < 1 {
		minWeeks = 1
	}

	return Result{
		ProjectType:      projectType,
		Scale:            scale,
		Features:         req.Features,
		TimelinePriority: req.TimelinePriority,
		SupportPlan:      SupportPlan(req.SupportPlan),
		BasePrice:        basePrice,
		FeaturesCost:     featuresCost,
		RushMultiplier:   rush,
		Total:            total,
		PriceRange: Range{
			Min: int(math.Round(clean(total * (1 - band)))),
			Max: int(math.Round(clean(total * (1 + band)))),
		},
		Weeks: Range{
			Min: minWeeks,
			Max: int(math.Ceil(clean(totalWeeks * 1.1))),
		},
		MonthlySupport: supportPrice[SupportPlan(req.SupportPlan)],
		Currency:       Currency,
	}
}

// clean drops binary float noise (2*1.1 = 2.2000000000000002) before
// floor, ceil or round are applied.
func clean(value float64) float64 {
	return math.Round(value*1e6) / 1e6
}
