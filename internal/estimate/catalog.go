package estimate

import "strings"

// ProjectType identifies the kind of project being estimated.
type ProjectType string

const (
	ProjectChatbot    ProjectType = "chatbot"
	ProjectAutomation ProjectType = "automation"
	ProjectWeb        ProjectType = "web"
	ProjectCombined   ProjectType = "combined"
)

// Scale is the size tier of a project.
type Scale string

const (
	ScaleBasic    Scale = "basic"
	ScaleAdvanced Scale = "advanced"
	ScaleCustom   Scale = "custom"
)

// SupportPlan is the optional monthly support tier.
type SupportPlan string

const (
	SupportNone     SupportPlan = "none"
	SupportBasic    SupportPlan = "basic"
	SupportStandard SupportPlan = "standard"
	SupportPremium  SupportPlan = "premium"
)

// DefaultPriceBand is the relative width of the quoted price range.
const DefaultPriceBand = 0.10

// Feature is an optional add-on with a fixed price impact.
type Feature struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var projectTypes = []ProjectType{ProjectChatbot, ProjectAutomation, ProjectWeb, ProjectCombined}

var scales = []Scale{ScaleBasic, ScaleAdvanced, ScaleCustom}

var scaleAliases = map[string]Scale{
	"small":  ScaleBasic,
	"medium": ScaleAdvanced,
	"large":  ScaleCustom,
}

var supportPlans = []SupportPlan{SupportNone, SupportBasic, SupportStandard, SupportPremium}

// webPrice holds the published prices; other project types scale them.
var webPrice = map[Scale]float64{
	ScaleBasic:    650,
	ScaleAdvanced: 1250,
	ScaleCustom:   2500,
}

var typeMultiplier = map[ProjectType]float64{
	ProjectWeb:        1.0,
	ProjectChatbot:    0.9,
	ProjectAutomation: 1.1,
	ProjectCombined:   1.6,
}

var rushMultiplier = map[int]float64{1: 1.0, 2: 1.25, 3: 1.5}

var timeMultiplier = map[int]float64{1: 1.0, 2: 0.8, 3: 0.6}

var baseWeeks = map[Scale]int{
	ScaleBasic:    2,
	ScaleAdvanced: 4,
	ScaleCustom:   8,
}

var supportPrice = map[SupportPlan]float64{
	SupportNone:     0,
	SupportBasic:    29,
	SupportStandard: 69,
	SupportPremium:  129,
}

var featureCatalog = map[ProjectType][]Feature{
	ProjectWeb: {
		{ID: "web_feature1", Name: "Contact form", Price: 100},
		{ID: "web_feature2", Name: "Multilingual", Price: 250},
		{ID: "web_feature3", Name: "Blog", Price: 350},
		{ID: "web_feature4", Name: "Webshop", Price: 800},
		{ID: "web_feature5", Name: "SEO optimisation", Price: 200},
		{ID: "web_feature6", Name: "Booking system", Price: 450},
	},
	ProjectChatbot: {
		{ID: "chatbot_feature1", Name: "Knowledge base", Price: 300},
		{ID: "chatbot_feature2", Name: "Multichannel", Price: 400},
		{ID: "chatbot_feature3", Name: "Human handoff", Price: 250},
		{ID: "chatbot_feature4", Name: "Analytics", Price: 350},
	},
	ProjectAutomation: {
		{ID: "automation_feature1", Name: "CRM integration", Price: 400},
		{ID: "automation_feature2", Name: "Email workflows", Price: 250},
		{ID: "automation_feature3", Name: "Document processing", Price: 500},
		{ID: "automation_feature4", Name: "Reporting", Price: 300},
	},
}

// FeaturesFor returns the catalog of a project type. Combined projects can
// pick from every catalog.
func FeaturesFor(projectType ProjectType) []Feature {
	if projectType == ProjectCombined {
		var all []Feature
		for _, pt := range []ProjectType{ProjectWeb, ProjectChatbot, ProjectAutomation} {
			all = append(all, featureCatalog[pt]...)
		}
		return all
	}
	out := make([]Feature, len(featureCatalog[projectType]))
	copy(out, featureCatalog[projectType])
	return out
}

// PriceImpact returns the price of a feature for a project type; unknown ids cost 0.
func PriceImpact(projectType ProjectType, featureID string) float64 {
	for _, feature := range FeaturesFor(projectType) {
		if feature.ID == featureID {
			return feature.Price
		}
	}
	return 0
}

// NormalizeScale maps aliases (small, medium, large) onto canonical tiers.
// Unknown values are returned lowercased so validation can reject them.
func NormalizeScale(raw string) Scale {
	value := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := scaleAliases[value]; ok {
		return alias
	}
	return Scale(value)
}

// Catalog is the public description of the pricing tables.
type Catalog struct {
	ProjectTypes    []ProjectType             `json:"projectTypes"`
	Scales          []Scale                   `json:"scales"`
	ScaleAliases    map[string]Scale          `json:"scaleAliases"`
	ScalePrices     map[Scale]float64         `json:"scalePrices"`
	TypeMultipliers map[ProjectType]float64   `json:"typeMultipliers"`
	Features        map[ProjectType][]Feature `json:"features"`
	RushMultipliers map[int]float64           `json:"rushMultipliers"`
	SupportPlans    map[SupportPlan]float64   `json:"supportPlans"`
	PriceBand       float64                   `json:"priceBand"`
	Currency        string                    `json:"currency"`
}

// NewCatalog snapshots the pricing tables for the given price band.
func NewCatalog(band float64) Catalog {
	if band <= 0 {
		band = DefaultPriceBand
	}
	features := make(map[ProjectType][]Feature, len(projectTypes))
	for _, pt := range projectTypes {
		features[pt] = FeaturesFor(pt)
	}
	return Catalog{
		ProjectTypes:    append([]ProjectType(nil), projectTypes...),
		Scales:          append([]Scale(nil), scales...),
		ScaleAliases:    copyMap(scaleAliases),
		ScalePrices:     copyMap(webPrice),
		TypeMultipliers: copyMap(typeMultiplier),
		Features:        features,
		RushMultipliers: copyMap(rushMultiplier),
		SupportPlans:    copyMap(supportPrice),
		PriceBand:       band,
		Currency:        Currency,
	}
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
