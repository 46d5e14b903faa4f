package estimate

import "github.com/goliatone/go-agency-site/internal/validation"

// RequestSchema is the JSON schema for POST /api/estimate bodies. Scale
// aliases are accepted here and normalized later.
func RequestSchema() map[string]any {
	scaleValues := stringValues(scales)
	for alias := range scaleAliases {
		scaleValues = append(scaleValues, alias)
	}
	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []any{"projectType", "scale", "timelinePriority"},
		"properties": map[string]any{
			"projectType": map[string]any{"type": "string", "enum": stringValues(projectTypes)},
			"scale":       map[string]any{"type": "string", "enum": scaleValues},
			"features": map[string]any{
				"type":     "array",
				"maxItems": 32,
				"items":    map[string]any{"type": "string", "minLength": 1, "maxLength": 64},
			},
			"timelinePriority": map[string]any{"type": "integer", "enum": []any{1, 2, 3}},
			"supportPlan":      map[string]any{"type": "string", "enum": stringValues(supportPlans)},
		},
	}
}

var requestSchema = validation.MustCompile(RequestSchema())

// ValidateJSON checks a raw request body against RequestSchema.
func ValidateJSON(body []byte) error {
	return requestSchema.ValidateBytes(body)
}
