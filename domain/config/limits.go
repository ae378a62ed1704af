// Package config holds the configurable content rules applied to recipe
// payloads before they go out to the backend.
package config

// Limits bounds the size and shape of a recipe payload.
type Limits struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxIngredients       int
	MaxServings          int
	MaxPrepMinutes       int
}

// DefaultLimits returns the limits matching what the backend accepts.
func DefaultLimits() Limits {
	return Limits{
		MaxTitleLength:       200,
		MaxDescriptionLength: 5000,
		MaxIngredients:       100,
		MaxServings:          100,
		MaxPrepMinutes:       10080, // one week
	}
}
