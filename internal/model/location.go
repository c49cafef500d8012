// Package model defines the core domain models used throughout the application.
package model

// LocationContext identifies where the user lives. It is resolved once per
// analysis request and treated as read-only by every downstream stage.
type LocationContext struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// DefaultLocation is the fallback used whenever resolution fails.
func DefaultLocation() LocationContext {
	return LocationContext{
		City:      "Tokyo",
		Country:   "Japan",
		Latitude:  35.6762,
		Longitude: 139.6503,
	}
}
