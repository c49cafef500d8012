// Package location resolves free-text lifestyle descriptions to a known
// city context.
package location

import (
	"strings"

	"github.com/verdantlabs/verdant/internal/model"
)

// knownCities is checked in order; the first city mentioned in the
// description wins.
var knownCities = []model.LocationContext{
	{City: "Tokyo", Country: "Japan", Latitude: 35.6762, Longitude: 139.6503},
	{City: "New York", Country: "United States", Latitude: 40.7128, Longitude: -74.0060},
	{City: "London", Country: "United Kingdom", Latitude: 51.5074, Longitude: -0.1278},
	{City: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522},
	{City: "Berlin", Country: "Germany", Latitude: 52.5200, Longitude: 13.4050},
	{City: "Sydney", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093},
	{City: "San Francisco", Country: "United States", Latitude: 37.7749, Longitude: -122.4194},
	{City: "Los Angeles", Country: "United States", Latitude: 34.0522, Longitude: -118.2437},
	{City: "Chicago", Country: "United States", Latitude: 41.8781, Longitude: -87.6298},
	{City: "Boston", Country: "United States", Latitude: 42.3601, Longitude: -71.0589},
	{City: "Seattle", Country: "United States", Latitude: 47.6062, Longitude: -122.3321},
}

// Resolver extracts a location from a lifestyle description.
type Resolver struct{}

// NewResolver creates a location resolver over the built-in city table.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the first known city mentioned in the description, or the
// default location when none is found.
func (r *Resolver) Resolve(description string) model.LocationContext {
	lowered := strings.ToLower(description)
	for _, city := range knownCities {
		if strings.Contains(lowered, strings.ToLower(city.City)) {
			return city
		}
	}
	return model.DefaultLocation()
}
