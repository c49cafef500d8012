package providers

import (
	"context"
	"fmt"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

// cityClimate holds representative temperatures per known city.
type cityClimate struct {
	current float64
	max     float64
	min     float64
}

var climateRecords = map[string]cityClimate{
	"Tokyo":         {current: 22, max: 28, min: 18},
	"New York":      {current: 18, max: 24, min: 12},
	"London":        {current: 14, max: 18, min: 10},
	"Paris":         {current: 16, max: 21, min: 11},
	"Berlin":        {current: 13, max: 18, min: 8},
	"Sydney":        {current: 21, max: 26, min: 16},
	"San Francisco": {current: 16, max: 20, min: 12},
	"Los Angeles":   {current: 23, max: 28, min: 17},
	"Chicago":       {current: 12, max: 18, min: 6},
	"Boston":        {current: 13, max: 19, min: 7},
	"Seattle":       {current: 12, max: 17, min: 8},
}

// WeatherTable resolves city locations to weather impact records. Heating
// degree days accrue below 18C, cooling degree days above 24C.
type WeatherTable struct{}

// NewWeatherTable creates the static weather provider.
func NewWeatherTable() *WeatherTable {
	return &WeatherTable{}
}

// CurrentWeather returns the weather record for the location's city.
// Unknown cities return ErrUnknownLocation; the caller substitutes its
// fallback record.
func (w *WeatherTable) CurrentWeather(ctx context.Context, location model.LocationContext) (*model.WeatherImpact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	climate, ok := climateRecords[location.City]
	if !ok {
		return nil, fmt.Errorf("%w: no climate record for %q", common.ErrUnknownLocation, location.City)
	}

	return &model.WeatherImpact{
		CurrentTemperature: climate.current,
		MaxTemperature:     climate.max,
		MinTemperature:     climate.min,
		HeatingDegreeDays:  max(0, 18-climate.current),
		CoolingDegreeDays:  max(0, climate.current-24),
		Source:             "climate_table",
	}, nil
}
