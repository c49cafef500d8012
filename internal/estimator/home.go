package estimator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/service"
)

// Annual electricity consumption by home size, in kWh.
var homeBaseConsumption = map[model.HomeSize]float64{
	model.HomeSmall:  8000,
	model.HomeMedium: 12000,
	model.HomeLarge:  20000,
}

var homeEfficiencyMultipliers = map[model.EfficiencyTier]float64{
	model.EfficiencyHigh:     0.7,
	model.EfficiencyStandard: 1.0,
	model.EfficiencyLow:      1.4,
}

var homeSizeRules = []keywordRule[model.HomeSize]{
	{value: model.HomeLarge, keywords: []string{"mansion", "large house", "big home", "5 bedroom", "6 bedroom"}},
	{value: model.HomeSmall, keywords: []string{"apartment", "studio", "small", "1 bedroom", "2 bedroom"}},
	{value: model.HomeMedium, keywords: []string{"house", "home", "3 bedroom", "4 bedroom"}},
}

var homeEfficiencyRules = []keywordRule[model.EfficiencyTier]{
	{value: model.EfficiencyHigh, keywords: []string{"energy efficient", "smart home", "led lights", "solar panels", "heat pump"}},
	{value: model.EfficiencyLow, keywords: []string{"old house", "poor insulation", "electric heating", "incandescent"}},
	{value: model.EfficiencyStandard, keywords: []string{"standard", "average", "typical"}},
}

var renewableKeywords = []string{"solar", "wind", "renewable", "green energy", "solar panels"}

// HomeEstimator analyzes home energy emissions.
type HomeEstimator struct {
	grid    service.GridIntensityProvider
	weather service.WeatherProvider
}

// NewHomeEstimator creates a home energy estimator backed by the given
// grid and weather providers.
func NewHomeEstimator(grid service.GridIntensityProvider, weather service.WeatherProvider) *HomeEstimator {
	return &HomeEstimator{grid: grid, weather: weather}
}

// Domain identifies this estimator.
func (e *HomeEstimator) Domain() model.Domain {
	return model.DomainHome
}

// Analyze infers the home energy pattern and prices it against the local
// grid intensity and climate.
func (e *HomeEstimator) Analyze(ctx context.Context, description string, location model.LocationContext) (*model.DomainAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid, err := e.grid.GridIntensity(ctx, location.Country)
	if err != nil {
		slog.Debug("grid lookup failed, using fallback record", "country", location.Country, "error", err)
		fallback := model.FallbackGridIntensity()
		grid = &fallback
	}

	weather, err := e.weather.CurrentWeather(ctx, location)
	if err != nil {
		slog.Debug("weather lookup failed, using fallback record", "city", location.City, "error", err)
		fallback := model.FallbackWeather()
		weather = &fallback
	}

	pattern := extractHomePattern(description)
	footprint := homeFootprint(pattern, *grid, *weather)

	return &model.DomainAnalysis{
		Domain:          model.DomainHome,
		CarbonFootprint: footprint,
		EfficiencyScore: homeEfficiencyScore(pattern),
		KeyFindings:     homeFindings(pattern, footprint),
		Recommendations: homeRecommendations(pattern, *grid, *weather),
		Home:            &pattern,
		GridIntensity:   grid,
		Weather:         weather,
	}, nil
}

func extractHomePattern(description string) model.HomePattern {
	lowered := strings.ToLower(description)
	pattern := model.DefaultHomePattern()
	pattern.Size = classify(lowered, homeSizeRules, pattern.Size)
	pattern.Efficiency = classify(lowered, homeEfficiencyRules, pattern.Efficiency)
	pattern.RenewableEnergy = containsAny(lowered, renewableKeywords)
	return pattern
}

// homeFootprint estimates annual home emissions in tons CO2.
func homeFootprint(pattern model.HomePattern, grid model.GridIntensity, weather model.WeatherImpact) float64 {
	consumption := homeBaseConsumption[pattern.Size]
	consumption *= homeEfficiencyMultipliers[pattern.Efficiency]

	// Heating and cooling load scales with degree days.
	weatherAdjustment := (weather.HeatingDegreeDays + weather.CoolingDegreeDays) / 10
	consumption += weatherAdjustment * 100

	// On-site renewables cover roughly 70% of consumption.
	if pattern.RenewableEnergy {
		consumption *= 0.3
	}

	// gCO2/kWh to tons per year.
	footprint := (consumption * grid.CarbonIntensity / 1000) / 1000
	return common.Round(footprint, 2)
}

func homeEfficiencyScore(pattern model.HomePattern) float64 {
	score := 0.5

	switch pattern.Size {
	case model.HomeSmall:
		score += 0.3
	case model.HomeLarge:
		score -= 0.2
	}

	switch pattern.Efficiency {
	case model.EfficiencyHigh:
		score += 0.3
	case model.EfficiencyLow:
		score -= 0.3
	}

	if pattern.RenewableEnergy {
		score += 0.4
	}

	return clampUnit(score)
}

func homeRecommendations(pattern model.HomePattern, grid model.GridIntensity, weather model.WeatherImpact) []model.Recommendation {
	var recommendations []model.Recommendation

	if !pattern.RenewableEnergy && grid.FossilFreePercent < 50 {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Install solar panels",
			Impact:       "Reduce home emissions by 70-90%",
			CostImpact:   "High initial investment, 6-8 year payback",
			Priority:     model.PriorityHigh,
			CO2Reduction: "8-12 tons/year",
		})
	}

	if weather.HeatingDegreeDays > 5 || weather.CoolingDegreeDays > 5 {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Install heat pump system",
			Impact:       "Reduce heating/cooling emissions by 50-70%",
			CostImpact:   "Medium investment, 4-6 year payback",
			Priority:     model.PriorityMedium,
			CO2Reduction: "2-4 tons/year",
		})
	}

	if pattern.Efficiency == model.EfficiencyLow {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Upgrade insulation and windows",
			Impact:       "Reduce energy needs by 30-50%",
			CostImpact:   "Medium investment, 3-5 year payback",
			Priority:     model.PriorityMedium,
			CO2Reduction: "1-3 tons/year",
		})
	}

	recommendations = append(recommendations, model.Recommendation{
		Action:       "Install smart thermostat and LED lighting",
		Impact:       "Reduce energy consumption by 15-25%",
		CostImpact:   "Low investment, 1-2 year payback",
		Priority:     model.PriorityLow,
		CO2Reduction: "0.5-1.5 tons/year",
	})

	return recommendations
}

func homeFindings(pattern model.HomePattern, footprint float64) []string {
	var findings []string

	if footprint > 5 {
		findings = append(findings, "High home energy emissions detected")
	} else if footprint < 2 {
		findings = append(findings, "Excellent home energy efficiency")
	}

	if !pattern.RenewableEnergy {
		findings = append(findings, "No renewable energy sources identified")
	}

	if pattern.Efficiency == model.EfficiencyLow {
		findings = append(findings, "Significant efficiency improvement potential")
	}

	return findings
}
