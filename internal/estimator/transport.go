package estimator

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/service"
)

// Vehicle emission factors in kg CO2 per km.
var vehicleEmissionFactors = map[model.VehicleType]float64{
	model.VehiclePrivateJet: 2.5,
	model.VehicleHelicopter: 1.8,
	model.VehicleLuxuryCar:  0.35,
	model.VehicleSUV:        0.25,
	model.VehicleSedan:      0.18,
	model.VehicleHybrid:     0.12,
	model.VehicleElectric:   0.05,
	model.VehicleMotorcycle: 0.15,
	model.VehicleBus:        0.08,
	model.VehicleTrain:      0.04,
	model.VehicleBike:       0.0,
	model.VehicleWalk:       0.0,
}

var vehicleEfficiencyScores = map[model.VehicleType]float64{
	model.VehicleWalk:       1.0,
	model.VehicleBike:       1.0,
	model.VehicleElectric:   0.9,
	model.VehicleTrain:      0.8,
	model.VehicleHybrid:     0.7,
	model.VehicleBus:        0.6,
	model.VehicleSedan:      0.4,
	model.VehicleMotorcycle: 0.4,
	model.VehicleSUV:        0.2,
	model.VehicleLuxuryCar:  0.1,
	model.VehiclePrivateJet: 0.0,
	model.VehicleHelicopter: 0.0,
}

// vehicleRules run from most to least specific. Motorcycle precedes bike so
// that "motorbike" does not classify as a bicycle; the generic sedan rule
// ("car", "drive") goes last.
var vehicleRules = []keywordRule[model.VehicleType]{
	{value: model.VehiclePrivateJet, keywords: []string{"private jet", "jet", "private plane"}},
	{value: model.VehicleHelicopter, keywords: []string{"helicopter", "chopper"}},
	{value: model.VehicleLuxuryCar, keywords: []string{"luxury car", "ferrari", "lamborghini", "porsche", "bentley", "rolls royce"}},
	{value: model.VehicleSUV, keywords: []string{"suv", "v8", "v12", "truck", "pickup"}},
	{value: model.VehicleHybrid, keywords: []string{"hybrid", "prius", "camry hybrid"}},
	{value: model.VehicleElectric, keywords: []string{"tesla", "electric car", "ev", "electric vehicle"}},
	{value: model.VehicleMotorcycle, keywords: []string{"motorcycle", "motorbike", "scooter"}},
	{value: model.VehicleBike, keywords: []string{"bicycle", "cycling", "bike"}},
	{value: model.VehicleBus, keywords: []string{"bus"}},
	{value: model.VehicleTrain, keywords: []string{"train", "subway", "metro"}},
	{value: model.VehicleWalk, keywords: []string{"walk", "walking"}},
	{value: model.VehicleSedan, keywords: []string{"car", "sedan", "drive"}},
}

var (
	flightKeywords          = []string{"fly", "flight", "airplane", "plane", "travel"}
	luxuryTransportKeywords = []string{"luxury", "private", "exclusive", "premium", "first class"}

	distancePattern = regexp.MustCompile(`(\d+)\s*(km|mile|miles)`)
)

// TransportEstimator analyzes travel emissions.
type TransportEstimator struct {
	infra service.TransportInfraProvider
}

// NewTransportEstimator creates a transport estimator backed by the given
// infrastructure provider.
func NewTransportEstimator(infra service.TransportInfraProvider) *TransportEstimator {
	return &TransportEstimator{infra: infra}
}

// Domain identifies this estimator.
func (e *TransportEstimator) Domain() model.Domain {
	return model.DomainTransport
}

// Analyze infers the travel pattern and prices vehicle and flight emissions.
func (e *TransportEstimator) Analyze(ctx context.Context, description string, location model.LocationContext) (*model.DomainAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infra, err := e.infra.Infrastructure(ctx, location.City)
	if err != nil {
		slog.Debug("transport infrastructure lookup failed, using default record", "city", location.City, "error", err)
		fallback := model.DefaultTransportInfra()
		infra = &fallback
	}

	pattern := extractTransportPattern(description)
	footprint := transportFootprint(pattern)

	return &model.DomainAnalysis{
		Domain:          model.DomainTransport,
		CarbonFootprint: footprint,
		EfficiencyScore: transportEfficiencyScore(pattern),
		KeyFindings:     transportFindings(pattern, footprint),
		Recommendations: transportRecommendations(pattern, *infra),
		Transport:       &pattern,
		LocalOptions:    infra,
		Optimizations:   routeOptimizations(pattern, *infra),
		Alternatives:    transportAlternatives(pattern, *infra),
	}, nil
}

func extractTransportPattern(description string) model.TransportPattern {
	lowered := strings.ToLower(description)
	pattern := model.DefaultTransportPattern()
	pattern.PrimaryVehicle = classify(lowered, vehicleRules, pattern.PrimaryVehicle)

	if containsAny(lowered, flightKeywords) {
		switch {
		case strings.Contains(lowered, "daily"):
			pattern.WeeklyFlights = 7
			pattern.FlightKm = 1000
		case strings.Contains(lowered, "weekly"):
			pattern.WeeklyFlights = 1
			pattern.FlightKm = 2000
		case strings.Contains(lowered, "private jet"):
			pattern.WeeklyFlights = 2
			pattern.FlightKm = 3000
		}
	}

	if match := distancePattern.FindStringSubmatch(lowered); match != nil {
		distance, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			if strings.HasPrefix(match[2], "mile") {
				distance *= 1.6
			}
			pattern.DailyDistanceKm = distance
		}
	}

	pattern.LuxuryTransport = containsAny(lowered, luxuryTransportKeywords)

	return pattern
}

// transportFootprint estimates annual travel emissions in tons CO2.
func transportFootprint(pattern model.TransportPattern) float64 {
	factor, ok := vehicleEmissionFactors[pattern.PrimaryVehicle]
	if !ok {
		factor = 0.18
	}

	dailyEmissions := pattern.DailyDistanceKm * factor
	annualVehicle := dailyEmissions * 365 / 1000

	flightFactor := 0.25
	if pattern.PrimaryVehicle == model.VehiclePrivateJet {
		flightFactor = 2.5
	}
	annualFlights := float64(pattern.WeeklyFlights) * pattern.FlightKm * flightFactor * 52 / 1000

	return common.Round(annualVehicle+annualFlights, 2)
}

func transportEfficiencyScore(pattern model.TransportPattern) float64 {
	score, ok := vehicleEfficiencyScores[pattern.PrimaryVehicle]
	if !ok {
		score = 0.4
	}

	switch {
	case pattern.DailyDistanceKm > 100:
		score *= 0.5
	case pattern.DailyDistanceKm > 50:
		score *= 0.7
	}

	if pattern.WeeklyFlights > 0 {
		score *= 0.3
	}

	return clampUnit(score)
}

func routeOptimizations(pattern model.TransportPattern, infra model.TransportInfra) []model.RouteOptimization {
	var optimizations []model.RouteOptimization

	if pattern.DailyDistanceKm > 50 {
		optimizations = append(optimizations, model.RouteOptimization{
			Type:               "route_optimization",
			Suggestion:         "Combine trips and optimize routes",
			PotentialReduction: "15-25%",
			Implementation:     "Use route planning apps, combine errands",
		})
	}

	if infra.PublicTransportQuality == "good" || infra.PublicTransportQuality == "excellent" {
		optimizations = append(optimizations, model.RouteOptimization{
			Type:               "modal_shift",
			Suggestion:         "Integrate public transport for longer distances",
			PotentialReduction: "40-60%",
			Implementation:     "Use public transport for commuting, car for specific needs",
		})
	}

	if infra.EVChargingStations > 1000 {
		optimizations = append(optimizations, model.RouteOptimization{
			Type:               "electrification",
			Suggestion:         "Switch to electric vehicle",
			PotentialReduction: "70-90%",
			Implementation:     "Abundant charging infrastructure available",
		})
	}

	return optimizations
}

func transportAlternatives(pattern model.TransportPattern, infra model.TransportInfra) []model.TransportAlternative {
	var alternatives []model.TransportAlternative

	switch pattern.PrimaryVehicle {
	case model.VehicleLuxuryCar, model.VehicleSUV, model.VehicleSedan:
		feasibility := "medium"
		if infra.EVChargingStations > 500 {
			feasibility = "high"
		}
		alternatives = append(alternatives, model.TransportAlternative{
			Alternative:       "Electric Vehicle",
			EmissionReduction: "70-90%",
			CostImpact:        "Higher upfront, lower operating costs",
			Feasibility:       feasibility,
			AnnualSavings:     "3-8 tons CO2",
		})
	}

	if infra.PublicTransportQuality == "good" || infra.PublicTransportQuality == "excellent" {
		alternatives = append(alternatives, model.TransportAlternative{
			Alternative:       "Public Transport + Car Sharing",
			EmissionReduction: "60-80%",
			CostImpact:        "Significant cost savings",
			Feasibility:       "high",
			AnnualSavings:     "4-10 tons CO2",
		})
	}

	if infra.BikeInfrastructure == "good" || infra.BikeInfrastructure == "excellent" {
		alternatives = append(alternatives, model.TransportAlternative{
			Alternative:       "Bike + Public Transport Combo",
			EmissionReduction: "80-95%",
			CostImpact:        "Major cost savings",
			Feasibility:       "medium",
			AnnualSavings:     "6-12 tons CO2",
		})
	}

	if pattern.WeeklyFlights > 0 {
		alternatives = append(alternatives, model.TransportAlternative{
			Alternative:       "High-speed rail for regional travel",
			EmissionReduction: "85-95%",
			CostImpact:        "Often comparable to flights",
			Feasibility:       "depends on routes",
			AnnualSavings:     "10-50 tons CO2",
		})
	}

	return alternatives
}

func transportRecommendations(pattern model.TransportPattern, infra model.TransportInfra) []model.Recommendation {
	var recommendations []model.Recommendation

	switch pattern.PrimaryVehicle {
	case model.VehiclePrivateJet, model.VehicleHelicopter:
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Replace private aviation with commercial flights and rail",
			Impact:       "Reduce transport emissions by 80-95%",
			CostImpact:   "Major cost savings",
			Priority:     model.PriorityHigh,
			CO2Reduction: "50-200 tons/year",
		})
	case model.VehicleLuxuryCar, model.VehicleSUV, model.VehicleSedan:
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Switch to electric vehicle",
			Impact:       "Reduce vehicle emissions by 70-90%",
			CostImpact:   "High initial, significant fuel savings",
			Priority:     model.PriorityHigh,
			CO2Reduction: "3-8 tons/year",
		})
	}

	if infra.PublicTransportQuality == "good" || infra.PublicTransportQuality == "excellent" {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Use public transport for daily commuting",
			Impact:       "Reduce commute emissions by 60-80%",
			CostImpact:   "Cost savings immediately",
			Priority:     model.PriorityHigh,
			CO2Reduction: "1-3 tons/year",
		})
	}

	if pattern.WeeklyFlights > 0 {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Shift regional flights to high-speed rail",
			Impact:       "Reduce flight emissions by 85-95%",
			CostImpact:   "Often comparable to flights",
			Priority:     model.PriorityMedium,
			CO2Reduction: "10-50 tons/year",
		})
	}

	recommendations = append(recommendations, model.Recommendation{
		Action:       "Combine trips and use route planning",
		Impact:       "Reduce driving distance by 15-25%",
		CostImpact:   "Low cost, immediate savings",
		Priority:     model.PriorityLow,
		CO2Reduction: "0.3-0.8 tons/year",
	})

	return recommendations
}

func transportFindings(pattern model.TransportPattern, footprint float64) []string {
	var findings []string

	if footprint > 10 {
		findings = append(findings, "Extremely high transport emissions detected")
	} else if footprint > 5 {
		findings = append(findings, "High transport emissions - major improvement potential")
	}

	if pattern.PrimaryVehicle == model.VehiclePrivateJet || pattern.PrimaryVehicle == model.VehicleHelicopter {
		findings = append(findings, "Ultra-luxury transport with massive carbon impact")
	}

	if pattern.WeeklyFlights > 1 {
		findings = append(findings, "Frequent flying is primary emissions source")
	}

	if pattern.DailyDistanceKm > 100 {
		findings = append(findings, "Excessive daily travel distance")
	}

	return findings
}
