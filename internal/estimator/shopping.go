package estimator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/service"
)

// Average embodied emissions per item, in kg CO2.
var productEmissions = map[string]float64{
	"clothing":    8.0,
	"electronics": 300.0,
	"furniture":   150.0,
	"appliances":  500.0,
	"books":       2.5,
	"cosmetics":   3.0,
}

var shoppingLuxuryKeywords = []string{"luxury", "designer", "premium", "expensive", "high-end", "exclusive"}

var fastFashionKeywords = []string{"new clothes", "fashion", "shopping spree", "trendy", "latest style"}

var techUpgradeKeywords = []string{"latest phone", "new laptop", "upgrade", "newest model", "tech enthusiast"}

var secondHandKeywords = []string{"second hand", "thrift", "vintage", "refurbished", "eco-friendly", "sustainable"}

var shoppingFrequencyRules = []keywordRule[model.Frequency]{
	{value: model.FrequencyDaily, keywords: []string{"daily shopping", "shop every day"}},
	{value: model.FrequencyWeekly, keywords: []string{"weekly", "once a week", "weekend shopping"}},
	{value: model.FrequencyMonthly, keywords: []string{"monthly", "once a month", "rarely shop"}},
}

var shoppingFrequencyMultipliers = map[model.Frequency]float64{
	model.FrequencyDaily:   2.0,
	model.FrequencyWeekly:  1.0,
	model.FrequencyMonthly: 0.5,
}

// ShoppingEstimator analyzes consumption emissions and circular economy
// opportunities.
type ShoppingEstimator struct {
	infra service.ShoppingInfraProvider
}

// NewShoppingEstimator creates a shopping estimator backed by the given
// infrastructure provider.
func NewShoppingEstimator(infra service.ShoppingInfraProvider) *ShoppingEstimator {
	return &ShoppingEstimator{infra: infra}
}

// Domain identifies this estimator.
func (e *ShoppingEstimator) Domain() model.Domain {
	return model.DomainShopping
}

// Analyze infers the consumption pattern and prices annual embodied
// emissions from purchases.
func (e *ShoppingEstimator) Analyze(ctx context.Context, description string, location model.LocationContext) (*model.DomainAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infra, err := e.infra.Infrastructure(ctx, location.City)
	if err != nil {
		slog.Debug("shopping infrastructure lookup failed, using fallback record", "city", location.City, "error", err)
		fallback := model.DefaultShoppingInfra()
		infra = &fallback
	}

	pattern := extractShoppingPattern(description)
	footprint := shoppingFootprint(pattern)
	circular := circularOpportunities(pattern)

	return &model.DomainAnalysis{
		Domain:          model.DomainShopping,
		CarbonFootprint: footprint,
		EfficiencyScore: shoppingEfficiencyScore(pattern),
		KeyFindings:     shoppingFindings(pattern, footprint),
		Recommendations: shoppingRecommendations(pattern, *infra, circular),
		Shopping:        &pattern,
		Stores:          infra,
		Circular:        &circular,
	}, nil
}

func extractShoppingPattern(description string) model.ShoppingPattern {
	lowered := strings.ToLower(description)
	pattern := model.DefaultShoppingPattern()
	pattern.LuxuryPurchases = containsAny(lowered, shoppingLuxuryKeywords)
	pattern.FastFashion = containsAny(lowered, fastFashionKeywords)
	if containsAny(lowered, techUpgradeKeywords) {
		pattern.ElectronicsCycle = model.UpgradeFast
	}
	pattern.SecondHandPreference = containsAny(lowered, secondHandKeywords)
	pattern.Frequency = classify(lowered, shoppingFrequencyRules, pattern.Frequency)
	return pattern
}

// shoppingFootprint estimates annual consumption emissions in tons CO2
// from typical items-per-year purchase volumes.
func shoppingFootprint(pattern model.ShoppingPattern) float64 {
	baseItems := map[string]float64{
		"clothing":    20,
		"electronics": 1,
		"furniture":   0.5,
		"appliances":  0.2,
		"books":       10,
		"cosmetics":   12,
	}

	if pattern.LuxuryPurchases {
		baseItems["clothing"] *= 2
		baseItems["electronics"] *= 1.5
	}
	if pattern.FastFashion {
		baseItems["clothing"] *= 3
	}
	if pattern.ElectronicsCycle == model.UpgradeFast {
		baseItems["electronics"] *= 2
	}

	multiplier := shoppingFrequencyMultipliers[pattern.Frequency]
	if multiplier == 0 {
		multiplier = 1.0
	}

	emissions := 0.0
	for category, items := range baseItems {
		adjusted := items * multiplier
		if category == "clothing" && pattern.SecondHandPreference {
			adjusted *= 0.3
		}
		emissions += adjusted * productEmissions[category]
	}

	return common.Round(emissions/1000, 2)
}

func circularOpportunities(pattern model.ShoppingPattern) model.CircularOpportunities {
	opportunities := model.CircularOpportunities{
		RepairPotential:    "medium",
		ResalePotential:    "medium",
		SharingPotential:   "low",
		UpcyclingPotential: "low",
		RentalPotential:    "low",
	}

	if pattern.LuxuryPurchases {
		opportunities.ResalePotential = "high"
		opportunities.RentalPotential = "high"
	}
	if pattern.ElectronicsCycle == model.UpgradeFast {
		opportunities.RepairPotential = "high"
		opportunities.ResalePotential = "high"
	}
	if pattern.FastFashion {
		opportunities.UpcyclingPotential = "high"
		opportunities.SharingPotential = "medium"
	}

	return opportunities
}

func goodOrExcellent(rating string) bool {
	return rating == "good" || rating == "excellent"
}

func shoppingRecommendations(pattern model.ShoppingPattern, infra model.ShoppingInfra, circular model.CircularOpportunities) []model.Recommendation {
	var recommendations []model.Recommendation

	if !pattern.SecondHandPreference && goodOrExcellent(infra.SecondHandStores) {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Adopt 50% second-hand shopping rule",
			Impact:       "Reduce shopping emissions by 40-60%",
			CostImpact:   "Significant cost savings",
			Priority:     model.PriorityHigh,
			CO2Reduction: "0.3-0.8 tons/year",
		})
	}

	if pattern.FastFashion || pattern.Frequency == model.FrequencyDaily {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Buy fewer, higher-quality items",
			Impact:       "Reduce consumption emissions by 50-70%",
			CostImpact:   "Higher per-item cost, lower total spending",
			Priority:     model.PriorityHigh,
			CO2Reduction: "0.5-1.2 tons/year",
		})
	}

	if goodOrExcellent(infra.RepairServices) {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Repair instead of replace when possible",
			Impact:       "Extend product lifespan by 2-5x",
			CostImpact:   "Lower long-term costs",
			Priority:     model.PriorityMedium,
			CO2Reduction: "0.2-0.6 tons/year",
		})
	}

	if pattern.ElectronicsCycle == model.UpgradeFast {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Extend electronics lifespan to 4-6 years",
			Impact:       "Reduce electronics emissions by 60-80%",
			CostImpact:   "Major cost savings",
			Priority:     model.PriorityHigh,
			CO2Reduction: "0.4-1.0 tons/year",
		})
	}

	if circular.SharingPotential == "medium" || circular.SharingPotential == "high" {
		recommendations = append(recommendations, model.Recommendation{
			Action:       "Use sharing services for occasional-use items",
			Impact:       "Reduce ownership-based emissions by 30-50%",
			CostImpact:   "Lower costs for occasional use",
			Priority:     model.PriorityMedium,
			CO2Reduction: "0.1-0.4 tons/year",
		})
	}

	return recommendations
}

func shoppingEfficiencyScore(pattern model.ShoppingPattern) float64 {
	score := 0.5

	if pattern.SecondHandPreference {
		score += 0.3
	}

	switch pattern.Frequency {
	case model.FrequencyMonthly:
		score += 0.2
	case model.FrequencyDaily:
		score -= 0.3
	}

	if pattern.FastFashion {
		score -= 0.4
	}
	if pattern.LuxuryPurchases {
		score -= 0.2
	}

	switch pattern.ElectronicsCycle {
	case model.UpgradeFast:
		score -= 0.3
	case model.UpgradeSlow:
		score += 0.2
	}

	return clampUnit(score)
}

func shoppingFindings(pattern model.ShoppingPattern, footprint float64) []string {
	var findings []string

	if footprint > 1.5 {
		findings = append(findings, "High consumption-based emissions detected")
	}

	if pattern.FastFashion {
		findings = append(findings, "Fast fashion habits significantly increase carbon impact")
	}

	if pattern.ElectronicsCycle == model.UpgradeFast {
		findings = append(findings, "Frequent electronics upgrades are major emission source")
	}

	if pattern.LuxuryPurchases && !pattern.SecondHandPreference {
		findings = append(findings, "Luxury consumption without circular practices")
	}

	if pattern.SecondHandPreference {
		findings = append(findings, "Excellent circular economy practices already in place")
	}

	return findings
}
