package workflow

import (
	"strings"

	"github.com/verdantlabs/verdant/internal/model"
)

var transportIntensityRules = []struct {
	level    string
	keywords []string
}{
	{level: "high", keywords: []string{"private jet", "helicopter", "luxury car", "v8", "v12", "sports car"}},
	{level: "medium", keywords: []string{"car", "drive", "suv", "truck", "motorcycle"}},
	{level: "low", keywords: []string{"bike", "walk", "public transport", "train", "bus"}},
}

var dietLeaningRules = []struct {
	leaning  string
	keywords []string
}{
	{leaning: "meat_heavy", keywords: []string{"wagyu", "steak", "beef", "meat daily", "carnivore"}},
	{leaning: "mixed", keywords: []string{"chicken", "fish", "meat", "omnivore"}},
	{leaning: "plant_based", keywords: []string{"vegan", "vegetarian", "plant-based", "salad"}},
}

var luxuryLevelKeywords = []string{"luxury", "expensive", "premium", "high-end", "private", "exclusive"}

// analyzeLifestyle derives the coarse lifestyle profile used to weight the
// domains. Adjustments apply in order, so a luxury lifestyle overrides the
// transport and diet weightings.
func analyzeLifestyle(description string) model.LifestyleProfile {
	lowered := strings.ToLower(description)

	profile := model.LifestyleProfile{
		TransportIntensity: "low",
		DietLeaning:        "mixed",
		LuxuryLevel:        "low",
	}

	for _, rule := range transportIntensityRules {
		if matchesAnyKeyword(lowered, rule.keywords) {
			profile.TransportIntensity = rule.level
			break
		}
	}

	for _, rule := range dietLeaningRules {
		if matchesAnyKeyword(lowered, rule.keywords) {
			profile.DietLeaning = rule.leaning
			break
		}
	}

	if matchesAnyKeyword(lowered, luxuryLevelKeywords) {
		profile.LuxuryLevel = "high"
	}

	profile.DomainWeights = domainWeights(profile)
	return profile
}

func matchesAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func domainWeights(profile model.LifestyleProfile) map[model.Domain]float64 {
	weights := map[model.Domain]float64{
		model.DomainHome:      0.25,
		model.DomainTransport: 0.25,
		model.DomainDiet:      0.25,
		model.DomainShopping:  0.25,
	}

	if profile.TransportIntensity == "high" {
		weights[model.DomainTransport] = 0.4
		weights[model.DomainHome] = 0.2
		weights[model.DomainDiet] = 0.2
		weights[model.DomainShopping] = 0.2
	}

	if profile.DietLeaning == "meat_heavy" {
		weights[model.DomainDiet] = 0.4
		weights[model.DomainTransport] = 0.2
		weights[model.DomainHome] = 0.2
		weights[model.DomainShopping] = 0.2
	}

	if profile.LuxuryLevel == "high" {
		weights[model.DomainShopping] = 0.35
		weights[model.DomainTransport] = 0.35
		weights[model.DomainDiet] = 0.15
		weights[model.DomainHome] = 0.15
	}

	return weights
}
