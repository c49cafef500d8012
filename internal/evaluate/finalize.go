package evaluate

import (
	"fmt"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

func defineSuccessMetrics(synthesis *model.SynthesisResult) model.SuccessMetrics {
	footprint := synthesis.TotalFootprint
	reduction := synthesis.Impact.TotalPotentialReduction

	target := footprint - reduction
	if target < 0 {
		target = 0
	}

	ecoTarget := synthesis.EcoScore + 40
	if ecoTarget > 100 {
		ecoTarget = 100
	}

	return model.SuccessMetrics{
		FootprintReduction: model.MetricTarget{
			Baseline:    footprint,
			Target:      target,
			Measurement: "tons CO2/year",
		},
		EcoScoreGain: model.MetricTarget{
			Baseline:    synthesis.EcoScore,
			Target:      ecoTarget,
			Measurement: "EcoScore points (0-100)",
		},
		ProgressTarget: 80,
		TrackingFrequency: map[string]string{
			"carbon_footprint":        "quarterly",
			"eco_score":               "monthly",
			"implementation_progress": "weekly",
		},
	}
}

// generateFinalPlan picks the refined plan when its quality clears 0.7,
// annotates the leading actions, and phases them into the timeline.
func generateFinalPlan(synthesis *model.SynthesisResult, history []model.RefinementRecord) model.FinalPlan {
	base := synthesis
	if len(history) > 0 {
		latest := history[len(history)-1]
		if latest.QualityScore > 0.7 {
			base = &latest.RefinedPlan
		}
	}

	final := finalizeActions(base.PrioritizedActions)

	return model.FinalPlan{
		FinalActions:     final,
		Timeline:         implementationTimeline(final),
		Tracking:         trackingPlan(),
		Outcomes:         expectedOutcomes(final),
		NextSteps:        nextSteps(final),
		SupportResources: supportResources(),
	}
}

func finalizeActions(actions []model.Intervention) []model.Intervention {
	final := append([]model.Intervention(nil), actions...)
	for i, action := range final {
		final[i].SuccessCriteria = successCriteria(action.Action)
		final[i].Timeline = actionTimeline(action)
		final[i].ResourcesNeeded = actionResources(action.Action)
	}
	if len(final) > maxFinalActions {
		final = final[:maxFinalActions]
	}
	return final
}

func successCriteria(action string) []string {
	lowered := strings.ToLower(action)
	switch {
	case strings.Contains(lowered, "solar"):
		return []string{"System installed and operational", "Monthly energy bill reduced", "CO2 emissions tracked"}
	case strings.Contains(lowered, "electric"):
		return []string{"Vehicle purchased/leased", "Charging setup complete", "Fuel costs eliminated"}
	case strings.Contains(lowered, "diet"), strings.Contains(lowered, "meat"):
		return []string{"Meal planning established", "Plant-based meals tracked", "Nutritional balance maintained"}
	case strings.Contains(lowered, "insulation"), strings.Contains(lowered, "efficiency"):
		return []string{"Installation completed", "Energy usage monitored", "Comfort level maintained"}
	default:
		return []string{"Action implemented", "Progress tracked", "Results measured"}
	}
}

func actionTimeline(action model.Intervention) string {
	cost := strings.ToLower(action.CostImpact)
	cheap := strings.Contains(cost, "low") || strings.Contains(cost, "savings")

	switch {
	case action.Feasibility == model.FeasibilityHigh && cheap:
		return "1-4 weeks"
	case action.Feasibility == model.FeasibilityHigh:
		return "1-3 months"
	case action.Feasibility == model.FeasibilityMedium:
		return "3-6 months"
	default:
		return "6-12 months"
	}
}

func actionResources(action string) []string {
	lowered := strings.ToLower(action)
	switch {
	case strings.Contains(lowered, "install"):
		return []string{"Professional installer", "Permits/approvals", "Financing"}
	case strings.Contains(lowered, "purchase"), strings.Contains(lowered, "buy"):
		return []string{"Research time", "Budget allocation", "Vendor selection"}
	case strings.Contains(lowered, "reduce"), strings.Contains(lowered, "change"):
		return []string{"Habit tracking app", "Alternative options research", "Support system"}
	default:
		return []string{"Planning time", "Implementation budget", "Progress tracking"}
	}
}

func implementationTimeline(actions []model.Intervention) model.ImplementationTimeline {
	var timeline model.ImplementationTimeline

	for _, action := range actions {
		switch {
		case strings.Contains(action.Timeline, "week") || strings.Contains(action.Timeline, "1-4"):
			timeline.Immediate = append(timeline.Immediate, action.Action)
		case strings.Contains(action.Timeline, "1-3 months"):
			timeline.ShortTerm = append(timeline.ShortTerm, action.Action)
		case strings.Contains(action.Timeline, "3-6 months"):
			timeline.MediumTerm = append(timeline.MediumTerm, action.Action)
		default:
			timeline.LongTerm = append(timeline.LongTerm, action.Action)
		}
	}

	return timeline
}

func trackingPlan() model.TrackingPlan {
	return model.TrackingPlan{
		MonthlyReviews: []string{
			"Track carbon footprint changes",
			"Monitor implementation progress",
			"Assess cost savings",
			"Update EcoScore",
		},
		QuarterlyAssessments: []string{
			"Comprehensive impact evaluation",
			"Plan adjustments if needed",
			"Celebrate achievements",
			"Set next quarter goals",
		},
		KPIs: []string{
			"Total CO2 reduction achieved",
			"Percentage of actions completed",
			"Cost savings realized",
			"EcoScore improvement",
		},
	}
}

func expectedOutcomes(actions []model.Intervention) model.ExpectedOutcomes {
	totalReduction := 0.0
	for _, action := range actions {
		if v, ok := common.UpperBoundTons(action.CO2Reduction); ok {
			totalReduction += v
		} else {
			totalReduction += 0.5
		}
	}

	return model.ExpectedOutcomes{
		CarbonImpact: map[string]string{
			"total_reduction":      fmt.Sprintf("%.1f tons CO2/year", totalReduction),
			"percentage_reduction": "40-70%",
			"global_impact":        "Equivalent to planting 50-150 trees annually",
		},
		FinancialImpact: map[string]string{
			"annual_savings":  "$1,000-5,000/year",
			"payback_period":  "3-8 years",
			"long_term_value": "$10,000-50,000 over 10 years",
		},
		LifestyleImpact: map[string]string{
			"health_benefits": "Improved air quality, more active lifestyle",
			"convenience":     "Long-term convenience improvements",
			"satisfaction":    "Positive environmental impact satisfaction",
		},
	}
}

func nextSteps(actions []model.Intervention) []string {
	if len(actions) == 0 {
		return []string{
			"Review and understand your carbon footprint",
			"Choose your first action to implement",
		}
	}

	first := actions[0].Action
	lowered := strings.ToLower(first)

	switch {
	case strings.Contains(lowered, "solar"):
		return []string{
			"Get 3 quotes from certified solar installers",
			"Research local incentives and tax credits",
			"Schedule roof assessment",
		}
	case strings.Contains(lowered, "electric"):
		return []string{
			"Research EV models within your budget",
			"Test drive top 3 candidates",
			"Plan home charging installation",
		}
	case strings.Contains(lowered, "diet"):
		return []string{
			"Plan 2 plant-based meals for next week",
			"Find local farmers market or organic store",
			"Download a meal planning app",
		}
	default:
		return []string{
			fmt.Sprintf("Begin planning: %s", first),
			"Set up progress tracking system",
			"Schedule first implementation milestone",
		}
	}
}

func supportResources() map[string][]string {
	return map[string][]string{
		"professional_services": {
			"Energy auditor for home efficiency assessment",
			"Solar installer for renewable energy systems",
			"Nutritionist for dietary transition support",
		},
		"online_resources": {
			"Carbon footprint tracking apps",
			"Energy efficiency calculators",
			"Sustainable living communities and forums",
		},
		"local_resources": {
			"Environmental organizations",
			"Green building contractors",
			"Farmers markets and co-ops",
			"EV dealerships and charging networks",
		},
		"financial_resources": {
			"Green financing options",
			"Government incentives and rebates",
			"Utility company programs",
			"Carbon offset programs",
		},
	}
}

func summarizeRecommendations(plan model.FinalPlan) model.RecommendationsSummary {
	actions := plan.FinalActions
	if len(actions) == 0 {
		return model.RecommendationsSummary{}
	}

	var top3 []string
	for _, action := range actions {
		if len(top3) < 3 {
			top3 = append(top3, action.Action)
		}
	}

	var quickWins []string
	for _, action := range actions {
		cost := strings.ToLower(action.CostImpact)
		cheap := strings.Contains(cost, "low") || strings.Contains(cost, "savings")
		if action.Feasibility == model.FeasibilityHigh && cheap && len(quickWins) < 2 {
			quickWins = append(quickWins, action.Action)
		}
	}

	var highImpact []string
	for _, action := range actions {
		if strings.Contains(action.CO2Reduction, "high") && len(highImpact) < 2 {
			highImpact = append(highImpact, action.Action)
		}
	}

	return model.RecommendationsSummary{
		Top3:                   top3,
		QuickWins:              quickWins,
		HighImpactActions:      highImpact,
		ImplementationApproach: "Start with quick wins, then tackle high-impact projects",
		ExpectedTimeline:       "6-18 months for full implementation",
		KeySuccessFactors: []string{
			"Consistent progress tracking",
			"Phased implementation approach",
			"Professional support where needed",
		},
	}
}
