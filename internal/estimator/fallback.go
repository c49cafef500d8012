package estimator

import "github.com/verdantlabs/verdant/internal/model"

// FallbackAnalysis returns the stand-in analysis substituted when a domain
// estimator fails. Values are conservative averages so the pipeline can
// still produce a complete plan.
func FallbackAnalysis(domain model.Domain) *model.DomainAnalysis {
	switch domain {
	case model.DomainHome:
		return &model.DomainAnalysis{
			Domain:          model.DomainHome,
			CarbonFootprint: 3.0,
			EfficiencyScore: 0.4,
			Recommendations: []model.Recommendation{{
				Action:       "Install LED lighting",
				CO2Reduction: "0.5 tons/year",
				Priority:     model.PriorityHigh,
				CostImpact:   "Low cost, quick savings",
			}},
			Fallback: true,
		}
	case model.DomainTransport:
		return &model.DomainAnalysis{
			Domain:          model.DomainTransport,
			CarbonFootprint: 5.5,
			EfficiencyScore: 0.2,
			Recommendations: []model.Recommendation{{
				Action:       "Use public transportation",
				CO2Reduction: "2.0 tons/year",
				Priority:     model.PriorityHigh,
				CostImpact:   "Cost savings",
			}},
			Fallback: true,
		}
	case model.DomainDiet:
		return &model.DomainAnalysis{
			Domain:          model.DomainDiet,
			CarbonFootprint: 2.5,
			EfficiencyScore: 0.3,
			Recommendations: []model.Recommendation{{
				Action:       "Reduce meat consumption",
				CO2Reduction: "1.0 tons/year",
				Priority:     model.PriorityMedium,
				CostImpact:   "Cost savings",
			}},
			Fallback: true,
		}
	default:
		return &model.DomainAnalysis{
			Domain:          model.DomainShopping,
			CarbonFootprint: 1.5,
			EfficiencyScore: 0.4,
			Recommendations: []model.Recommendation{{
				Action:       "Buy second-hand items",
				CO2Reduction: "0.3 tons/year",
				Priority:     model.PriorityLow,
				CostImpact:   "Cost savings",
			}},
			Fallback: true,
		}
	}
}
