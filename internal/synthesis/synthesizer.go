// Package synthesis fuses the four domain analyses into one cross-domain
// plan: totals, synergies, a ranked action list capped at eight entries,
// and the composite EcoScore.
package synthesis

import (
	"math"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

// globalAverageFootprint is the world-average personal footprint in tons
// CO2 per year, used to normalize the footprint half of the EcoScore.
const globalAverageFootprint = 4.8

// maxPrioritizedActions caps the ranked intervention list.
const maxPrioritizedActions = 8

var domainWeights = map[model.Domain]float64{
	model.DomainHome:      0.25,
	model.DomainTransport: 0.35,
	model.DomainDiet:      0.25,
	model.DomainShopping:  0.15,
}

var urgencyTimelines = map[model.UrgencyLevel]string{
	model.UrgencyCritical: "0-3 months",
	model.UrgencyHigh:     "3-6 months",
	model.UrgencyMedium:   "6-12 months",
	model.UrgencyLow:      "12+ months",
}

// Synthesizer aggregates domain analyses.
type Synthesizer struct{}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize merges the per-domain analyses into a single prioritized plan.
func (s *Synthesizer) Synthesize(analyses map[model.Domain]*model.DomainAnalysis) *model.SynthesisResult {
	totalFootprint := totalFootprint(analyses)
	synergies := identifySynergies(analyses)
	actions := prioritizeInterventions(analyses, synergies)
	impact := analyzeImpact(actions)
	plan := integratedPlan(actions, synergies)

	return &model.SynthesisResult{
		TotalFootprint:     totalFootprint,
		DomainBreakdown:    domainBreakdown(analyses),
		Synergies:          synergies,
		PrioritizedActions: actions,
		Impact:             impact,
		Plan:               plan,
		EcoScore:           ecoScore(analyses, totalFootprint),
		Confidence:         synthesisConfidence(analyses),
	}
}

func totalFootprint(analyses map[model.Domain]*model.DomainAnalysis) float64 {
	total := 0.0
	for _, analysis := range analyses {
		total += analysis.CarbonFootprint
	}
	return common.Round(total, 2)
}

func domainBreakdown(analyses map[model.Domain]*model.DomainAnalysis) map[model.Domain]model.DomainSummary {
	breakdown := make(map[model.Domain]model.DomainSummary, len(analyses))
	for domain, analysis := range analyses {
		breakdown[domain] = model.DomainSummary{
			CarbonFootprint:      analysis.CarbonFootprint,
			EfficiencyScore:      analysis.EfficiencyScore,
			KeyFindings:          analysis.KeyFindings,
			ImprovementPotential: analysis.ImprovementPotential(),
		}
	}
	return breakdown
}

// identifySynergies evaluates the fixed cross-domain pairing rules. Each
// rule fires at most once per request.
func identifySynergies(analyses map[model.Domain]*model.DomainAnalysis) []model.Synergy {
	var synergies []model.Synergy

	homeRenewable := false
	if home := analyses[model.DomainHome]; home != nil && home.Home != nil {
		homeRenewable = home.Home.RenewableEnergy
	}
	vehicle := model.VehicleSedan
	if transport := analyses[model.DomainTransport]; transport != nil && transport.Transport != nil {
		vehicle = transport.Transport.PrimaryVehicle
	}
	if !homeRenewable && (vehicle == model.VehicleSedan || vehicle == model.VehicleSUV || vehicle == model.VehicleLuxuryCar) {
		synergies = append(synergies, model.Synergy{
			Type:                "home_transport_ev_solar",
			Domains:             []model.Domain{model.DomainHome, model.DomainTransport},
			Description:         "Solar panels + Electric vehicle combo",
			Multiplier:          1.5,
			CombinedImpact:      "Reduce both home and transport emissions by 80%+",
			ImplementationOrder: []string{"home_solar", "transport_ev"},
		})
	}

	dietLocal := false
	if diet := analyses[model.DomainDiet]; diet != nil && diet.Diet != nil {
		dietLocal = diet.Diet.OrganicPreference
	}
	secondHand := false
	if shopping := analyses[model.DomainShopping]; shopping != nil && shopping.Shopping != nil {
		secondHand = shopping.Shopping.SecondHandPreference
	}
	if !dietLocal || !secondHand {
		synergies = append(synergies, model.Synergy{
			Type:                "diet_shopping_local_circular",
			Domains:             []model.Domain{model.DomainDiet, model.DomainShopping},
			Description:         "Local food sourcing + Circular economy practices",
			Multiplier:          1.3,
			CombinedImpact:      "Reduce supply chain emissions across consumption",
			ImplementationOrder: []string{"local_food", "circular_shopping"},
		})
	}

	transportEfficiency := 0.5
	if transport := analyses[model.DomainTransport]; transport != nil {
		transportEfficiency = transport.EfficiencyScore
	}
	shoppingFrequency := model.FrequencyWeekly
	if shopping := analyses[model.DomainShopping]; shopping != nil && shopping.Shopping != nil {
		shoppingFrequency = shopping.Shopping.Frequency
	}
	if transportEfficiency < 0.6 && shoppingFrequency == model.FrequencyDaily {
		synergies = append(synergies, model.Synergy{
			Type:                "transport_shopping_consolidation",
			Domains:             []model.Domain{model.DomainTransport, model.DomainShopping},
			Description:         "Consolidated shopping trips + Alternative transport",
			Multiplier:          1.4,
			CombinedImpact:      "Reduce transport needs and optimize shopping patterns",
			ImplementationOrder: []string{"consolidate_shopping", "alternative_transport"},
		})
	}

	return synergies
}

// prioritizeInterventions pools every domain's recommendations, appends one
// synthetic intervention per synergy, ranks, and keeps the top eight.
func prioritizeInterventions(analyses map[model.Domain]*model.DomainAnalysis, synergies []model.Synergy) []model.Intervention {
	var interventions []model.Intervention

	for _, domain := range model.AllDomains() {
		analysis := analyses[domain]
		if analysis == nil {
			continue
		}
		for _, rec := range analysis.Recommendations {
			interventions = append(interventions, model.Intervention{
				Domain:       domain,
				Action:       rec.Action,
				Impact:       rec.Impact,
				Priority:     rec.Priority,
				CO2Reduction: rec.CO2Reduction,
				CostImpact:   rec.CostImpact,
				Feasibility:  assessFeasibility(rec.CostImpact),
				Urgency:      assessUrgency(analysis.CarbonFootprint, rec.Priority),
			})
		}
	}

	for _, synergy := range synergies {
		interventions = append(interventions, model.Intervention{
			Domain:            model.DomainCrossDomain,
			Action:            synergy.Description,
			Impact:            synergy.CombinedImpact,
			Priority:          model.PriorityHigh,
			CO2Reduction:      "5-15 tons/year",
			CostImpact:        "High initial, excellent ROI",
			Feasibility:       model.FeasibilityMedium,
			Urgency:           model.UrgencyHigh,
			SynergyMultiplier: synergy.Multiplier,
		})
	}

	model.SortInterventions(interventions)
	if len(interventions) > maxPrioritizedActions {
		interventions = interventions[:maxPrioritizedActions]
	}
	return interventions
}

// assessFeasibility derives feasibility from the cost impact phrasing.
// Absent cost text counts as medium.
func assessFeasibility(costImpact string) model.FeasibilityLevel {
	cost := strings.ToLower(costImpact)
	if cost == "" {
		cost = "medium"
	}
	switch {
	case strings.Contains(cost, "low") || strings.Contains(cost, "savings"):
		return model.FeasibilityHigh
	case strings.Contains(cost, "medium"):
		return model.FeasibilityMedium
	default:
		return model.FeasibilityLow
	}
}

func assessUrgency(footprint float64, priority model.PriorityLevel) model.UrgencyLevel {
	switch {
	case footprint > 5 && priority == model.PriorityHigh:
		return model.UrgencyCritical
	case footprint > 2 || priority == model.PriorityHigh:
		return model.UrgencyHigh
	default:
		return model.UrgencyMedium
	}
}

func analyzeImpact(actions []model.Intervention) model.ImpactAnalysis {
	totalReduction := 0.0
	timeline := make(map[string]string, len(actions))

	for _, action := range actions {
		if reduction, ok := common.UpperBoundTons(action.CO2Reduction); ok {
			totalReduction += reduction
		} else {
			totalReduction += 1.0
		}

		bucket, ok := urgencyTimelines[action.Urgency]
		if !ok {
			bucket = "6-12 months"
		}
		timeline[action.Action] = bucket
	}

	var quickWins []model.Intervention
	for _, action := range actions {
		if action.Feasibility == model.FeasibilityHigh && len(quickWins) < 3 {
			quickWins = append(quickWins, action)
		}
	}

	var highImpact []model.Intervention
	for _, action := range actions {
		if strings.Contains(action.CO2Reduction, "high") && len(highImpact) < 3 {
			highImpact = append(highImpact, action)
		}
	}

	return model.ImpactAnalysis{
		TotalPotentialReduction: common.Round(totalReduction, 1),
		ImplementationTimeline:  timeline,
		QuickWins:               quickWins,
		HighImpactProjects:      highImpact,
	}
}

func integratedPlan(actions []model.Intervention, synergies []model.Synergy) model.IntegratedPlan {
	plan := model.IntegratedPlan{SynergyClusters: synergies}

	for _, action := range actions {
		urgent := action.Urgency == model.UrgencyCritical || action.Urgency == model.UrgencyHigh
		switch {
		case urgent && action.Feasibility == model.FeasibilityHigh:
			plan.Phase1Immediate = append(plan.Phase1Immediate, action)
		case action.Urgency == model.UrgencyHigh || action.Urgency == model.UrgencyMedium:
			plan.Phase2ShortTerm = append(plan.Phase2ShortTerm, action)
		default:
			plan.Phase3LongTerm = append(plan.Phase3LongTerm, action)
		}
	}

	return plan
}

// ecoScore blends weighted domain efficiency (60%) with the absolute
// footprint relative to the global average (40%), on a 0-100 scale.
func ecoScore(analyses map[model.Domain]*model.DomainAnalysis, totalFootprint float64) float64 {
	footprintScore := math.Max(0, 100-totalFootprint/globalAverageFootprint*50)

	weightedEfficiency := 0.0
	for domain, analysis := range analyses {
		weight, ok := domainWeights[domain]
		if !ok {
			weight = 0.25
		}
		weightedEfficiency += analysis.EfficiencyScore * weight * 100
	}

	score := weightedEfficiency*0.6 + footprintScore*0.4
	return common.Round(math.Min(100, math.Max(0, score)), 1)
}

// synthesisConfidence averages data completeness, cross-domain consistency,
// and findings availability.
func synthesisConfidence(analyses map[model.Domain]*model.DomainAnalysis) float64 {
	complete := 0
	withFindings := 0
	var efficiencies []float64
	for _, analysis := range analyses {
		if analysis.CarbonFootprint > 0 {
			complete++
		}
		if len(analysis.KeyFindings) > 0 {
			withFindings++
		}
		efficiencies = append(efficiencies, analysis.EfficiencyScore)
	}

	completeness := float64(complete) / 4.0
	consistency := 1.0 - stddev(efficiencies)
	findings := float64(withFindings) / 4.0

	return common.Round((completeness+consistency+findings)/3, 2)
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
