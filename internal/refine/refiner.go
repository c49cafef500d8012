// Package refine implements the iterative plan refinement loop. Each pass
// scores the plan along five quality axes, picks transformation strategies
// for the weak ones, applies them in discovery order, and validates that
// quality actually moved.
package refine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

// clarityMinLength is the action description length that counts as clear.
const clarityMinLength = 20

// Refiner performs one refinement iteration at a time. It holds no state;
// history is supplied by the caller.
type Refiner struct{}

// NewRefiner creates a refiner.
func NewRefiner() *Refiner {
	return &Refiner{}
}

// Refine runs one refinement iteration over the synthesized plan, using
// prior iterations to detect recurring weaknesses.
func (r *Refiner) Refine(synthesis *model.SynthesisResult, history []model.RefinementRecord) *model.RefinementRecord {
	quality := AssessQuality(synthesis.PrioritizedActions)
	opportunities := identifyOpportunities(synthesis, history, quality)
	refined := applyRefinements(synthesis, opportunities)
	validation := validateImprovements(quality, refined)
	qualityScore := qualityScore(AssessQuality(refined.PrioritizedActions))

	record := &model.RefinementRecord{
		Iteration:     len(history) + 1,
		Quality:       quality,
		Opportunities: opportunities,
		RefinedPlan:   *refined,
		Validation:    validation,
		QualityScore:  qualityScore,
		Confidence:    refinementConfidence(validation),
	}
	record.LearningInsights = learningInsights(history, record)
	return record
}

// AssessQuality scores the action list along the five quality dimensions.
func AssessQuality(actions []model.Intervention) model.QualityAssessment {
	if len(actions) == 0 {
		return model.QualityAssessment{}
	}
	n := float64(len(actions))

	feasibilityWeights := map[model.FeasibilityLevel]float64{
		model.FeasibilityHigh:   1.0,
		model.FeasibilityMedium: 0.6,
		model.FeasibilityLow:    0.3,
	}

	var feasibility, highImpact, costEffective, clear, aligned float64
	for _, action := range actions {
		weight, ok := feasibilityWeights[action.Feasibility]
		if !ok {
			weight = 0.6
		}
		feasibility += weight

		if strings.Contains(action.CO2Reduction, "high") {
			highImpact++
		}

		cost := strings.ToLower(action.CostImpact)
		if strings.Contains(cost, "savings") || strings.Contains(cost, "low") {
			costEffective++
		}

		if len(action.Action) > clarityMinLength {
			clear++
		}

		if action.Feasibility == model.FeasibilityHigh && action.Urgency != model.UrgencyLow {
			aligned++
		}
	}

	impact := highImpact / n
	if impact > 1 {
		impact = 1
	}

	return model.QualityAssessment{
		Feasibility:           feasibility / n,
		Impact:                impact,
		CostEffectiveness:     costEffective / n,
		ImplementationClarity: clear / n,
		UserAlignment:         aligned / n,
	}
}

func identifyOpportunities(synthesis *model.SynthesisResult, history []model.RefinementRecord, quality model.QualityAssessment) []model.RefinementOpportunity {
	var opportunities []model.RefinementOpportunity

	if quality.Feasibility < 0.7 {
		opportunities = append(opportunities, model.RefinementOpportunity{
			Type:          "feasibility_improvement",
			Description:   "Increase feasibility by breaking down complex actions",
			TargetActions: filterActions(synthesis.PrioritizedActions, isLowFeasibility),
			Strategy:      model.StrategyDecomposition,
		})
	}

	if quality.CostEffectiveness < 0.6 {
		opportunities = append(opportunities, model.RefinementOpportunity{
			Type:          "cost_optimization",
			Description:   "Prioritize cost-effective interventions",
			TargetActions: filterActions(synthesis.PrioritizedActions, isHighCost),
			Strategy:      model.StrategyCostReordering,
		})
	}

	if quality.ImplementationClarity < 0.8 {
		opportunities = append(opportunities, model.RefinementOpportunity{
			Type:          "sequencing_optimization",
			Description:   "Improve implementation sequencing and dependencies",
			TargetActions: synthesis.PrioritizedActions,
			Strategy:      model.StrategyDependencyOrder,
		})
	}

	if quality.Impact < 0.5 {
		opportunities = append(opportunities, model.RefinementOpportunity{
			Type:          "impact_maximization",
			Description:   "Focus on highest-impact interventions first",
			TargetActions: filterActions(synthesis.PrioritizedActions, isLowImpact),
			Strategy:      model.StrategyImpactPriority,
		})
	}

	for _, issue := range recurringIssues(history) {
		opportunities = append(opportunities, model.RefinementOpportunity{
			Type:        "recurring_issue_resolution",
			Description: fmt.Sprintf("Address recurring issue: %s", issue),
			Strategy:    model.StrategyAdaptiveLearning,
		})
	}

	return opportunities
}

func filterActions(actions []model.Intervention, keep func(model.Intervention) bool) []model.Intervention {
	var matched []model.Intervention
	for _, action := range actions {
		if keep(action) {
			matched = append(matched, action)
		}
	}
	return matched
}

func isLowFeasibility(action model.Intervention) bool {
	return action.Feasibility == model.FeasibilityLow
}

func isHighCost(action model.Intervention) bool {
	return strings.Contains(strings.ToLower(action.CostImpact), "high")
}

func isLowImpact(action model.Intervention) bool {
	return !strings.ContainsAny(action.CO2Reduction, "0123456789")
}

// recurringIssues returns opportunity types that appeared in more than one
// prior iteration, in a deterministic order.
func recurringIssues(history []model.RefinementRecord) []string {
	counts := make(map[string]int)
	var order []string
	for _, record := range history {
		for _, opp := range record.Opportunities {
			if counts[opp.Type] == 0 {
				order = append(order, opp.Type)
			}
			counts[opp.Type]++
		}
	}

	var recurring []string
	for _, issue := range order {
		if counts[issue] > 1 {
			recurring = append(recurring, issue)
		}
	}
	return recurring
}

// applyRefinements runs each opportunity's strategy in discovery order.
// Later strategies see the output of earlier ones.
func applyRefinements(synthesis *model.SynthesisResult, opportunities []model.RefinementOpportunity) *model.SynthesisResult {
	refined := *synthesis
	refined.PrioritizedActions = append([]model.Intervention(nil), synthesis.PrioritizedActions...)

	for _, opportunity := range opportunities {
		switch opportunity.Strategy {
		case model.StrategyDecomposition:
			refined.PrioritizedActions = decomposeActions(refined.PrioritizedActions, opportunity.TargetActions)
		case model.StrategyCostReordering:
			refined.PrioritizedActions = reorderByCostBenefit(refined.PrioritizedActions)
		case model.StrategyDependencyOrder:
			refined.PrioritizedActions = sequenceByDependency(refined.PrioritizedActions)
		case model.StrategyImpactPriority:
			refined.PrioritizedActions = prioritizeByImpact(refined.PrioritizedActions)
		case model.StrategyAdaptiveLearning:
			refined.PrioritizedActions = annotateWithTips(refined.PrioritizedActions)
		}
	}

	return &refined
}

func decomposeActions(actions, targets []model.Intervention) []model.Intervention {
	targetSet := make(map[string]bool, len(targets))
	for _, target := range targets {
		targetSet[target.Action] = true
	}

	var result []model.Intervention
	for _, action := range actions {
		if targetSet[action.Action] {
			result = append(result, decompose(action)...)
		} else {
			result = append(result, action)
		}
	}
	return result
}

// decompose splits a complex action into smaller steps. Sub-actions inherit
// every field of the parent except action text and feasibility.
func decompose(action model.Intervention) []model.Intervention {
	lowered := strings.ToLower(action.Action)

	sub := func(text string, feasibility model.FeasibilityLevel) model.Intervention {
		step := action
		step.Action = text
		step.Feasibility = feasibility
		return step
	}

	switch {
	case strings.Contains(lowered, "solar panels"):
		return []model.Intervention{
			sub("Get solar panel quotes and assessments", model.FeasibilityHigh),
			sub("Apply for solar installation permits", model.FeasibilityHigh),
			sub("Install solar panel system", model.FeasibilityMedium),
		}
	case strings.Contains(lowered, "electric vehicle"):
		return []model.Intervention{
			sub("Research EV models and test drive", model.FeasibilityHigh),
			sub("Install home charging station", model.FeasibilityMedium),
			sub("Purchase electric vehicle", model.FeasibilityMedium),
		}
	default:
		return []model.Intervention{
			sub(fmt.Sprintf("Plan: %s", action.Action), model.FeasibilityHigh),
			sub(fmt.Sprintf("Execute: %s", action.Action), action.Feasibility),
		}
	}
}

var costRanks = []struct {
	keyword string
	rank    float64
}{
	{keyword: "low", rank: 3},
	{keyword: "medium", rank: 2},
	{keyword: "high", rank: 1},
	{keyword: "savings", rank: 4},
}

func costRank(costImpact string) float64 {
	cost := strings.ToLower(costImpact)
	if cost == "" {
		cost = "medium"
	}
	for _, entry := range costRanks {
		if strings.Contains(cost, entry.keyword) {
			return entry.rank
		}
	}
	return 2
}

func impactEstimate(co2Reduction string) float64 {
	if v, ok := common.UpperBoundTons(co2Reduction); ok {
		return v
	}
	return 1.0
}

func reorderByCostBenefit(actions []model.Intervention) []model.Intervention {
	sorted := append([]model.Intervention(nil), actions...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return costRank(sorted[a].CostImpact)*impactEstimate(sorted[a].CO2Reduction) >
			costRank(sorted[b].CostImpact)*impactEstimate(sorted[b].CO2Reduction)
	})
	return sorted
}

var (
	foundationKeywords = []string{"insulation", "led", "thermostat", "bike", "walk"}
	majorKeywords      = []string{"solar", "electric vehicle", "heat pump", "ev"}
	lifestyleKeywords  = []string{"meat", "diet", "shopping", "local", "second"}
)

func matchesAny(action model.Intervention, keywords []string) bool {
	lowered := strings.ToLower(action.Action)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// sequenceByDependency resequences actions into foundation, major
// investment, and lifestyle buckets, preserving within-bucket order.
// Actions matching multiple buckets land in each matched bucket, as the
// bucket tests are independent.
func sequenceByDependency(actions []model.Intervention) []model.Intervention {
	var foundation, major, lifestyle, other []model.Intervention

	for _, action := range actions {
		inFoundation := matchesAny(action, foundationKeywords)
		inMajor := matchesAny(action, majorKeywords)
		inLifestyle := matchesAny(action, lifestyleKeywords)

		if inFoundation {
			foundation = append(foundation, action)
		}
		if inMajor {
			major = append(major, action)
		}
		if inLifestyle {
			lifestyle = append(lifestyle, action)
		}
		if !inFoundation && !inMajor && !inLifestyle {
			other = append(other, action)
		}
	}

	sequenced := append(foundation, major...)
	sequenced = append(sequenced, lifestyle...)
	return append(sequenced, other...)
}

func prioritizeByImpact(actions []model.Intervention) []model.Intervention {
	sorted := append([]model.Intervention(nil), actions...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return impactEstimate(sorted[a].CO2Reduction) > impactEstimate(sorted[b].CO2Reduction)
	})
	if len(sorted) > 6 {
		sorted = sorted[:6]
	}
	return sorted
}

func annotateWithTips(actions []model.Intervention) []model.Intervention {
	annotated := append([]model.Intervention(nil), actions...)
	for i, action := range annotated {
		if len(action.ImplementationTips) == 0 {
			annotated[i].ImplementationTips = implementationTips(action.Action)
		}
	}
	return annotated
}

func implementationTips(action string) []string {
	lowered := strings.ToLower(action)
	switch {
	case strings.Contains(lowered, "solar"):
		return []string{
			"Get multiple quotes from certified installers",
			"Check local incentives and tax credits",
			"Ensure roof condition is suitable for installation",
		}
	case strings.Contains(lowered, "electric"):
		return []string{
			"Test drive multiple EV models",
			"Plan charging infrastructure first",
			"Consider total cost of ownership",
		}
	case strings.Contains(lowered, "diet"), strings.Contains(lowered, "meat"):
		return []string{
			"Start with one plant-based day per week",
			"Find tasty plant-based recipes",
			"Ensure nutritional balance",
		}
	default:
		return []string{
			"Start with small, manageable steps",
			"Track progress regularly",
			"Celebrate small wins",
		}
	}
}

func validateImprovements(original model.QualityAssessment, refined *model.SynthesisResult) model.ImprovementValidation {
	refinedQuality := AssessQuality(refined.PrioritizedActions)

	originalMetrics := original.Metrics()
	refinedMetrics := refinedQuality.Metrics()

	deltas := make(map[string]model.MetricDelta, len(refinedMetrics))
	total := 0.0
	for metric, refinedScore := range refinedMetrics {
		originalScore := originalMetrics[metric]
		improvement := refinedScore - originalScore
		deltas[metric] = model.MetricDelta{
			Original:    originalScore,
			Refined:     refinedScore,
			Improvement: improvement,
			Improved:    improvement > 0,
		}
		total += improvement
	}

	overall := total / float64(len(refinedMetrics))
	return model.ImprovementValidation{
		Metrics:                deltas,
		OverallImprovement:     overall,
		ValidationPassed:       overall > 0,
		SignificantImprovement: overall > 0.1,
	}
}

func learningInsights(history []model.RefinementRecord, current *model.RefinementRecord) []string {
	var insights []string

	if len(history) >= 2 {
		recent := history[len(history)-2:]
		allImproving := true
		allStalled := true
		for _, record := range recent {
			if record.Validation.OverallImprovement > 0 {
				allStalled = false
			} else {
				allImproving = false
			}
		}
		if allImproving {
			insights = append(insights, "Consistent improvement pattern - refinement strategy is effective")
		} else if allStalled {
			insights = append(insights, "Diminishing returns - consider alternative refinement approaches")
		}
	}

	if current.Validation.OverallImprovement > 0.1 {
		var strategies []string
		for _, opp := range current.Opportunities {
			strategies = append(strategies, string(opp.Strategy))
		}
		insights = append(insights, fmt.Sprintf("Successful strategies: %s", strings.Join(strategies, ", ")))
	}

	if current.QualityScore > 0.8 {
		insights = append(insights, "High quality plan achieved - minimal further refinement needed")
	} else if current.QualityScore < 0.5 {
		insights = append(insights, "Plan quality below threshold - significant refinement still needed")
	}

	return insights
}

// qualityScore is the fixed weighted blend of the five quality metrics.
func qualityScore(quality model.QualityAssessment) float64 {
	weighted := quality.Feasibility*0.25 +
		quality.Impact*0.30 +
		quality.CostEffectiveness*0.20 +
		quality.ImplementationClarity*0.15 +
		quality.UserAlignment*0.10
	return common.Round(weighted, 3)
}

func refinementConfidence(validation model.ImprovementValidation) float64 {
	if !validation.ValidationPassed {
		return 0.3
	}
	switch {
	case validation.OverallImprovement > 0.2:
		return 0.9
	case validation.OverallImprovement > 0.1:
		return 0.7
	case validation.OverallImprovement > 0:
		return 0.5
	default:
		return 0.3
	}
}
