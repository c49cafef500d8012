// Package evaluate performs the final multi-criterion evaluation of a
// synthesized plan and materializes the finalized action plan with
// timeline, tracking, and success metrics.
package evaluate

import (
	"fmt"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

const (
	// globalAverageFootprint and parisTargetFootprint benchmark the user's
	// footprint, in tons CO2 per year.
	globalAverageFootprint = 4.8
	parisTargetFootprint   = 2.3

	// carbonPricePerTon approximates the social cost of carbon in USD.
	carbonPricePerTon = 50

	// maxFinalActions caps the finalized plan for focus.
	maxFinalActions = 6
)

// Evaluator runs the final evaluation stage.
type Evaluator struct{}

// NewEvaluator creates an evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores the plan against the five criteria, validates it,
// assesses user alignment and risk, and produces the finalized plan.
func (e *Evaluator) Evaluate(synthesis *model.SynthesisResult, history []model.RefinementRecord, description string) *model.EvaluationReport {
	evaluation := comprehensiveEvaluation(synthesis, history)
	validation := validatePlan(synthesis)
	alignment := assessUserAlignment(synthesis, description)
	risks := analyzeRisks(synthesis)
	metrics := defineSuccessMetrics(synthesis)
	plan := generateFinalPlan(synthesis, history)

	return &model.EvaluationReport{
		Evaluation:               evaluation,
		Validation:               validation,
		Alignment:                alignment,
		Risks:                    risks,
		Metrics:                  metrics,
		Plan:                     plan,
		Summary:                  summarizeRecommendations(plan),
		FinalEcoScore:            finalEcoScore(synthesis.EcoScore, evaluation, alignment),
		ImplementationConfidence: implementationConfidence(validation),
	}
}

func comprehensiveEvaluation(synthesis *model.SynthesisResult, history []model.RefinementRecord) model.EvaluationResults {
	results := model.EvaluationResults{
		CarbonImpact:   evaluateCarbonImpact(synthesis),
		Feasibility:    evaluateFeasibility(synthesis.PrioritizedActions, history),
		CostBenefit:    evaluateCostBenefit(synthesis.PrioritizedActions),
		UserExperience: evaluateUserExperience(synthesis.PrioritizedActions),
		Sustainability: evaluateSustainability(synthesis.PrioritizedActions),
	}

	results.OverallScore = common.Round(
		results.CarbonImpact.ImpactScore*0.35+
			results.Feasibility.Score*0.25+
			results.CostBenefit.Score*0.20+
			results.UserExperience.Score*0.15+
			results.Sustainability.Score*0.05, 3)
	return results
}

func evaluateCarbonImpact(synthesis *model.SynthesisResult) model.CarbonImpactEvaluation {
	footprint := synthesis.TotalFootprint
	reduction := synthesis.Impact.TotalPotentialReduction

	denominator := footprint
	if denominator < 1 {
		denominator = 1
	}
	reductionPercentage := reduction / denominator * 100

	impactScore := reductionPercentage / 70
	if impactScore > 1 {
		impactScore = 1
	}

	return model.CarbonImpactEvaluation{
		CurrentFootprint:    footprint,
		PotentialReduction:  reduction,
		ReductionPercentage: common.Round(reductionPercentage, 1),
		ImpactScore:         common.Round(impactScore, 2),
		ImpactCategory:      categorizeImpact(reductionPercentage),
		GlobalComparison:    compareToGlobal(footprint),
	}
}

func categorizeImpact(reductionPercentage float64) string {
	switch {
	case reductionPercentage >= 70:
		return "transformational"
	case reductionPercentage >= 50:
		return "substantial"
	case reductionPercentage >= 30:
		return "significant"
	case reductionPercentage >= 15:
		return "moderate"
	default:
		return "minimal"
	}
}

func compareToGlobal(footprint float64) model.GlobalComparison {
	status := "above_target"
	if footprint <= parisTargetFootprint {
		status = "aligned"
	}
	return model.GlobalComparison{
		VsGlobalAverage: common.Round((footprint/globalAverageFootprint-1)*100, 1),
		VsParisTarget:   common.Round((footprint/parisTargetFootprint-1)*100, 1),
		AlignmentStatus: status,
	}
}

func evaluateFeasibility(actions []model.Intervention, history []model.RefinementRecord) model.FeasibilityEvaluation {
	distribution := map[model.FeasibilityLevel]int{
		model.FeasibilityHigh:   0,
		model.FeasibilityMedium: 0,
		model.FeasibilityLow:    0,
	}
	for _, action := range actions {
		distribution[action.Feasibility]++
	}

	n := float64(len(actions))
	if n == 0 {
		n = 1
	}
	score := (float64(distribution[model.FeasibilityHigh])*1.0 +
		float64(distribution[model.FeasibilityMedium])*0.6 +
		float64(distribution[model.FeasibilityLow])*0.2) / n

	refinementImprovement := 0.0
	if len(history) > 0 {
		latest := history[len(history)-1]
		if delta, ok := latest.Validation.Metrics[model.MetricFeasibility]; ok {
			refinementImprovement = delta.Improvement
		}
	}

	return model.FeasibilityEvaluation{
		Score:                 common.Round(score, 2),
		Distribution:          distribution,
		RefinementImprovement: common.Round(refinementImprovement, 2),
		Barriers:              implementationBarriers(actions),
		Category:              categorizeFeasibility(score),
	}
}

func categorizeFeasibility(score float64) string {
	switch {
	case score >= 0.8:
		return "highly_feasible"
	case score >= 0.6:
		return "moderately_feasible"
	case score >= 0.4:
		return "challenging"
	default:
		return "difficult"
	}
}

func implementationBarriers(actions []model.Intervention) []string {
	var barriers []string

	highCost := 0
	lowFeasibility := 0
	complex := 0
	for _, action := range actions {
		if strings.Contains(strings.ToLower(action.CostImpact), "high") {
			highCost++
		}
		if action.Feasibility == model.FeasibilityLow {
			lowFeasibility++
		}
		if len(action.Action) > 50 {
			complex++
		}
	}

	if float64(highCost) > float64(len(actions))*0.5 {
		barriers = append(barriers, "High upfront costs for majority of interventions")
	}
	if lowFeasibility > 0 {
		barriers = append(barriers, fmt.Sprintf("%d interventions have low feasibility", lowFeasibility))
	}
	if complex > 3 {
		barriers = append(barriers, "Multiple complex interventions may overwhelm implementation")
	}

	return barriers
}

func evaluateCostBenefit(actions []model.Intervention) model.CostBenefitEvaluation {
	distribution := map[string]int{"low": 0, "medium": 0, "high": 0, "savings": 0}
	for _, action := range actions {
		cost := strings.ToLower(action.CostImpact)
		switch {
		case strings.Contains(cost, "savings") || strings.Contains(cost, "low"):
			distribution["low"]++
		case strings.Contains(cost, "high"):
			distribution["high"]++
		default:
			distribution["medium"]++
		}
	}

	n := float64(len(actions))
	if n == 0 {
		n = 1
	}
	score := (float64(distribution["low"])*1.0 +
		float64(distribution["medium"])*0.6 +
		float64(distribution["high"])*0.3) / n

	return model.CostBenefitEvaluation{
		Score:         common.Round(score, 2),
		Distribution:  distribution,
		ROI:           estimateROI(actions),
		PaybackPeriod: estimatePaybackPeriod(actions),
		Category:      categorizeCostBenefit(score),
	}
}

func estimateROI(actions []model.Intervention) model.ROIEstimate {
	totalReduction := 0.0
	for _, action := range actions {
		if v, ok := common.UpperBoundTons(action.CO2Reduction); ok {
			totalReduction += v
		} else {
			totalReduction += 0.5
		}
	}

	annualValue := totalReduction * carbonPricePerTon
	category := "moderate"
	if annualValue > 1000 {
		category = "positive"
	}

	return model.ROIEstimate{
		AnnualCarbonValue: common.Round(annualValue, 0),
		TenYearValue:      common.Round(annualValue*10, 0),
		Category:          category,
	}
}

func estimatePaybackPeriod(actions []model.Intervention) string {
	highCost := 0
	savings := 0
	for _, action := range actions {
		cost := strings.ToLower(action.CostImpact)
		if strings.Contains(cost, "high") {
			highCost++
		}
		if strings.Contains(cost, "savings") {
			savings++
		}
	}

	switch {
	case savings > highCost:
		return "1-3 years"
	case highCost <= 2:
		return "3-7 years"
	default:
		return "7-15 years"
	}
}

func categorizeCostBenefit(score float64) string {
	switch {
	case score >= 0.8:
		return "excellent"
	case score >= 0.6:
		return "good"
	case score >= 0.4:
		return "fair"
	default:
		return "poor"
	}
}

var (
	simpleActionKeywords  = []string{"led", "thermostat", "bike", "walk", "reduce", "choose"}
	complexActionKeywords = []string{"install", "upgrade", "system", "panels", "pump"}
)

func actionContainsAny(action model.Intervention, keywords []string) bool {
	lowered := strings.ToLower(action.Action)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func evaluateUserExperience(actions []model.Intervention) model.UserExperienceEvaluation {
	complexity := assessComplexity(actions)
	clarity := assessClarity(actions)
	motivation := assessMotivation(actions)
	score := (complexity + clarity + motivation) / 3

	return model.UserExperienceEvaluation{
		Score:           common.Round(score, 2),
		ComplexityScore: common.Round(complexity, 2),
		ClarityScore:    common.Round(clarity, 2),
		MotivationScore: common.Round(motivation, 2),
		Category:        categorizeUX(score),
		JourneyQuality:  assessUserJourney(actions),
	}
}

// assessComplexity rewards plans dominated by simple everyday actions.
// Simple keywords take precedence over complex ones per action.
func assessComplexity(actions []model.Intervention) float64 {
	simple := 0
	complex := 0
	for _, action := range actions {
		if actionContainsAny(action, simpleActionKeywords) {
			simple++
		} else if actionContainsAny(action, complexActionKeywords) {
			complex++
		}
	}

	n := float64(len(actions))
	if n == 0 {
		n = 1
	}
	neutral := len(actions) - simple - complex
	return (float64(simple)*1.0 + float64(neutral)*0.6 + float64(complex)*0.3) / n
}

func assessClarity(actions []model.Intervention) float64 {
	withTips := 0
	clear := 0
	for _, action := range actions {
		if len(action.ImplementationTips) > 0 {
			withTips++
		}
		if len(action.Action) > 20 {
			clear++
		}
	}

	n := float64(len(actions))
	if n == 0 {
		n = 1
	}
	score := (float64(withTips)*0.5 + float64(clear)*0.5) / n
	if score > 1 {
		score = 1
	}
	return score
}

func assessMotivation(actions []model.Intervention) float64 {
	quickWins := 0
	highImpact := 0
	costSavings := 0
	for _, action := range actions {
		if action.Feasibility == model.FeasibilityHigh {
			quickWins++
		}
		if strings.Contains(action.CO2Reduction, "high") {
			highImpact++
		}
		if strings.Contains(action.CostImpact, "savings") {
			costSavings++
		}
	}

	n := float64(len(actions))
	if n == 0 {
		n = 1
	}
	score := (float64(quickWins)*0.4 + float64(highImpact)*0.4 + float64(costSavings)*0.2) / n
	if score > 1 {
		score = 1
	}
	return score
}

func categorizeUX(score float64) string {
	switch {
	case score >= 0.8:
		return "excellent"
	case score >= 0.6:
		return "good"
	case score >= 0.4:
		return "fair"
	default:
		return "poor"
	}
}

// assessUserJourney checks whether the first actions ease the user in.
func assessUserJourney(actions []model.Intervention) string {
	leading := actions
	if len(leading) > 5 {
		leading = leading[:5]
	}

	high := 0
	low := 0
	for _, action := range leading {
		switch action.Feasibility {
		case model.FeasibilityHigh:
			high++
		case model.FeasibilityLow:
			low++
		}
	}

	switch {
	case high >= 2:
		return "good_onboarding"
	case low <= 1:
		return "manageable_progression"
	default:
		return "challenging_start"
	}
}

var (
	behavioralKeywords = []string{"reduce", "choose", "eat", "walk", "bike", "buy"}
	techKeywords       = []string{"install", "upgrade", "system", "panels", "vehicle"}
	lastingKeywords    = []string{"install", "upgrade", "system", "habit", "routine"}
)

func evaluateSustainability(actions []model.Intervention) model.SustainabilityEvaluation {
	behavioral := 0
	technological := 0
	for _, action := range actions {
		if actionContainsAny(action, behavioralKeywords) {
			behavioral++
		} else if actionContainsAny(action, techKeywords) {
			technological++
		}
	}

	n := float64(len(actions))
	if n == 0 {
		n = 1
	}
	behavioralRatio := float64(behavioral) / n
	techRatio := float64(technological) / n

	// A balanced mix of behavior change and technology lasts longest.
	balance := 1.0 - abs(behavioralRatio-techRatio)

	return model.SustainabilityEvaluation{
		Score:              common.Round(balance, 2),
		BehavioralRatio:    common.Round(behavioralRatio, 2),
		TechnologicalRatio: common.Round(techRatio, 2),
		Category:           categorizeSustainability(balance),
		LongTermViability:  assessLongTermViability(actions),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func categorizeSustainability(score float64) string {
	switch {
	case score >= 0.8:
		return "highly_sustainable"
	case score >= 0.6:
		return "sustainable"
	case score >= 0.4:
		return "moderately_sustainable"
	default:
		return "sustainability_concerns"
	}
}

func assessLongTermViability(actions []model.Intervention) string {
	lasting := 0
	for _, action := range actions {
		if actionContainsAny(action, lastingKeywords) {
			lasting++
		}
	}

	switch {
	case float64(lasting) >= float64(len(actions))*0.6:
		return "high_lasting_impact"
	case float64(lasting) >= float64(len(actions))*0.3:
		return "moderate_lasting_impact"
	default:
		return "requires_ongoing_effort"
	}
}

// finalEcoScore adds evaluation, alignment, and feasibility bonuses to the
// synthesis EcoScore, clamped to [0,100].
func finalEcoScore(baseScore float64, evaluation model.EvaluationResults, alignment model.UserAlignment) float64 {
	score := baseScore +
		evaluation.OverallScore*20 +
		alignment.Score*15 +
		evaluation.Feasibility.Score*10

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return common.Round(score, 1)
}

func implementationConfidence(validation model.ValidationResults) float64 {
	switch {
	case validation.Passed && validation.Score >= 0.9:
		return 0.95
	case validation.Passed && validation.Score >= 0.8:
		return 0.85
	case validation.Passed:
		return 0.75
	case validation.Score >= 0.6:
		return 0.6
	default:
		return 0.4
	}
}
