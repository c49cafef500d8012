package evaluate

import (
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

var (
	luxuryTraitKeywords      = []string{"luxury", "expensive", "premium", "high-end"}
	techTraitKeywords        = []string{"tech", "smart", "app", "digital"}
	ecoTraitKeywords         = []string{"eco", "green", "sustainable", "environment"}
	budgetTraitKeywords      = []string{"cheap", "affordable", "budget", "save money"}
	convenienceTraitKeywords = []string{"convenient", "easy", "simple", "quick"}
)

func textContainsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// assessUserAlignment infers user traits from the description and scores
// how well the plan's actions match them.
func assessUserAlignment(synthesis *model.SynthesisResult, description string) model.UserAlignment {
	traits := extractUserTraits(description)
	score := alignmentScore(synthesis.PrioritizedActions, traits)

	return model.UserAlignment{
		Score:                  score,
		Traits:                 traits,
		Category:               categorizeAlignment(score),
		PersonalizationQuality: assessPersonalization(synthesis.PrioritizedActions, traits),
	}
}

func extractUserTraits(description string) model.UserTraits {
	lowered := strings.ToLower(description)
	return model.UserTraits{
		LuxuryOriented:           textContainsAny(lowered, luxuryTraitKeywords),
		TechSavvy:                textContainsAny(lowered, techTraitKeywords),
		EnvironmentallyConscious: textContainsAny(lowered, ecoTraitKeywords),
		BudgetConscious:          textContainsAny(lowered, budgetTraitKeywords),
		ConvenienceFocused:       textContainsAny(lowered, convenienceTraitKeywords),
	}
}

// alignmentScore counts trait/action compatibility hits per action. An
// action can satisfy multiple traits, so the score is clamped to 1.
func alignmentScore(actions []model.Intervention, traits model.UserTraits) float64 {
	if len(actions) == 0 {
		return 0
	}

	points := 0
	for _, action := range actions {
		cost := strings.ToLower(action.CostImpact)
		text := strings.ToLower(action.Action)

		if traits.BudgetConscious && (strings.Contains(cost, "savings") || strings.Contains(cost, "low")) {
			points++
		}
		if traits.ConvenienceFocused && action.Feasibility == model.FeasibilityHigh {
			points++
		}
		if traits.TechSavvy && textContainsAny(text, []string{"smart", "app", "system", "tech"}) {
			points++
		}
		if traits.EnvironmentallyConscious && textContainsAny(text, []string{"renewable", "sustainable", "eco", "green"}) {
			points++
		}
	}

	score := float64(points) / float64(len(actions))
	if score > 1 {
		score = 1
	}
	return score
}

func categorizeAlignment(score float64) string {
	switch {
	case score >= 0.8:
		return "highly_aligned"
	case score >= 0.6:
		return "well_aligned"
	case score >= 0.4:
		return "moderately_aligned"
	default:
		return "poorly_aligned"
	}
}

func assessPersonalization(actions []model.Intervention, traits model.UserTraits) string {
	top := actions
	if len(top) > 3 {
		top = top[:3]
	}

	personalized := 0
	for _, action := range top {
		if actionMatchesTraits(action, traits) {
			personalized++
		}
	}

	switch {
	case personalized >= 2:
		return "well_personalized"
	case personalized >= 1:
		return "somewhat_personalized"
	default:
		return "generic_recommendations"
	}
}

func actionMatchesTraits(action model.Intervention, traits model.UserTraits) bool {
	text := strings.ToLower(action.Action)
	cost := strings.ToLower(action.CostImpact)

	if traits.BudgetConscious && (strings.Contains(cost, "savings") || strings.Contains(cost, "low")) {
		return true
	}
	if traits.ConvenienceFocused && action.Feasibility == model.FeasibilityHigh {
		return true
	}
	if traits.TechSavvy && textContainsAny(text, []string{"smart", "app", "system", "electric"}) {
		return true
	}
	if traits.LuxuryOriented && textContainsAny(text, []string{"premium", "high-end", "advanced"}) {
		return true
	}
	return false
}

var (
	technicalRiskKeywords  = []string{"install", "system", "upgrade", "technical"}
	behavioralRiskKeywords = []string{"reduce", "change", "habit", "lifestyle"}
)

// analyzeRisks scores the four implementation risk categories and suggests
// mitigations for the ones above threshold.
func analyzeRisks(synthesis *model.SynthesisResult) model.RiskAnalysis {
	actions := synthesis.PrioritizedActions
	n := len(actions)
	if n == 0 {
		n = 1
	}

	highCost := 0
	technical := 0
	behavioral := 0
	for _, action := range actions {
		if strings.Contains(strings.ToLower(action.CostImpact), "high") {
			highCost++
		}
		if actionContainsAny(action, technicalRiskKeywords) {
			technical++
		}
		if actionContainsAny(action, behavioralRiskKeywords) {
			behavioral++
		}
	}

	financial := model.RiskAssessment{
		Level:       float64(highCost) / float64(n),
		ActionCount: highCost,
	}
	if financial.Level > 0.5 {
		financial.Factors = []string{"High upfront investment required"}
	}

	technicalRisk := model.RiskAssessment{
		Level:       float64(technical) / float64(n),
		ActionCount: technical,
	}
	if technicalRisk.Level > 0.4 {
		technicalRisk.Factors = []string{"Technical expertise required"}
	}

	behavioralRisk := model.RiskAssessment{
		Level:       float64(behavioral) / float64(n),
		ActionCount: behavioral,
	}
	if behavioralRisk.Level > 0.5 {
		behavioralRisk.Factors = []string{"Sustained behavior change required"}
	}

	external := model.RiskAssessment{
		Level:   0.3,
		Factors: []string{"Market conditions", "Policy changes", "Technology availability"},
	}

	overall := (financial.Level + technicalRisk.Level + behavioralRisk.Level + external.Level) / 4

	return model.RiskAnalysis{
		Financial:            financial,
		Technical:            technicalRisk,
		Behavioral:           behavioralRisk,
		External:             external,
		OverallLevel:         common.Round(overall, 2),
		Category:             categorizeRisk(overall),
		MitigationStrategies: mitigationStrategies(financial, technicalRisk, behavioralRisk),
	}
}

func categorizeRisk(level float64) string {
	switch {
	case level >= 0.7:
		return "high_risk"
	case level >= 0.5:
		return "medium_risk"
	case level >= 0.3:
		return "low_medium_risk"
	default:
		return "low_risk"
	}
}

func mitigationStrategies(financial, technical, behavioral model.RiskAssessment) []string {
	var strategies []string
	if financial.Level > 0.5 {
		strategies = append(strategies,
			"Phase high-cost investments over time",
			"Explore financing options and incentives")
	}
	if technical.Level > 0.4 {
		strategies = append(strategies,
			"Engage qualified professionals for technical implementations",
			"Start with simpler technical solutions")
	}
	if behavioral.Level > 0.5 {
		strategies = append(strategies,
			"Implement gradual behavior changes",
			"Set up tracking and accountability systems")
	}
	return strategies
}
