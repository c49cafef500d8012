package evaluate

import (
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

var actionVerbs = []string{"install", "switch", "reduce", "choose", "upgrade", "use"}

// validatePlan runs the four boolean plan checks. The plan passes when at
// least three of them do.
func validatePlan(synthesis *model.SynthesisResult) model.ValidationResults {
	completeness := checkCompleteness(synthesis.PrioritizedActions)
	consistency := checkConsistency(synthesis.PrioritizedActions)
	actionability := checkActionability(synthesis.PrioritizedActions)
	measurability := checkMeasurability(synthesis.PrioritizedActions)

	passed := 0
	for _, ok := range []bool{completeness.Passed, consistency.Passed, actionability.Passed, measurability.Passed} {
		if ok {
			passed++
		}
	}
	score := float64(passed) / 4

	results := model.ValidationResults{
		Completeness:  completeness,
		Consistency:   consistency,
		Actionability: actionability,
		Measurability: measurability,
		Score:         score,
		Passed:        score >= 0.75,
	}
	results.CriticalIssues = criticalIssues(results)
	return results
}

func checkCompleteness(actions []model.Intervention) model.CompletenessCheck {
	covered := make(map[model.Domain]bool, 4)
	for _, action := range actions {
		for _, domain := range model.AllDomains() {
			if action.Domain == domain {
				covered[domain] = true
			}
		}
	}

	var missing []model.Domain
	for _, domain := range model.AllDomains() {
		if !covered[domain] {
			missing = append(missing, domain)
		}
	}

	return model.CompletenessCheck{
		Passed:         len(covered) >= 3,
		CoverageCount:  len(covered),
		MissingDomains: missing,
	}
}

func checkConsistency(actions []model.Intervention) model.ConsistencyCheck {
	var conflicts []string

	highCost := 0
	for _, action := range actions {
		if strings.Contains(strings.ToLower(action.CostImpact), "high") {
			highCost++
		}
	}
	if float64(highCost) > float64(len(actions))*0.7 {
		conflicts = append(conflicts, "Too many high-cost interventions may not be feasible")
	}

	return model.ConsistencyCheck{
		Passed:    len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

func checkActionability(actions []model.Intervention) model.ActionabilityCheck {
	actionable := 0
	for _, action := range actions {
		if len(action.Action) > 15 && actionContainsAny(action, actionVerbs) {
			actionable++
		}
	}

	n := len(actions)
	if n == 0 {
		n = 1
	}
	ratio := float64(actionable) / float64(n)

	return model.ActionabilityCheck{
		Passed: ratio >= 0.8,
		Ratio:  common.Round(ratio, 2),
		Count:  actionable,
	}
}

func checkMeasurability(actions []model.Intervention) model.MeasurabilityCheck {
	measurable := 0
	for _, action := range actions {
		if strings.ContainsAny(action.CO2Reduction, "0123456789") {
			measurable++
		}
	}

	n := len(actions)
	if n == 0 {
		n = 1
	}
	ratio := float64(measurable) / float64(n)

	return model.MeasurabilityCheck{
		Passed: ratio >= 0.7,
		Ratio:  common.Round(ratio, 2),
		Count:  measurable,
	}
}

func criticalIssues(results model.ValidationResults) []string {
	var issues []string
	if !results.Completeness.Passed {
		issues = append(issues, "Plan does not cover all major emission domains")
	}
	if !results.Consistency.Passed {
		issues = append(issues, "Internal inconsistencies in recommendations")
	}
	if !results.Actionability.Passed {
		issues = append(issues, "Recommendations lack specific actionable steps")
	}
	if !results.Measurability.Passed {
		issues = append(issues, "Outcomes are not sufficiently measurable")
	}
	return issues
}
