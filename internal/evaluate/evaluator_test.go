package evaluate

import (
	"testing"

	"github.com/verdantlabs/verdant/internal/model"
)

func solidPlan() *model.SynthesisResult {
	return &model.SynthesisResult{
		TotalFootprint: 15,
		EcoScore:       45,
		Confidence:     0.8,
		Impact:         model.ImpactAnalysis{TotalPotentialReduction: 9},
		PrioritizedActions: []model.Intervention{
			{
				Domain:       model.DomainHome,
				Action:       "Install smart thermostat and LED lighting",
				CO2Reduction: "0.5-1.5 tons/year",
				CostImpact:   "Low investment, 1-2 year payback",
				Feasibility:  model.FeasibilityHigh,
				Urgency:      model.UrgencyHigh,
			},
			{
				Domain:       model.DomainTransport,
				Action:       "Use public transport for daily commuting",
				CO2Reduction: "1-3 tons/year",
				CostImpact:   "Cost savings immediately",
				Feasibility:  model.FeasibilityHigh,
				Urgency:      model.UrgencyCritical,
			},
			{
				Domain:       model.DomainDiet,
				Action:       "Reduce meat consumption to 3-4 times per week",
				CO2Reduction: "1-2 tons/year",
				CostImpact:   "Cost savings on groceries",
				Feasibility:  model.FeasibilityHigh,
				Urgency:      model.UrgencyHigh,
			},
			{
				Domain:       model.DomainShopping,
				Action:       "Switch to second-hand shopping for clothing",
				CO2Reduction: "0.3-0.8 tons/year",
				CostImpact:   "Significant cost savings",
				Feasibility:  model.FeasibilityHigh,
				Urgency:      model.UrgencyMedium,
			},
		},
	}
}

func TestEvaluate(t *testing.T) {
	report := NewEvaluator().Evaluate(solidPlan(), nil, "I want to save money and live sustainably")

	if report.FinalEcoScore < 0 || report.FinalEcoScore > 100 {
		t.Errorf("FinalEcoScore = %v, want within [0,100]", report.FinalEcoScore)
	}
	if report.FinalEcoScore <= 45 {
		t.Errorf("FinalEcoScore = %v, should exceed the base synthesis score for a solid plan", report.FinalEcoScore)
	}
	if !report.Validation.Passed {
		t.Errorf("validation should pass for a four-domain actionable plan: %+v", report.Validation)
	}
	if len(report.Plan.FinalActions) == 0 {
		t.Fatal("expected finalized actions")
	}
	if len(report.Plan.FinalActions) > 6 {
		t.Errorf("%d final actions, want at most 6", len(report.Plan.FinalActions))
	}
	for _, action := range report.Plan.FinalActions {
		if action.Timeline == "" {
			t.Errorf("action %q missing timeline", action.Action)
		}
		if len(action.SuccessCriteria) == 0 {
			t.Errorf("action %q missing success criteria", action.Action)
		}
	}
	if report.ImplementationConfidence < 0.75 {
		t.Errorf("ImplementationConfidence = %v, want >= 0.75 when validation passes", report.ImplementationConfidence)
	}
}

func TestValidatePlan(t *testing.T) {
	t.Run("solid plan passes all checks", func(t *testing.T) {
		results := validatePlan(solidPlan())
		if results.Score != 1.0 {
			t.Errorf("Score = %v, want 1.0", results.Score)
		}
		if !results.Passed {
			t.Error("expected validation to pass")
		}
		if len(results.CriticalIssues) != 0 {
			t.Errorf("CriticalIssues = %v, want none", results.CriticalIssues)
		}
	})

	t.Run("single domain plan fails completeness", func(t *testing.T) {
		synthesis := &model.SynthesisResult{
			PrioritizedActions: []model.Intervention{
				{Domain: model.DomainHome, Action: "Install solar panels on roof", CO2Reduction: "8 tons/year", CostImpact: "High"},
			},
		}
		results := validatePlan(synthesis)
		if results.Completeness.Passed {
			t.Error("completeness should fail with one domain covered")
		}
		if len(results.Completeness.MissingDomains) != 3 {
			t.Errorf("%d missing domains, want 3", len(results.Completeness.MissingDomains))
		}
	})

	t.Run("mostly high cost plan fails consistency", func(t *testing.T) {
		synthesis := &model.SynthesisResult{
			PrioritizedActions: []model.Intervention{
				{Domain: model.DomainHome, Action: "Install solar panels on the roof", CO2Reduction: "8 tons/year", CostImpact: "High initial investment"},
				{Domain: model.DomainTransport, Action: "Switch to electric vehicle now", CO2Reduction: "5 tons/year", CostImpact: "High initial cost"},
				{Domain: model.DomainDiet, Action: "Install a greenhouse for produce", CO2Reduction: "1 tons/year", CostImpact: "High cost"},
			},
		}
		results := validatePlan(synthesis)
		if results.Consistency.Passed {
			t.Error("consistency should fail when all actions are high cost")
		}
	})
}

func TestEvaluateCarbonImpact(t *testing.T) {
	impact := evaluateCarbonImpact(solidPlan())

	// 9 of 15 tons is a 60% reduction.
	if impact.ReductionPercentage != 60.0 {
		t.Errorf("ReductionPercentage = %v, want 60.0", impact.ReductionPercentage)
	}
	if impact.ImpactCategory != "substantial" {
		t.Errorf("ImpactCategory = %q, want substantial", impact.ImpactCategory)
	}
	if impact.GlobalComparison.AlignmentStatus != "above_target" {
		t.Errorf("AlignmentStatus = %q, want above_target", impact.GlobalComparison.AlignmentStatus)
	}
}

func TestFinalEcoScore_Clamped(t *testing.T) {
	evaluation := model.EvaluationResults{
		OverallScore: 1.0,
		Feasibility:  model.FeasibilityEvaluation{Score: 1.0},
	}
	alignment := model.UserAlignment{Score: 1.0}

	if got := finalEcoScore(90, evaluation, alignment); got != 100 {
		t.Errorf("finalEcoScore = %v, want clamped 100", got)
	}
}

func TestExtractUserTraits(t *testing.T) {
	traits := extractUserTraits("I love my smart home tech but I'm on a budget and care about the environment")
	if !traits.TechSavvy {
		t.Error("expected TechSavvy")
	}
	if !traits.BudgetConscious {
		t.Error("expected BudgetConscious")
	}
	if !traits.EnvironmentallyConscious {
		t.Error("expected EnvironmentallyConscious")
	}
	if traits.LuxuryOriented {
		t.Error("LuxuryOriented should be false")
	}
}

func TestActionTimeline(t *testing.T) {
	tests := []struct {
		name   string
		action model.Intervention
		want   string
	}{
		{
			name:   "high feasibility cheap action",
			action: model.Intervention{Feasibility: model.FeasibilityHigh, CostImpact: "Low cost"},
			want:   "1-4 weeks",
		},
		{
			name:   "high feasibility expensive action",
			action: model.Intervention{Feasibility: model.FeasibilityHigh, CostImpact: "High initial"},
			want:   "1-3 months",
		},
		{
			name:   "medium feasibility",
			action: model.Intervention{Feasibility: model.FeasibilityMedium, CostImpact: "High"},
			want:   "3-6 months",
		},
		{
			name:   "low feasibility",
			action: model.Intervention{Feasibility: model.FeasibilityLow, CostImpact: "High"},
			want:   "6-12 months",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionTimeline(tt.action); got != tt.want {
				t.Errorf("actionTimeline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateFinalPlan_PrefersRefinedPlan(t *testing.T) {
	base := solidPlan()
	refined := *base
	refined.PrioritizedActions = append([]model.Intervention(nil), base.PrioritizedActions...)
	refined.PrioritizedActions[0].Action = "Install smart thermostat throughout the house"

	history := []model.RefinementRecord{{
		QualityScore: 0.85,
		RefinedPlan:  refined,
	}}

	plan := generateFinalPlan(base, history)
	if plan.FinalActions[0].Action != "Install smart thermostat throughout the house" {
		t.Errorf("first action = %q, want the refined action", plan.FinalActions[0].Action)
	}

	lowQuality := []model.RefinementRecord{{QualityScore: 0.4, RefinedPlan: refined}}
	plan = generateFinalPlan(base, lowQuality)
	if plan.FinalActions[0].Action != base.PrioritizedActions[0].Action {
		t.Errorf("low-quality refinement should be ignored, got %q", plan.FinalActions[0].Action)
	}
}

func TestAnalyzeRisks(t *testing.T) {
	risks := analyzeRisks(solidPlan())

	if risks.OverallLevel < 0 || risks.OverallLevel > 1 {
		t.Errorf("OverallLevel = %v, want within [0,1]", risks.OverallLevel)
	}
	// No high-cost actions in the solid plan.
	if risks.Financial.Level != 0 {
		t.Errorf("Financial.Level = %v, want 0", risks.Financial.Level)
	}
	if len(risks.External.Factors) == 0 {
		t.Error("external risk always carries its fixed factors")
	}
}
