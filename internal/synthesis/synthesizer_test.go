package synthesis

import (
	"fmt"
	"testing"

	"github.com/verdantlabs/verdant/internal/estimator"
	"github.com/verdantlabs/verdant/internal/model"
)

func fallbackAnalyses() map[model.Domain]*model.DomainAnalysis {
	analyses := make(map[model.Domain]*model.DomainAnalysis, 4)
	for _, domain := range model.AllDomains() {
		analyses[domain] = estimator.FallbackAnalysis(domain)
	}
	return analyses
}

func TestSynthesize(t *testing.T) {
	synth := NewSynthesizer().Synthesize(fallbackAnalyses())

	if synth.TotalFootprint != 12.5 {
		t.Errorf("TotalFootprint = %v, want 12.5", synth.TotalFootprint)
	}
	if len(synth.DomainBreakdown) != 4 {
		t.Errorf("DomainBreakdown has %d domains, want 4", len(synth.DomainBreakdown))
	}
	if synth.EcoScore < 0 || synth.EcoScore > 100 {
		t.Errorf("EcoScore = %v, want within [0,100]", synth.EcoScore)
	}
	if synth.Confidence < 0 || synth.Confidence > 1 {
		t.Errorf("Confidence = %v, want within [0,1]", synth.Confidence)
	}
	if len(synth.PrioritizedActions) == 0 {
		t.Fatal("expected prioritized actions")
	}
	if len(synth.PrioritizedActions) > 8 {
		t.Errorf("%d prioritized actions, want at most 8", len(synth.PrioritizedActions))
	}

	// Actions must come out in descending priority score order.
	for i := 1; i < len(synth.PrioritizedActions); i++ {
		if synth.PrioritizedActions[i-1].PriorityScore() < synth.PrioritizedActions[i].PriorityScore() {
			t.Errorf("actions out of order at %d: %v < %v",
				i, synth.PrioritizedActions[i-1].PriorityScore(), synth.PrioritizedActions[i].PriorityScore())
		}
	}
}

func TestSynthesize_CapsActionsAtEight(t *testing.T) {
	analyses := fallbackAnalyses()
	var recs []model.Recommendation
	for i := 0; i < 12; i++ {
		recs = append(recs, model.Recommendation{
			Action:       fmt.Sprintf("Switch appliance %d to efficient model", i),
			Priority:     model.PriorityMedium,
			CO2Reduction: "0.1 tons/year",
			CostImpact:   "Low cost",
		})
	}
	analyses[model.DomainHome].Recommendations = recs

	synth := NewSynthesizer().Synthesize(analyses)
	if len(synth.PrioritizedActions) != 8 {
		t.Errorf("%d prioritized actions, want exactly 8", len(synth.PrioritizedActions))
	}
}

func TestIdentifySynergies(t *testing.T) {
	t.Run("fossil grid plus combustion car fires ev_solar", func(t *testing.T) {
		synergies := identifySynergies(fallbackAnalyses())

		types := make(map[string]model.Synergy, len(synergies))
		for _, synergy := range synergies {
			types[synergy.Type] = synergy
		}
		if _, ok := types["home_transport_ev_solar"]; !ok {
			t.Error("expected home_transport_ev_solar synergy")
		}
		if _, ok := types["diet_shopping_local_circular"]; !ok {
			t.Error("expected diet_shopping_local_circular synergy")
		}
		if _, ok := types["transport_shopping_consolidation"]; ok {
			t.Error("consolidation synergy requires daily shopping frequency")
		}
	})

	t.Run("renewable home with bike suppresses ev_solar", func(t *testing.T) {
		analyses := fallbackAnalyses()
		analyses[model.DomainHome].Home = &model.HomePattern{RenewableEnergy: true}
		analyses[model.DomainTransport].Transport = &model.TransportPattern{PrimaryVehicle: model.VehicleBike}

		for _, synergy := range identifySynergies(analyses) {
			if synergy.Type == "home_transport_ev_solar" {
				t.Error("ev_solar synergy should not fire for renewable home with bike")
			}
		}
	})

	t.Run("daily shopping with poor transport fires consolidation", func(t *testing.T) {
		analyses := fallbackAnalyses()
		analyses[model.DomainShopping].Shopping = &model.ShoppingPattern{Frequency: model.FrequencyDaily}

		found := false
		for _, synergy := range identifySynergies(analyses) {
			if synergy.Type == "transport_shopping_consolidation" {
				found = true
				if synergy.Multiplier != 1.4 {
					t.Errorf("Multiplier = %v, want 1.4", synergy.Multiplier)
				}
			}
		}
		if !found {
			t.Error("expected consolidation synergy")
		}
	})
}

func TestAssessFeasibility(t *testing.T) {
	tests := []struct {
		name string
		cost string
		want model.FeasibilityLevel
	}{
		{name: "low cost", cost: "Low cost, quick savings", want: model.FeasibilityHigh},
		{name: "savings", cost: "Cost savings immediately", want: model.FeasibilityHigh},
		{name: "medium", cost: "Medium investment, 4-6 year payback", want: model.FeasibilityMedium},
		{name: "high", cost: "High initial investment", want: model.FeasibilityLow},
		{name: "empty counts as medium", cost: "", want: model.FeasibilityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessFeasibility(tt.cost); got != tt.want {
				t.Errorf("assessFeasibility(%q) = %q, want %q", tt.cost, got, tt.want)
			}
		})
	}
}

func TestAssessUrgency(t *testing.T) {
	tests := []struct {
		name      string
		footprint float64
		priority  model.PriorityLevel
		want      model.UrgencyLevel
	}{
		{name: "big footprint high priority", footprint: 6, priority: model.PriorityHigh, want: model.UrgencyCritical},
		{name: "moderate footprint", footprint: 3, priority: model.PriorityLow, want: model.UrgencyHigh},
		{name: "high priority alone", footprint: 1, priority: model.PriorityHigh, want: model.UrgencyHigh},
		{name: "small footprint low priority", footprint: 1, priority: model.PriorityLow, want: model.UrgencyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessUrgency(tt.footprint, tt.priority); got != tt.want {
				t.Errorf("assessUrgency(%v, %q) = %q, want %q", tt.footprint, tt.priority, got, tt.want)
			}
		})
	}
}

func TestAnalyzeImpact(t *testing.T) {
	actions := []model.Intervention{
		{Action: "Install solar panels on the roof", CO2Reduction: "8-12 tons/year", Feasibility: model.FeasibilityLow, Urgency: model.UrgencyCritical},
		{Action: "Use public transport for commuting", CO2Reduction: "1-3 tons/year", Feasibility: model.FeasibilityHigh, Urgency: model.UrgencyHigh},
		{Action: "Mystery action", CO2Reduction: "high impact", Feasibility: model.FeasibilityHigh, Urgency: model.UrgencyLow},
	}

	impact := analyzeImpact(actions)

	// 12 + 3 + 1.0 default for the numberless entry.
	if impact.TotalPotentialReduction != 16.0 {
		t.Errorf("TotalPotentialReduction = %v, want 16.0", impact.TotalPotentialReduction)
	}
	if len(impact.QuickWins) != 2 {
		t.Errorf("%d quick wins, want 2", len(impact.QuickWins))
	}
	if len(impact.HighImpactProjects) != 1 {
		t.Errorf("%d high impact projects, want 1", len(impact.HighImpactProjects))
	}
	if impact.ImplementationTimeline["Install solar panels on the roof"] != "0-3 months" {
		t.Errorf("critical action timeline = %q, want 0-3 months", impact.ImplementationTimeline["Install solar panels on the roof"])
	}
}

func TestEcoScore_Bounds(t *testing.T) {
	t.Run("huge footprint with zero efficiency floors at zero", func(t *testing.T) {
		analyses := map[model.Domain]*model.DomainAnalysis{
			model.DomainTransport: {Domain: model.DomainTransport, CarbonFootprint: 500, EfficiencyScore: 0},
		}
		if got := ecoScore(analyses, 500); got != 0 {
			t.Errorf("ecoScore = %v, want 0", got)
		}
	})

	t.Run("perfect efficiency with tiny footprint nears 100", func(t *testing.T) {
		analyses := make(map[model.Domain]*model.DomainAnalysis, 4)
		for _, domain := range model.AllDomains() {
			analyses[domain] = &model.DomainAnalysis{Domain: domain, CarbonFootprint: 0.1, EfficiencyScore: 1.0}
		}
		got := ecoScore(analyses, 0.4)
		if got < 90 || got > 100 {
			t.Errorf("ecoScore = %v, want within [90,100]", got)
		}
	})
}
