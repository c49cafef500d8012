package estimator

import (
	"context"
	"testing"

	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/providers"
)

func TestExtractDietPattern(t *testing.T) {
	tests := []struct {
		name          string
		description   string
		wantType      model.DietType
		wantMeatTypes []string
		wantLuxury    bool
		wantOrganic   bool
	}{
		{
			name:        "vegan",
			description: "I eat a vegan diet with local produce",
			wantType:    model.DietVegan,
			wantOrganic: true,
		},
		{
			name:          "wagyu steak lover",
			description:   "I eat wagyu steak every day",
			wantType:      model.DietOmnivore,
			wantMeatTypes: []string{"beef"},
			wantLuxury:    true,
		},
		{
			name:          "mixed meats",
			description:   "I eat meat, mostly chicken and bacon, a few times a week",
			wantType:      model.DietOmnivore,
			wantMeatTypes: []string{"pork", "chicken"},
		},
		{
			name:        "nothing mentioned keeps omnivore default",
			description: "I drive to work",
			wantType:    model.DietOmnivore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := extractDietPattern(tt.description)
			if pattern.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", pattern.Type, tt.wantType)
			}
			if len(pattern.MeatTypes) != len(tt.wantMeatTypes) {
				t.Fatalf("MeatTypes = %v, want %v", pattern.MeatTypes, tt.wantMeatTypes)
			}
			for i, meat := range tt.wantMeatTypes {
				if pattern.MeatTypes[i] != meat {
					t.Errorf("MeatTypes[%d] = %q, want %q", i, pattern.MeatTypes[i], meat)
				}
			}
			if pattern.LuxuryFoods != tt.wantLuxury {
				t.Errorf("LuxuryFoods = %v, want %v", pattern.LuxuryFoods, tt.wantLuxury)
			}
			if pattern.OrganicPreference != tt.wantOrganic {
				t.Errorf("OrganicPreference = %v, want %v", pattern.OrganicPreference, tt.wantOrganic)
			}
		})
	}
}

func TestDietFootprint(t *testing.T) {
	t.Run("vegan excludes meat, fish, and dairy", func(t *testing.T) {
		vegan := dietFootprint(model.DietPattern{Type: model.DietVegan, MeatFrequency: model.FrequencyWeekly})
		// Vegetables, fruits, and grains only: well under a ton.
		if vegan > 0.5 {
			t.Errorf("vegan footprint = %v, want < 0.5", vegan)
		}
	})

	t.Run("daily luxury beef is the heaviest diet", func(t *testing.T) {
		heavy := dietFootprint(model.DietPattern{
			Type:          model.DietOmnivore,
			MeatFrequency: model.FrequencyDaily,
			MeatTypes:     []string{"beef"},
			LuxuryFoods:   true,
		})
		moderate := dietFootprint(model.DietPattern{
			Type:          model.DietOmnivore,
			MeatFrequency: model.FrequencyWeekly,
			MeatTypes:     []string{"chicken"},
		})
		if heavy <= moderate {
			t.Errorf("luxury beef %v should exceed chicken %v", heavy, moderate)
		}
		// 20 kg * 1.5 * 2 * 60 kg CO2/kg = 3.6 tons of beef alone.
		if heavy < 3.6 {
			t.Errorf("heavy footprint = %v, want >= 3.6", heavy)
		}
	})

	t.Run("organic preference trims produce emissions", func(t *testing.T) {
		organic := dietFootprint(model.DietPattern{Type: model.DietVegan, OrganicPreference: true})
		conventional := dietFootprint(model.DietPattern{Type: model.DietVegan})
		if organic >= conventional {
			t.Errorf("organic %v should be below conventional %v", organic, conventional)
		}
	})
}

func TestDietRecommendations(t *testing.T) {
	recs := dietRecommendations(model.DietPattern{
		Type:          model.DietOmnivore,
		MeatFrequency: model.FrequencyDaily,
		MeatTypes:     []string{"beef"},
	})

	actions := make(map[string]bool, len(recs))
	for _, rec := range recs {
		actions[rec.Action] = true
	}
	if !actions["Reduce meat consumption to 3-4 times per week"] {
		t.Error("expected meat reduction recommendation for daily omnivore")
	}
	if !actions["Replace beef with chicken or plant proteins"] {
		t.Error("expected beef replacement recommendation")
	}
}

func TestAnalyzeNutrition_VeganGetsSupplementGuidance(t *testing.T) {
	nutrition := analyzeNutrition(model.DietPattern{Type: model.DietVegan})
	if len(nutrition.Recommendations) == 0 {
		t.Fatal("expected nutrition recommendations for vegan profile")
	}
	if nutrition.B12Status >= 0.7 {
		t.Errorf("B12Status = %v, want < 0.7", nutrition.B12Status)
	}
}

func TestDietAnalyze(t *testing.T) {
	est := NewDietEstimator(providers.NewFoodSourcingTable())
	analysis, err := est.Analyze(context.Background(), "I eat steak daily in Tokyo", tokyoLocation())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.Domain != model.DomainDiet {
		t.Errorf("Domain = %q, want diet", analysis.Domain)
	}
	if analysis.Nutrition == nil {
		t.Fatal("expected nutrition analysis")
	}
	if analysis.CarbonFootprint <= 1 {
		t.Errorf("CarbonFootprint = %v, want > 1 for daily steak", analysis.CarbonFootprint)
	}
}
