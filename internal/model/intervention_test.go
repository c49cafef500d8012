package model

import "testing"

func TestPriorityScore(t *testing.T) {
	tests := []struct {
		name         string
		intervention Intervention
		want         float64
	}{
		{
			name: "maximum across the board",
			intervention: Intervention{
				Priority:    PriorityCritical,
				Feasibility: FeasibilityHigh,
				Urgency:     UrgencyCritical,
			},
			want: 5*0.4 + 3*0.3 + 4*0.3,
		},
		{
			name: "unknown levels score as medium",
			intervention: Intervention{
				Priority:    "",
				Feasibility: "",
				Urgency:     "",
			},
			want: 3*0.4 + 2*0.3 + 2*0.3,
		},
		{
			name: "synergy multiplier scales the score",
			intervention: Intervention{
				Priority:          PriorityHigh,
				Feasibility:       FeasibilityHigh,
				Urgency:           UrgencyHigh,
				SynergyMultiplier: 1.5,
			},
			want: (4*0.4 + 3*0.3 + 3*0.3) * 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.intervention.PriorityScore(); got != tt.want {
				t.Errorf("PriorityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortInterventions_Stable(t *testing.T) {
	interventions := []Intervention{
		{Action: "first equal", Priority: PriorityMedium, Feasibility: FeasibilityMedium, Urgency: UrgencyMedium},
		{Action: "winner", Priority: PriorityCritical, Feasibility: FeasibilityHigh, Urgency: UrgencyCritical},
		{Action: "second equal", Priority: PriorityMedium, Feasibility: FeasibilityMedium, Urgency: UrgencyMedium},
	}

	SortInterventions(interventions)

	if interventions[0].Action != "winner" {
		t.Errorf("first = %q, want winner", interventions[0].Action)
	}
	if interventions[1].Action != "first equal" || interventions[2].Action != "second equal" {
		t.Errorf("equal scores reordered: %q then %q", interventions[1].Action, interventions[2].Action)
	}
}

func TestInterventionValidate(t *testing.T) {
	valid := Intervention{Domain: DomainHome, Action: "Install LED lighting"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	if err := (Intervention{Domain: DomainHome}).Validate(); err == nil {
		t.Error("expected error for empty action")
	}
	if err := (Intervention{Action: "Install LED lighting"}).Validate(); err == nil {
		t.Error("expected error for empty domain")
	}
}
