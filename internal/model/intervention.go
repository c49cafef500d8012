package model

import (
	"errors"
	"sort"
)

// PriorityLevel ranks how important an intervention is.
type PriorityLevel string

// Priority levels.
const (
	PriorityCritical PriorityLevel = "critical"
	PriorityHigh     PriorityLevel = "high"
	PriorityMedium   PriorityLevel = "medium"
	PriorityLow      PriorityLevel = "low"
)

// Score maps the priority level to its ordinal weight.
func (p PriorityLevel) Score() float64 {
	switch p {
	case PriorityCritical:
		return 5
	case PriorityHigh:
		return 4
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// FeasibilityLevel ranks how achievable an intervention is.
type FeasibilityLevel string

// Feasibility levels.
const (
	FeasibilityHigh   FeasibilityLevel = "high"
	FeasibilityMedium FeasibilityLevel = "medium"
	FeasibilityLow    FeasibilityLevel = "low"
)

// Score maps the feasibility level to its ordinal weight.
func (f FeasibilityLevel) Score() float64 {
	switch f {
	case FeasibilityHigh:
		return 3
	case FeasibilityLow:
		return 1
	default:
		return 2
	}
}

// UrgencyLevel ranks how soon an intervention should start.
type UrgencyLevel string

// Urgency levels.
const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyLow      UrgencyLevel = "low"
)

// Score maps the urgency level to its ordinal weight.
func (u UrgencyLevel) Score() float64 {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyLow:
		return 1
	default:
		return 2
	}
}

// Recommendation is a single suggested action produced by a domain estimator.
type Recommendation struct {
	Action          string        `json:"action"`
	Impact          string        `json:"impact"`
	Priority        PriorityLevel `json:"priority"`
	CO2Reduction    string        `json:"co2_reduction"`
	CostImpact      string        `json:"cost_impact,omitempty"`
	NutritionImpact string        `json:"nutrition_impact,omitempty"`
}

// Intervention is a recommendation enriched with cross-domain scoring and,
// in later stages, implementation annotations.
type Intervention struct {
	Domain             Domain           `json:"domain"`
	Action             string           `json:"action"`
	Impact             string           `json:"impact"`
	Priority           PriorityLevel    `json:"priority"`
	CO2Reduction       string           `json:"co2_reduction"`
	CostImpact         string           `json:"cost_impact"`
	Feasibility        FeasibilityLevel `json:"feasibility"`
	Urgency            UrgencyLevel     `json:"urgency"`
	SynergyMultiplier  float64          `json:"synergy_multiplier,omitempty"`
	ImplementationTips []string         `json:"implementation_tips,omitempty"`
	SuccessCriteria    []string         `json:"success_criteria,omitempty"`
	Timeline           string           `json:"timeline,omitempty"`
	ResourcesNeeded    []string         `json:"resources_needed,omitempty"`
}

// PriorityScore is the composite ranking score used to order interventions.
// Synergy-backed interventions carry their multiplier as a bonus.
func (i Intervention) PriorityScore() float64 {
	multiplier := i.SynergyMultiplier
	if multiplier == 0 {
		multiplier = 1.0
	}
	return (i.Priority.Score()*0.4 + i.Feasibility.Score()*0.3 + i.Urgency.Score()*0.3) * multiplier
}

// Validate checks that the intervention carries the minimum required fields.
func (i Intervention) Validate() error {
	if i.Action == "" {
		return errors.New("intervention action cannot be empty")
	}
	if i.Domain == "" {
		return errors.New("intervention domain cannot be empty")
	}
	return nil
}

// SortInterventions orders interventions by descending priority score.
// The sort is stable so equal scores keep their collection order.
func SortInterventions(interventions []Intervention) {
	sort.SliceStable(interventions, func(a, b int) bool {
		return interventions[a].PriorityScore() > interventions[b].PriorityScore()
	})
}
