package model

// Synergy is a cross-domain opportunity whose combined effect exceeds the
// sum of its per-domain parts.
type Synergy struct {
	Type                string   `json:"type"`
	Description         string   `json:"description"`
	CombinedImpact      string   `json:"combined_impact"`
	Domains             []Domain `json:"domains"`
	ImplementationOrder []string `json:"implementation_order"`
	Multiplier          float64  `json:"synergy_multiplier"`
}

// DomainSummary is the per-domain slice of the synthesis breakdown.
type DomainSummary struct {
	ImprovementPotential string   `json:"improvement_potential"`
	KeyFindings          []string `json:"key_findings"`
	CarbonFootprint      float64  `json:"carbon_footprint"`
	EfficiencyScore      float64  `json:"efficiency_score"`
}

// ImpactAnalysis estimates the aggregate effect of the prioritized actions.
type ImpactAnalysis struct {
	ImplementationTimeline  map[string]string `json:"implementation_timeline"`
	QuickWins               []Intervention    `json:"quick_wins"`
	HighImpactProjects      []Intervention    `json:"high_impact_projects"`
	TotalPotentialReduction float64           `json:"total_potential_reduction"`
}

// IntegratedPlan phases the prioritized actions by urgency and feasibility.
type IntegratedPlan struct {
	Phase1Immediate []Intervention `json:"phase_1_immediate"`
	Phase2ShortTerm []Intervention `json:"phase_2_short_term"`
	Phase3LongTerm  []Intervention `json:"phase_3_long_term"`
	SynergyClusters []Synergy      `json:"synergy_clusters"`
}

// SynthesisResult integrates the four domain analyses into a single
// prioritized plan with an overall EcoScore.
type SynthesisResult struct {
	DomainBreakdown    map[Domain]DomainSummary `json:"domain_breakdown"`
	Synergies          []Synergy                `json:"synergies"`
	PrioritizedActions []Intervention           `json:"prioritized_actions"`
	Impact             ImpactAnalysis           `json:"impact_analysis"`
	Plan               IntegratedPlan           `json:"integrated_plan"`
	TotalFootprint     float64                  `json:"total_carbon_footprint"`
	EcoScore           float64                  `json:"eco_score"`
	Confidence         float64                  `json:"synthesis_confidence"`
}
