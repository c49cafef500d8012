package model

import "time"

// LifestyleProfile is the coarse lifestyle classification derived from the
// description. Attached to the result as metadata; it never feeds back into
// the per-domain estimates.
type LifestyleProfile struct {
	TransportIntensity string             `json:"transport_intensity"`
	DietLeaning        string             `json:"diet_leaning"`
	LuxuryLevel        string             `json:"luxury_level"`
	DomainWeights      map[Domain]float64 `json:"domain_weights"`
}

// AnalysisResult is the flat envelope returned by a complete analysis run.
type AnalysisResult struct {
	Timestamp            time.Time                `json:"analysis_timestamp"`
	SessionID            string                   `json:"session_id"`
	FailureReason        string                   `json:"failure_reason,omitempty"`
	DomainBreakdown      map[Domain]DomainSummary `json:"domain_breakdown"`
	PrioritizedActions   []Intervention           `json:"prioritized_actions"`
	Synergies            []Synergy                `json:"synergies"`
	Timeline             ImplementationTimeline   `json:"implementation_timeline"`
	Impact               ImpactAnalysis           `json:"impact_analysis"`
	Profile              LifestyleProfile         `json:"lifestyle_profile"`
	Summary              RecommendationsSummary   `json:"recommendations_summary"`
	EcoScore             float64                  `json:"eco_score"`
	TotalCarbonFootprint float64                  `json:"total_carbon_footprint"`
	PotentialReduction   float64                  `json:"potential_reduction"`
	RefinementIterations int                      `json:"refinement_iterations"`
	Refined              bool                     `json:"refined"`
	Degraded             bool                     `json:"degraded,omitempty"`
}

// Conversation is one persisted analysis run.
type Conversation struct {
	Timestamp       time.Time       `json:"timestamp"`
	Input           string          `json:"input"`
	Result          *AnalysisResult `json:"result,omitempty"`
	ID              int64           `json:"id"`
	EcoScore        float64         `json:"eco_score"`
	CarbonFootprint float64         `json:"carbon_footprint"`
}

// MemoryStats are aggregate statistics over the stored conversations.
type MemoryStats struct {
	TotalConversations int     `json:"total_conversations"`
	AverageEcoScore    float64 `json:"average_eco_score"`
	BestEcoScore       float64 `json:"best_eco_score"`
	AverageFootprint   float64 `json:"average_footprint"`
}
