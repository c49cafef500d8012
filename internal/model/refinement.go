package model

// Quality metric names shared by assessment and validation maps.
const (
	MetricFeasibility           = "feasibility_score"
	MetricImpact                = "impact_score"
	MetricCostEffectiveness     = "cost_effectiveness"
	MetricImplementationClarity = "implementation_clarity"
	MetricUserAlignment         = "user_alignment"
)

// QualityAssessment scores a plan across five dimensions, each in [0,1].
type QualityAssessment struct {
	Feasibility           float64 `json:"feasibility_score"`
	Impact                float64 `json:"impact_score"`
	CostEffectiveness     float64 `json:"cost_effectiveness"`
	ImplementationClarity float64 `json:"implementation_clarity"`
	UserAlignment         float64 `json:"user_alignment"`
}

// Metrics returns the assessment as a name-keyed map for delta computation.
func (q QualityAssessment) Metrics() map[string]float64 {
	return map[string]float64{
		MetricFeasibility:           q.Feasibility,
		MetricImpact:                q.Impact,
		MetricCostEffectiveness:     q.CostEffectiveness,
		MetricImplementationClarity: q.ImplementationClarity,
		MetricUserAlignment:         q.UserAlignment,
	}
}

// RefinementStrategy names a plan transformation applied during refinement.
type RefinementStrategy string

// Refinement strategies.
const (
	StrategyDecomposition    RefinementStrategy = "decomposition_and_phasing"
	StrategyCostReordering   RefinementStrategy = "cost_benefit_reordering"
	StrategyDependencyOrder  RefinementStrategy = "dependency_analysis"
	StrategyImpactPriority   RefinementStrategy = "impact_prioritization"
	StrategyAdaptiveLearning RefinementStrategy = "adaptive_learning"
)

// RefinementOpportunity is a weakness in the current plan paired with the
// strategy that addresses it.
type RefinementOpportunity struct {
	Type          string             `json:"type"`
	Description   string             `json:"description"`
	Strategy      RefinementStrategy `json:"refinement_strategy"`
	TargetActions []Intervention     `json:"target_actions,omitempty"`
}

// MetricDelta records the before/after movement of one quality metric.
type MetricDelta struct {
	Original    float64 `json:"original"`
	Refined     float64 `json:"refined"`
	Improvement float64 `json:"improvement"`
	Improved    bool    `json:"improved"`
}

// ImprovementValidation compares plan quality before and after refinement.
type ImprovementValidation struct {
	Metrics                map[string]MetricDelta `json:"metric_improvements"`
	OverallImprovement     float64                `json:"overall_improvement"`
	ValidationPassed       bool                   `json:"validation_passed"`
	SignificantImprovement bool                   `json:"significant_improvement"`
}

// RefinementRecord is the complete outcome of one refinement iteration.
type RefinementRecord struct {
	Quality          QualityAssessment       `json:"quality_assessment"`
	Opportunities    []RefinementOpportunity `json:"refinement_opportunities"`
	RefinedPlan      SynthesisResult         `json:"refined_plan"`
	Validation       ImprovementValidation   `json:"improvement_validation"`
	LearningInsights []string                `json:"learning_insights"`
	Iteration        int                     `json:"iteration"`
	QualityScore     float64                 `json:"quality_score"`
	Confidence       float64                 `json:"refinement_confidence"`
}
