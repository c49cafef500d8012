package model

// GlobalComparison positions a footprint against global benchmarks.
type GlobalComparison struct {
	AlignmentStatus string  `json:"alignment_status"`
	VsGlobalAverage float64 `json:"vs_global_average"`
	VsParisTarget   float64 `json:"vs_paris_target"`
}

// CarbonImpactEvaluation scores the plan's emission reduction potential.
type CarbonImpactEvaluation struct {
	ImpactCategory      string           `json:"impact_category"`
	GlobalComparison    GlobalComparison `json:"global_comparison"`
	CurrentFootprint    float64          `json:"current_footprint"`
	PotentialReduction  float64          `json:"potential_reduction"`
	ReductionPercentage float64          `json:"reduction_percentage"`
	ImpactScore         float64          `json:"impact_score"`
}

// FeasibilityEvaluation scores how implementable the plan is.
type FeasibilityEvaluation struct {
	Category              string                   `json:"feasibility_category"`
	Distribution          map[FeasibilityLevel]int `json:"feasibility_distribution"`
	Barriers              []string                 `json:"implementation_barriers"`
	Score                 float64                  `json:"feasibility_score"`
	RefinementImprovement float64                  `json:"refinement_improvement"`
}

// ROIEstimate approximates the financial value of the planned reductions.
type ROIEstimate struct {
	Category          string  `json:"roi_category"`
	AnnualCarbonValue float64 `json:"annual_carbon_value"`
	TenYearValue      float64 `json:"ten_year_value"`
}

// CostBenefitEvaluation scores the plan's cost profile.
type CostBenefitEvaluation struct {
	Category      string         `json:"cost_category"`
	PaybackPeriod string         `json:"payback_period"`
	Distribution  map[string]int `json:"cost_distribution"`
	ROI           ROIEstimate    `json:"roi_estimate"`
	Score         float64        `json:"cost_benefit_score"`
}

// UserExperienceEvaluation scores how approachable the plan is.
type UserExperienceEvaluation struct {
	Category        string  `json:"ux_category"`
	JourneyQuality  string  `json:"user_journey_quality"`
	Score           float64 `json:"ux_score"`
	ComplexityScore float64 `json:"complexity_score"`
	ClarityScore    float64 `json:"clarity_score"`
	MotivationScore float64 `json:"motivation_score"`
}

// SustainabilityEvaluation scores the behavioral/technological balance.
type SustainabilityEvaluation struct {
	Category           string  `json:"sustainability_category"`
	LongTermViability  string  `json:"long_term_viability"`
	Score              float64 `json:"sustainability_score"`
	BehavioralRatio    float64 `json:"behavioral_ratio"`
	TechnologicalRatio float64 `json:"technological_ratio"`
}

// EvaluationResults bundles the five evaluation criteria with the weighted
// overall score.
type EvaluationResults struct {
	CarbonImpact   CarbonImpactEvaluation   `json:"carbon_impact"`
	Feasibility    FeasibilityEvaluation    `json:"feasibility"`
	CostBenefit    CostBenefitEvaluation    `json:"cost_benefit"`
	UserExperience UserExperienceEvaluation `json:"user_experience"`
	Sustainability SustainabilityEvaluation `json:"sustainability"`
	OverallScore   float64                  `json:"overall_score"`
}

// CompletenessCheck verifies the plan touches enough emission domains.
type CompletenessCheck struct {
	MissingDomains []Domain `json:"missing_domains"`
	CoverageCount  int      `json:"coverage_count"`
	Passed         bool     `json:"passed"`
}

// ConsistencyCheck verifies the plan has no internal conflicts.
type ConsistencyCheck struct {
	Conflicts []string `json:"conflicts"`
	Passed    bool     `json:"passed"`
}

// ActionabilityCheck verifies actions use specific, executable language.
type ActionabilityCheck struct {
	Ratio  float64 `json:"actionable_ratio"`
	Count  int     `json:"actionable_count"`
	Passed bool    `json:"passed"`
}

// MeasurabilityCheck verifies outcomes are quantified.
type MeasurabilityCheck struct {
	Ratio  float64 `json:"measurable_ratio"`
	Count  int     `json:"measurable_count"`
	Passed bool    `json:"passed"`
}

// ValidationResults aggregates the four boolean plan validations.
type ValidationResults struct {
	Completeness   CompletenessCheck  `json:"completeness"`
	Consistency    ConsistencyCheck   `json:"consistency"`
	Actionability  ActionabilityCheck `json:"actionability"`
	Measurability  MeasurabilityCheck `json:"measurability"`
	CriticalIssues []string           `json:"critical_issues"`
	Score          float64            `json:"validation_score"`
	Passed         bool               `json:"validation_passed"`
}

// UserTraits are lifestyle preferences inferred from the description.
type UserTraits struct {
	LuxuryOriented           bool `json:"luxury_oriented"`
	TechSavvy                bool `json:"tech_savvy"`
	EnvironmentallyConscious bool `json:"environmentally_conscious"`
	BudgetConscious          bool `json:"budget_conscious"`
	ConvenienceFocused       bool `json:"convenience_focused"`
}

// UserAlignment scores how well the plan matches the user's traits.
type UserAlignment struct {
	Category               string     `json:"alignment_category"`
	PersonalizationQuality string     `json:"personalization_quality"`
	Traits                 UserTraits `json:"user_characteristics"`
	Score                  float64    `json:"alignment_score"`
}

// RiskAssessment is one category of implementation risk.
type RiskAssessment struct {
	Factors     []string `json:"risk_factors"`
	Level       float64  `json:"risk_level"`
	ActionCount int      `json:"action_count"`
}

// RiskAnalysis covers the four implementation risk categories.
type RiskAnalysis struct {
	Category             string         `json:"risk_category"`
	MitigationStrategies []string       `json:"mitigation_strategies"`
	Financial            RiskAssessment `json:"financial_risks"`
	Technical            RiskAssessment `json:"technical_risks"`
	Behavioral           RiskAssessment `json:"behavioral_risks"`
	External             RiskAssessment `json:"external_risks"`
	OverallLevel         float64        `json:"overall_risk_level"`
}

// MetricTarget pairs a baseline with its improvement target.
type MetricTarget struct {
	Measurement string  `json:"measurement"`
	Baseline    float64 `json:"baseline"`
	Target      float64 `json:"target"`
}

// SuccessMetrics defines how progress against the plan is measured.
type SuccessMetrics struct {
	TrackingFrequency  map[string]string `json:"tracking_frequency"`
	FootprintReduction MetricTarget      `json:"carbon_footprint_reduction"`
	EcoScoreGain       MetricTarget      `json:"eco_score_improvement"`
	ProgressTarget     float64           `json:"implementation_progress_target"`
}

// ImplementationTimeline buckets final actions into four horizons.
type ImplementationTimeline struct {
	Immediate  []string `json:"immediate"`
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
}

// TrackingPlan lists the recurring reviews attached to the plan.
type TrackingPlan struct {
	MonthlyReviews       []string `json:"monthly_reviews"`
	QuarterlyAssessments []string `json:"quarterly_assessments"`
	KPIs                 []string `json:"key_performance_indicators"`
}

// ExpectedOutcomes summarizes the anticipated effect of full implementation.
type ExpectedOutcomes struct {
	CarbonImpact    map[string]string `json:"carbon_impact"`
	FinancialImpact map[string]string `json:"financial_impact"`
	LifestyleImpact map[string]string `json:"lifestyle_impact"`
}

// FinalPlan is the finalized, annotated action plan.
type FinalPlan struct {
	SupportResources map[string][]string    `json:"support_resources"`
	NextSteps        []string               `json:"next_steps"`
	FinalActions     []Intervention         `json:"final_actions"`
	Timeline         ImplementationTimeline `json:"implementation_timeline"`
	Tracking         TrackingPlan           `json:"tracking_plan"`
	Outcomes         ExpectedOutcomes       `json:"expected_outcomes"`
}

// RecommendationsSummary is the executive summary of the final plan.
type RecommendationsSummary struct {
	ImplementationApproach string   `json:"implementation_approach"`
	ExpectedTimeline       string   `json:"expected_timeline"`
	Top3                   []string `json:"top_3_recommendations"`
	QuickWins              []string `json:"quick_wins"`
	HighImpactActions      []string `json:"high_impact_actions"`
	KeySuccessFactors      []string `json:"key_success_factors"`
}

// EvaluationReport is the full output of the final evaluation stage.
type EvaluationReport struct {
	Evaluation               EvaluationResults      `json:"evaluation_results"`
	Validation               ValidationResults      `json:"validation_results"`
	Alignment                UserAlignment          `json:"user_alignment"`
	Risks                    RiskAnalysis           `json:"risk_analysis"`
	Metrics                  SuccessMetrics         `json:"success_metrics"`
	Plan                     FinalPlan              `json:"final_plan"`
	Summary                  RecommendationsSummary `json:"recommendations_summary"`
	FinalEcoScore            float64                `json:"final_eco_score"`
	ImplementationConfidence float64                `json:"implementation_confidence"`
}
