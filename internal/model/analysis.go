package model

// RouteOptimization is a transport-specific efficiency suggestion.
type RouteOptimization struct {
	Type               string `json:"type"`
	Suggestion         string `json:"suggestion"`
	PotentialReduction string `json:"potential_reduction"`
	Implementation     string `json:"implementation"`
}

// TransportAlternative describes a lower-emission replacement for the
// user's current primary transport mode.
type TransportAlternative struct {
	Alternative       string `json:"alternative"`
	EmissionReduction string `json:"emission_reduction"`
	CostImpact        string `json:"cost_impact"`
	Feasibility       string `json:"feasibility"`
	AnnualSavings     string `json:"annual_savings"`
}

// NutritionalAnalysis scores the nutritional adequacy of the inferred diet.
type NutritionalAnalysis struct {
	Recommendations []string `json:"recommendations"`
	OverallScore    float64  `json:"overall_score"`
	ProteinAdequacy float64  `json:"protein_adequacy"`
	B12Status       float64  `json:"b12_status"`
	IronStatus      float64  `json:"iron_status"`
	Omega3Status    float64  `json:"omega3_status"`
}

// CircularOpportunities rates circular-economy options for the user's
// consumption profile.
type CircularOpportunities struct {
	RepairPotential    string `json:"repair_potential"`
	ResalePotential    string `json:"resale_potential"`
	SharingPotential   string `json:"sharing_potential"`
	UpcyclingPotential string `json:"upcycling_potential"`
	RentalPotential    string `json:"rental_potential"`
}

// DomainAnalysis is the full output of one domain estimator. Only the
// pattern pointer and detail fields belonging to the analysis domain are
// populated; the rest stay nil.
type DomainAnalysis struct {
	Domain          Domain           `json:"domain"`
	CarbonFootprint float64          `json:"carbon_footprint"`
	EfficiencyScore float64          `json:"efficiency_score"`
	KeyFindings     []string         `json:"key_findings"`
	Recommendations []Recommendation `json:"recommendations"`

	Home      *HomePattern      `json:"home_pattern,omitempty"`
	Transport *TransportPattern `json:"transport_pattern,omitempty"`
	Diet      *DietPattern      `json:"diet_pattern,omitempty"`
	Shopping  *ShoppingPattern  `json:"shopping_pattern,omitempty"`

	GridIntensity *GridIntensity         `json:"grid_intensity,omitempty"`
	Weather       *WeatherImpact         `json:"weather_impact,omitempty"`
	LocalOptions  *TransportInfra        `json:"local_options,omitempty"`
	Optimizations []RouteOptimization    `json:"route_optimizations,omitempty"`
	Alternatives  []TransportAlternative `json:"alternatives,omitempty"`
	Sourcing      *FoodSourcing          `json:"local_sourcing,omitempty"`
	Nutrition     *NutritionalAnalysis   `json:"nutritional_analysis,omitempty"`
	Stores        *ShoppingInfra         `json:"local_infrastructure,omitempty"`
	Circular      *CircularOpportunities `json:"circular_opportunities,omitempty"`

	// Fallback marks analyses substituted after an estimator failure.
	Fallback bool `json:"fallback,omitempty"`
}

// ImprovementPotential classifies how much headroom a domain has left.
func (a DomainAnalysis) ImprovementPotential() string {
	switch {
	case a.EfficiencyScore < 0.3 || a.CarbonFootprint > 5:
		return "high"
	case a.EfficiencyScore < 0.6 || a.CarbonFootprint > 2:
		return "medium"
	default:
		return "low"
	}
}
