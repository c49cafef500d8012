package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/verdant/internal/estimator"
	"github.com/verdantlabs/verdant/internal/location"
	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/providers"
	"github.com/verdantlabs/verdant/internal/service"
)

type stubEstimator struct {
	domain   model.Domain
	analysis *model.DomainAnalysis
	err      error
	panics   bool
}

func (s *stubEstimator) Domain() model.Domain { return s.domain }

func (s *stubEstimator) Analyze(ctx context.Context, description string, loc model.LocationContext) (*model.DomainAnalysis, error) {
	if s.panics {
		panic("estimator exploded")
	}
	return s.analysis, s.err
}

func newTestEngine() *Engine {
	estimators := []service.Estimator{
		estimator.NewHomeEstimator(providers.NewGridTable(), providers.NewWeatherTable()),
		estimator.NewTransportEstimator(providers.NewTransportInfraTable()),
		estimator.NewDietEstimator(providers.NewFoodSourcingTable()),
		estimator.NewShoppingEstimator(providers.NewShoppingInfraTable()),
	}
	return NewEngine(location.NewResolver(), estimators)
}

func TestRunCompleteAnalysis(t *testing.T) {
	engine := newTestEngine()
	description := "I live in a large house in Tokyo, drive an SUV 40 km daily, eat steak most days, and buy the latest gadgets"

	result := engine.RunCompleteAnalysis(context.Background(), description)
	require.NotNil(t, result)

	assert.True(t, strings.HasPrefix(result.SessionID, "session_"), "SessionID = %q", result.SessionID)
	assert.False(t, result.Degraded)
	assert.GreaterOrEqual(t, result.EcoScore, 0.0)
	assert.LessOrEqual(t, result.EcoScore, 100.0)
	assert.Greater(t, result.TotalCarbonFootprint, 0.0)
	assert.Greater(t, result.PotentialReduction, 0.0)
	assert.Len(t, result.DomainBreakdown, 4)

	require.NotEmpty(t, result.PrioritizedActions)
	assert.LessOrEqual(t, len(result.PrioritizedActions), 6)
	for _, action := range result.PrioritizedActions {
		assert.NotEmpty(t, action.Timeline, "action %q has no timeline", action.Action)
	}

	assert.Equal(t, "medium", result.Profile.TransportIntensity)
	assert.Equal(t, "meat_heavy", result.Profile.DietLeaning)
}

func TestRunCompleteAnalysis_LowImpactLifestyle(t *testing.T) {
	engine := newTestEngine()
	ctx := context.Background()

	green := engine.RunCompleteAnalysis(ctx, "I live in Tokyo, bike to work, and eat a vegan diet with local produce")
	baseline := engine.RunCompleteAnalysis(ctx, "I live in Tokyo")

	assert.Less(t, green.DomainBreakdown[model.DomainDiet].CarbonFootprint,
		baseline.DomainBreakdown[model.DomainDiet].CarbonFootprint,
		"vegan diet should undercut the omnivore default")
	assert.Equal(t, 0.0, green.DomainBreakdown[model.DomainTransport].CarbonFootprint,
		"cycling with no flights emits nothing")
	assert.Greater(t, green.EcoScore, baseline.EcoScore)
}

func TestRunCompleteAnalysis_HighImpactLifestyle(t *testing.T) {
	engine := newTestEngine()

	result := engine.RunCompleteAnalysis(context.Background(),
		"I fly my private jet weekly, drive a luxury SUV, eat wagyu steak daily, and buy designer goods")

	assert.Less(t, result.EcoScore, 35.0, "top-tier consumption should land near the score floor")
	assert.Greater(t, result.DomainBreakdown[model.DomainTransport].CarbonFootprint,
		result.DomainBreakdown[model.DomainDiet].CarbonFootprint,
		"private aviation should dominate the breakdown")
	require.NotEmpty(t, result.PrioritizedActions)
}

func TestRunCompleteAnalysis_Deterministic(t *testing.T) {
	engine := newTestEngine()
	ctx := context.Background()
	description := "I drive an SUV 40 km daily in Chicago and shop weekly"

	first := engine.RunCompleteAnalysis(ctx, description)
	second := engine.RunCompleteAnalysis(ctx, description)

	// Only the run metadata may differ between identical runs.
	first.Timestamp, second.Timestamp = time.Time{}, time.Time{}
	first.SessionID, second.SessionID = "", ""

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestRunEstimators_SubstitutesFallbacks(t *testing.T) {
	engine := NewEngine(location.NewResolver(), []service.Estimator{
		&stubEstimator{domain: model.DomainHome, err: errors.New("upstream unavailable")},
		&stubEstimator{domain: model.DomainTransport, panics: true},
		&stubEstimator{domain: model.DomainDiet, analysis: &model.DomainAnalysis{
			Domain:          model.DomainDiet,
			CarbonFootprint: 1.8,
			EfficiencyScore: 0.6,
		}},
	})

	analyses := engine.runEstimators(context.Background(), "city apartment", model.DefaultLocation())
	require.Len(t, analyses, 3)

	assert.True(t, analyses[model.DomainHome].Fallback, "errored estimator should fall back")
	assert.True(t, analyses[model.DomainTransport].Fallback, "panicked estimator should fall back")
	assert.False(t, analyses[model.DomainDiet].Fallback)
	assert.Equal(t, 1.8, analyses[model.DomainDiet].CarbonFootprint)
}

func TestRunCompleteAnalysis_AllEstimatorsFailing(t *testing.T) {
	engine := NewEngine(location.NewResolver(), []service.Estimator{
		&stubEstimator{domain: model.DomainHome, err: errors.New("down")},
		&stubEstimator{domain: model.DomainTransport, err: errors.New("down")},
		&stubEstimator{domain: model.DomainDiet, err: errors.New("down")},
		&stubEstimator{domain: model.DomainShopping, err: errors.New("down")},
	})

	result := engine.RunCompleteAnalysis(context.Background(), "ordinary suburban lifestyle")
	require.NotNil(t, result)

	// Fallback analyses still carry the pipeline to a full result.
	assert.False(t, result.Degraded)
	assert.Equal(t, 12.5, result.TotalCarbonFootprint)
	assert.NotEmpty(t, result.PrioritizedActions)
}

func TestShouldRefine(t *testing.T) {
	tests := []struct {
		name       string
		ecoScore   float64
		confidence float64
		want       bool
	}{
		{name: "low score triggers", ecoScore: 45, confidence: 0.9, want: true},
		{name: "low confidence triggers", ecoScore: 75, confidence: 0.5, want: true},
		{name: "good plan skips refinement", ecoScore: 75, confidence: 0.9, want: false},
		{name: "boundary score does not trigger", ecoScore: 60, confidence: 0.7, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synth := &model.SynthesisResult{EcoScore: tt.ecoScore, Confidence: tt.confidence}
			assert.Equal(t, tt.want, shouldRefine(synth))
		})
	}
}

func TestAnalyzeLifestyle(t *testing.T) {
	tests := []struct {
		name          string
		description   string
		wantTransport string
		wantDiet      string
		wantLuxury    string
	}{
		{
			name:          "defaults",
			description:   "I live in an apartment",
			wantTransport: "low",
			wantDiet:      "mixed",
			wantLuxury:    "low",
		},
		{
			name:          "sports car beats generic car",
			description:   "I drive my sports car everywhere",
			wantTransport: "high",
			wantDiet:      "mixed",
			wantLuxury:    "low",
		},
		{
			name:          "daily driver",
			description:   "I drive an SUV to work",
			wantTransport: "medium",
			wantDiet:      "mixed",
			wantLuxury:    "low",
		},
		{
			name:          "wagyu before generic meat",
			description:   "wagyu steak dinners and a bike commute",
			wantTransport: "low",
			wantDiet:      "meat_heavy",
			wantLuxury:    "low",
		},
		{
			name:          "luxury lifestyle",
			description:   "luxury shopping, premium everything",
			wantTransport: "low",
			wantDiet:      "mixed",
			wantLuxury:    "high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := analyzeLifestyle(tt.description)
			assert.Equal(t, tt.wantTransport, profile.TransportIntensity)
			assert.Equal(t, tt.wantDiet, profile.DietLeaning)
			assert.Equal(t, tt.wantLuxury, profile.LuxuryLevel)
		})
	}
}

func TestDomainWeights(t *testing.T) {
	t.Run("balanced by default", func(t *testing.T) {
		weights := analyzeLifestyle("quiet apartment life").DomainWeights
		for _, domain := range model.AllDomains() {
			assert.Equal(t, 0.25, weights[domain])
		}
	})

	t.Run("luxury overrides transport weighting", func(t *testing.T) {
		weights := analyzeLifestyle("luxury car collection").DomainWeights
		assert.Equal(t, 0.35, weights[model.DomainShopping])
		assert.Equal(t, 0.35, weights[model.DomainTransport])
		assert.Equal(t, 0.15, weights[model.DomainHome])
		assert.Equal(t, 0.15, weights[model.DomainDiet])
	})
}

func TestDegradedResult(t *testing.T) {
	result := degradedResult("session_test", "workflow failed: boom")

	assert.True(t, result.Degraded)
	assert.Equal(t, "session_test", result.SessionID)
	assert.Equal(t, 25.0, result.EcoScore)
	assert.Equal(t, 12.5, result.TotalCarbonFootprint)
	assert.Equal(t, 6.0, result.PotentialReduction)
	assert.Len(t, result.DomainBreakdown, 4)
	assert.NotEmpty(t, result.PrioritizedActions)
	assert.NotEmpty(t, result.Timeline.Immediate)
}
