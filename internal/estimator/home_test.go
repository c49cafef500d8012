package estimator

import (
	"context"
	"testing"

	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/providers"
)

func TestExtractHomePattern(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		wantSize       model.HomeSize
		wantEfficiency model.EfficiencyTier
		wantRenewable  bool
	}{
		{
			name:           "solar powered apartment",
			description:    "I live in a small apartment with solar panels",
			wantSize:       model.HomeSmall,
			wantEfficiency: model.EfficiencyHigh,
			wantRenewable:  true,
		},
		{
			name:           "old large house",
			description:    "we own a large house, an old house with poor insulation",
			wantSize:       model.HomeLarge,
			wantEfficiency: model.EfficiencyLow,
		},
		{
			name:           "nothing mentioned keeps defaults",
			description:    "I commute by train",
			wantSize:       model.HomeMedium,
			wantEfficiency: model.EfficiencyStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := extractHomePattern(tt.description)
			if pattern.Size != tt.wantSize {
				t.Errorf("Size = %q, want %q", pattern.Size, tt.wantSize)
			}
			if pattern.Efficiency != tt.wantEfficiency {
				t.Errorf("Efficiency = %q, want %q", pattern.Efficiency, tt.wantEfficiency)
			}
			if pattern.RenewableEnergy != tt.wantRenewable {
				t.Errorf("RenewableEnergy = %v, want %v", pattern.RenewableEnergy, tt.wantRenewable)
			}
		})
	}
}

func TestHomeFootprint(t *testing.T) {
	grid := model.GridIntensity{CarbonIntensity: 500, FossilFreePercent: 30}
	mildWeather := model.WeatherImpact{}

	t.Run("renewables cut footprint", func(t *testing.T) {
		base := homeFootprint(model.HomePattern{Size: model.HomeMedium, Efficiency: model.EfficiencyStandard}, grid, mildWeather)
		renewable := homeFootprint(model.HomePattern{Size: model.HomeMedium, Efficiency: model.EfficiencyStandard, RenewableEnergy: true}, grid, mildWeather)
		if renewable >= base {
			t.Errorf("renewable footprint %v should be below %v", renewable, base)
		}
	})

	t.Run("large inefficient home is highest", func(t *testing.T) {
		small := homeFootprint(model.HomePattern{Size: model.HomeSmall, Efficiency: model.EfficiencyHigh}, grid, mildWeather)
		large := homeFootprint(model.HomePattern{Size: model.HomeLarge, Efficiency: model.EfficiencyLow}, grid, mildWeather)
		if large <= small {
			t.Errorf("large/low %v should exceed small/high %v", large, small)
		}
	})

	t.Run("medium standard home against 500g grid", func(t *testing.T) {
		// 12000 kWh * 500 gCO2/kWh = 6 tons
		got := homeFootprint(model.HomePattern{Size: model.HomeMedium, Efficiency: model.EfficiencyStandard}, grid, mildWeather)
		if got != 6.0 {
			t.Errorf("footprint = %v, want 6.0", got)
		}
	})
}

func TestHomeEfficiencyScore(t *testing.T) {
	best := homeEfficiencyScore(model.HomePattern{Size: model.HomeSmall, Efficiency: model.EfficiencyHigh, RenewableEnergy: true})
	if best != 1.0 {
		t.Errorf("best-case score = %v, want clamped 1.0", best)
	}

	worst := homeEfficiencyScore(model.HomePattern{Size: model.HomeLarge, Efficiency: model.EfficiencyLow})
	if worst != 0 {
		t.Errorf("worst-case score = %v, want clamped 0", worst)
	}
}

func TestHomeAnalyze(t *testing.T) {
	est := NewHomeEstimator(providers.NewGridTable(), providers.NewWeatherTable())
	analysis, err := est.Analyze(context.Background(), "large house with electric heating in Tokyo", tokyoLocation())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.Domain != model.DomainHome {
		t.Errorf("Domain = %q, want home", analysis.Domain)
	}
	if analysis.GridIntensity == nil || analysis.GridIntensity.Zone != "JP" {
		t.Errorf("expected JP grid record, got %+v", analysis.GridIntensity)
	}
	// Fossil-heavy grid without renewables always yields the solar recommendation.
	found := false
	for _, rec := range analysis.Recommendations {
		if rec.Action == "Install solar panels" {
			found = true
		}
	}
	if !found {
		t.Error("expected solar panel recommendation on fossil-heavy grid")
	}
}

func TestHomeAnalyze_UnknownCityUsesFallbackWeather(t *testing.T) {
	est := NewHomeEstimator(providers.NewGridTable(), providers.NewWeatherTable())
	loc := model.LocationContext{City: "Atlantis", Country: "Japan"}

	analysis, err := est.Analyze(context.Background(), "standard home", loc)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if analysis.Weather == nil || analysis.Weather.Source != "fallback_data" {
		t.Errorf("expected fallback weather record, got %+v", analysis.Weather)
	}
}
