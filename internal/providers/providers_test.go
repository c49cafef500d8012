package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
)

func TestGridIntensity(t *testing.T) {
	grid := NewGridTable()
	ctx := context.Background()

	tests := []struct {
		name          string
		country       string
		wantZone      string
		wantIntensity float64
	}{
		{name: "France is mostly fossil free", country: "France", wantZone: "FR", wantIntensity: 85},
		{name: "Japan", country: "Japan", wantZone: "JP", wantIntensity: 518},
		{name: "United Kingdom", country: "United Kingdom", wantZone: "GB", wantIntensity: 254},
		{name: "unknown country resolves to JP zone", country: "Atlantis", wantZone: "JP", wantIntensity: 518},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := grid.GridIntensity(ctx, tt.country)
			if err != nil {
				t.Fatalf("GridIntensity() error = %v", err)
			}
			if record.Zone != tt.wantZone {
				t.Errorf("zone = %q, want %q", record.Zone, tt.wantZone)
			}
			if record.CarbonIntensity != tt.wantIntensity {
				t.Errorf("carbon intensity = %v, want %v", record.CarbonIntensity, tt.wantIntensity)
			}
		})
	}
}

func TestCurrentWeather(t *testing.T) {
	weather := NewWeatherTable()
	ctx := context.Background()

	t.Run("cold city accrues heating degree days", func(t *testing.T) {
		record, err := weather.CurrentWeather(ctx, model.LocationContext{City: "Chicago"})
		if err != nil {
			t.Fatalf("CurrentWeather() error = %v", err)
		}
		if record.HeatingDegreeDays != 6 {
			t.Errorf("heating degree days = %v, want 6", record.HeatingDegreeDays)
		}
		if record.CoolingDegreeDays != 0 {
			t.Errorf("cooling degree days = %v, want 0", record.CoolingDegreeDays)
		}
	})

	t.Run("unknown city returns ErrUnknownLocation", func(t *testing.T) {
		_, err := weather.CurrentWeather(ctx, model.LocationContext{City: "Atlantis"})
		if !errors.Is(err, common.ErrUnknownLocation) {
			t.Fatalf("CurrentWeather() error = %v, want ErrUnknownLocation", err)
		}
	})
}

func TestInfrastructureDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("transport default for unknown city", func(t *testing.T) {
		record, err := NewTransportInfraTable().Infrastructure(ctx, "Atlantis")
		if err != nil {
			t.Fatalf("Infrastructure() error = %v", err)
		}
		want := model.DefaultTransportInfra()
		if *record != want {
			t.Errorf("record = %+v, want default %+v", *record, want)
		}
	})

	t.Run("shopping default for unknown city", func(t *testing.T) {
		record, err := NewShoppingInfraTable().Infrastructure(ctx, "Atlantis")
		if err != nil {
			t.Fatalf("Infrastructure() error = %v", err)
		}
		want := model.DefaultShoppingInfra()
		if *record != want {
			t.Errorf("record = %+v, want default %+v", *record, want)
		}
	})
}

func TestProvidersHonorContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewGridTable().GridIntensity(ctx, "Japan"); err == nil {
		t.Error("GridIntensity() with canceled context should error")
	}
	if _, err := NewWeatherTable().CurrentWeather(ctx, model.LocationContext{City: "Tokyo"}); err == nil {
		t.Error("CurrentWeather() with canceled context should error")
	}
	if _, err := NewFoodSourcingTable().Sourcing(ctx, "Tokyo"); err == nil {
		t.Error("Sourcing() with canceled context should error")
	}
}
