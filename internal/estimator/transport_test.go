package estimator

import (
	"context"
	"testing"

	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/providers"
)

func tokyoLocation() model.LocationContext {
	return model.LocationContext{City: "Tokyo", Country: "Japan", Latitude: 35.6762, Longitude: 139.6503}
}

func TestExtractTransportPattern_VehicleClassification(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        model.VehicleType
	}{
		{name: "private jet", description: "I fly my private jet on weekends", want: model.VehiclePrivateJet},
		{name: "suv", description: "I drive an SUV to work", want: model.VehicleSUV},
		{name: "tesla", description: "my tesla handles the commute", want: model.VehicleElectric},
		{name: "motorbike not bike", description: "I ride my motorbike everywhere", want: model.VehicleMotorcycle},
		{name: "bicycle", description: "I bike to work every day", want: model.VehicleBike},
		{name: "train commuter", description: "I take the subway downtown", want: model.VehicleTrain},
		{name: "generic drive defaults to sedan", description: "I drive 20 km to the office", want: model.VehicleSedan},
		{name: "no vehicle mentioned", description: "I love cooking at home", want: model.VehicleSedan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := extractTransportPattern(tt.description)
			if pattern.PrimaryVehicle != tt.want {
				t.Errorf("PrimaryVehicle = %q, want %q", pattern.PrimaryVehicle, tt.want)
			}
		})
	}
}

func TestExtractTransportPattern_Distance(t *testing.T) {
	t.Run("kilometers parsed directly", func(t *testing.T) {
		pattern := extractTransportPattern("I drive 40 km each day")
		if pattern.DailyDistanceKm != 40 {
			t.Errorf("DailyDistanceKm = %v, want 40", pattern.DailyDistanceKm)
		}
	})

	t.Run("miles converted to kilometers", func(t *testing.T) {
		pattern := extractTransportPattern("I drive 50 miles each day")
		if pattern.DailyDistanceKm != 80 {
			t.Errorf("DailyDistanceKm = %v, want 80", pattern.DailyDistanceKm)
		}
	})

	t.Run("no distance keeps default", func(t *testing.T) {
		pattern := extractTransportPattern("I drive to work")
		if pattern.DailyDistanceKm != 30 {
			t.Errorf("DailyDistanceKm = %v, want default 30", pattern.DailyDistanceKm)
		}
	})
}

func TestExtractTransportPattern_Flights(t *testing.T) {
	pattern := extractTransportPattern("I fly weekly for business")
	if pattern.WeeklyFlights != 1 {
		t.Errorf("WeeklyFlights = %d, want 1", pattern.WeeklyFlights)
	}
	if pattern.FlightKm != 2000 {
		t.Errorf("FlightKm = %v, want 2000", pattern.FlightKm)
	}
}

func TestTransportFootprint(t *testing.T) {
	t.Run("active transport with no flights is zero", func(t *testing.T) {
		footprint := transportFootprint(model.TransportPattern{
			PrimaryVehicle:  model.VehicleBike,
			DailyDistanceKm: 10,
		})
		if footprint != 0 {
			t.Errorf("footprint = %v, want 0", footprint)
		}
	})

	t.Run("suv commute", func(t *testing.T) {
		footprint := transportFootprint(model.TransportPattern{
			PrimaryVehicle:  model.VehicleSUV,
			DailyDistanceKm: 40,
		})
		// 40 km * 0.25 kg/km * 365 / 1000 = 3.65 tons
		if footprint != 3.65 {
			t.Errorf("footprint = %v, want 3.65", footprint)
		}
	})

	t.Run("flights dominate", func(t *testing.T) {
		withFlights := transportFootprint(model.TransportPattern{
			PrimaryVehicle: model.VehicleSedan,
			WeeklyFlights:  1,
			FlightKm:       2000,
		})
		without := transportFootprint(model.TransportPattern{
			PrimaryVehicle: model.VehicleSedan,
		})
		if withFlights <= without {
			t.Errorf("flights should increase footprint: %v <= %v", withFlights, without)
		}
	})
}

func TestTransportAnalyze(t *testing.T) {
	est := NewTransportEstimator(providers.NewTransportInfraTable())
	analysis, err := est.Analyze(context.Background(), "I drive an SUV 40 km daily in Tokyo", tokyoLocation())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.Domain != model.DomainTransport {
		t.Errorf("Domain = %q, want transport", analysis.Domain)
	}
	if analysis.CarbonFootprint <= 0 {
		t.Errorf("CarbonFootprint = %v, want > 0", analysis.CarbonFootprint)
	}
	if len(analysis.Recommendations) == 0 {
		t.Error("expected recommendations for SUV driver")
	}
	if len(analysis.Alternatives) == 0 {
		t.Error("expected transport alternatives in Tokyo")
	}
}

func TestTransportAnalyze_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	est := NewTransportEstimator(providers.NewTransportInfraTable())
	if _, err := est.Analyze(ctx, "I drive daily", tokyoLocation()); err == nil {
		t.Fatal("Analyze() with canceled context should error")
	}
}
