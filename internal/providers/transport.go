package providers

import (
	"context"

	"github.com/verdantlabs/verdant/internal/model"
)

var transportRecords = map[string]model.TransportInfra{
	"Tokyo": {
		PublicTransportQuality: "excellent",
		BikeInfrastructure:     "good",
		EVChargingStations:     5000,
		CarSharing:             true,
		RideSharing:            true,
	},
	"New York": {
		PublicTransportQuality: "good",
		BikeInfrastructure:     "excellent",
		EVChargingStations:     3000,
		CarSharing:             true,
		RideSharing:            true,
	},
	"London": {
		PublicTransportQuality: "excellent",
		BikeInfrastructure:     "good",
		EVChargingStations:     4000,
		CarSharing:             true,
		RideSharing:            true,
	},
}

// TransportInfraTable resolves cities to transport infrastructure records.
type TransportInfraTable struct{}

// NewTransportInfraTable creates the static transport infrastructure provider.
func NewTransportInfraTable() *TransportInfraTable {
	return &TransportInfraTable{}
}

// Infrastructure returns the transport infrastructure record for a city.
// Cities without a dedicated record get the average default.
func (t *TransportInfraTable) Infrastructure(ctx context.Context, city string) (*model.TransportInfra, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if record, ok := transportRecords[city]; ok {
		return &record, nil
	}
	record := model.DefaultTransportInfra()
	return &record, nil
}
