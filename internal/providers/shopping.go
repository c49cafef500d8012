package providers

import (
	"context"

	"github.com/verdantlabs/verdant/internal/model"
)

var shoppingRecords = map[string]model.ShoppingInfra{
	"Tokyo": {
		SecondHandStores:  "excellent",
		RepairServices:    "good",
		LocalArtisans:     "excellent",
		SustainableBrands: "good",
		RecyclingPrograms: "excellent",
	},
	"New York": {
		SecondHandStores:  "excellent",
		RepairServices:    "excellent",
		LocalArtisans:     "good",
		SustainableBrands: "excellent",
		RecyclingPrograms: "good",
	},
	"London": {
		SecondHandStores:  "excellent",
		RepairServices:    "good",
		LocalArtisans:     "good",
		SustainableBrands: "excellent",
		RecyclingPrograms: "excellent",
	},
}

// ShoppingInfraTable resolves cities to shopping infrastructure records.
type ShoppingInfraTable struct{}

// NewShoppingInfraTable creates the static shopping infrastructure provider.
func NewShoppingInfraTable() *ShoppingInfraTable {
	return &ShoppingInfraTable{}
}

// Infrastructure returns the shopping infrastructure record for a city.
// Cities without a dedicated record get the average default.
func (s *ShoppingInfraTable) Infrastructure(ctx context.Context, city string) (*model.ShoppingInfra, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if record, ok := shoppingRecords[city]; ok {
		return &record, nil
	}
	record := model.DefaultShoppingInfra()
	return &record, nil
}
