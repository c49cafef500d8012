package providers

import (
	"context"

	"github.com/verdantlabs/verdant/internal/model"
)

var foodRecords = map[string]model.FoodSourcing{
	"Tokyo": {
		LocalProduceAvailability: 0.6,
		SeasonalVariety:          []string{"rice", "vegetables", "fish"},
		FoodMilesAverage:         800,
		OrganicMarketShare:       0.15,
	},
	"New York": {
		LocalProduceAvailability: 0.4,
		SeasonalVariety:          []string{"apples", "vegetables", "dairy"},
		FoodMilesAverage:         1200,
		OrganicMarketShare:       0.25,
	},
	"London": {
		LocalProduceAvailability: 0.5,
		SeasonalVariety:          []string{"vegetables", "dairy", "grains"},
		FoodMilesAverage:         900,
		OrganicMarketShare:       0.20,
	},
}

// FoodSourcingTable resolves cities to local food sourcing records.
type FoodSourcingTable struct{}

// NewFoodSourcingTable creates the static food sourcing provider.
func NewFoodSourcingTable() *FoodSourcingTable {
	return &FoodSourcingTable{}
}

// Sourcing returns the food sourcing record for a city. Cities without a
// dedicated record get the average default.
func (f *FoodSourcingTable) Sourcing(ctx context.Context, city string) (*model.FoodSourcing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if record, ok := foodRecords[city]; ok {
		return &record, nil
	}
	record := model.DefaultFoodSourcing()
	return &record, nil
}
