package model

// GridIntensity describes the carbon intensity of a regional electricity grid.
type GridIntensity struct {
	Zone              string  `json:"zone"`
	Source            string  `json:"source"`
	CarbonIntensity   float64 `json:"carbon_intensity"`
	FossilFreePercent float64 `json:"fossil_free_percentage"`
}

// FallbackGridIntensity is substituted when the grid lookup fails.
func FallbackGridIntensity() GridIntensity {
	return GridIntensity{
		CarbonIntensity:   400,
		FossilFreePercent: 35,
		Zone:              "unknown",
		Source:            "fallback_data",
	}
}

// WeatherImpact summarizes local weather as it affects heating and cooling.
type WeatherImpact struct {
	Source             string  `json:"source"`
	CurrentTemperature float64 `json:"current_temperature"`
	MaxTemperature     float64 `json:"max_temperature"`
	MinTemperature     float64 `json:"min_temperature"`
	HeatingDegreeDays  float64 `json:"heating_degree_days"`
	CoolingDegreeDays  float64 `json:"cooling_degree_days"`
}

// FallbackWeather is substituted when the weather lookup fails.
func FallbackWeather() WeatherImpact {
	return WeatherImpact{
		CurrentTemperature: 22,
		MaxTemperature:     28,
		MinTemperature:     18,
		HeatingDegreeDays:  0,
		CoolingDegreeDays:  4,
		Source:             "fallback_data",
	}
}

// TransportInfra describes the transport infrastructure available in a city.
type TransportInfra struct {
	PublicTransportQuality string `json:"public_transport_quality"`
	BikeInfrastructure     string `json:"bike_infrastructure"`
	EVChargingStations     int    `json:"ev_charging_stations"`
	CarSharing             bool   `json:"car_sharing"`
	RideSharing            bool   `json:"ride_sharing"`
}

// DefaultTransportInfra is used for cities without a dedicated record.
func DefaultTransportInfra() TransportInfra {
	return TransportInfra{
		PublicTransportQuality: "average",
		BikeInfrastructure:     "average",
		EVChargingStations:     1000,
		CarSharing:             false,
		RideSharing:            true,
	}
}

// FoodSourcing describes local food availability and sourcing quality.
type FoodSourcing struct {
	SeasonalVariety          []string `json:"seasonal_variety"`
	LocalProduceAvailability float64  `json:"local_produce_availability"`
	FoodMilesAverage         float64  `json:"food_miles_average"`
	OrganicMarketShare       float64  `json:"organic_market_share"`
}

// DefaultFoodSourcing is used for cities without a dedicated record.
func DefaultFoodSourcing() FoodSourcing {
	return FoodSourcing{
		LocalProduceAvailability: 0.5,
		SeasonalVariety:          []string{"vegetables", "grains"},
		FoodMilesAverage:         1000,
		OrganicMarketShare:       0.18,
	}
}

// ShoppingInfra describes the sustainable-shopping infrastructure of a city.
type ShoppingInfra struct {
	SecondHandStores  string `json:"second_hand_stores"`
	RepairServices    string `json:"repair_services"`
	LocalArtisans     string `json:"local_artisans"`
	SustainableBrands string `json:"sustainable_brands"`
	RecyclingPrograms string `json:"recycling_programs"`
}

// DefaultShoppingInfra is used for cities without a dedicated record.
func DefaultShoppingInfra() ShoppingInfra {
	return ShoppingInfra{
		SecondHandStores:  "average",
		RepairServices:    "average",
		LocalArtisans:     "average",
		SustainableBrands: "average",
		RecyclingPrograms: "average",
	}
}
