package model

// Domain is one of the four independent lifestyle categories.
type Domain string

// Lifestyle domains.
const (
	DomainHome        Domain = "home"
	DomainTransport   Domain = "transport"
	DomainDiet        Domain = "diet"
	DomainShopping    Domain = "shopping"
	DomainCrossDomain Domain = "cross_domain"
)

// AllDomains lists the four estimator domains in their canonical order.
func AllDomains() []Domain {
	return []Domain{DomainHome, DomainTransport, DomainDiet, DomainShopping}
}

// HomeSize categorizes a dwelling by floor area proxy.
type HomeSize string

// Home sizes.
const (
	HomeSmall  HomeSize = "small"
	HomeMedium HomeSize = "medium"
	HomeLarge  HomeSize = "large"
)

// EfficiencyTier categorizes appliance and insulation quality.
type EfficiencyTier string

// Efficiency tiers.
const (
	EfficiencyHigh     EfficiencyTier = "high"
	EfficiencyStandard EfficiencyTier = "standard"
	EfficiencyLow      EfficiencyTier = "low"
)

// HomePattern captures home-energy attributes inferred from the description.
// Built once per request and never mutated afterwards.
type HomePattern struct {
	Size            HomeSize       `json:"home_size"`
	Efficiency      EfficiencyTier `json:"appliance_efficiency"`
	RenewableEnergy bool           `json:"renewable_energy"`
}

// DefaultHomePattern returns the pattern used when no keyword matches.
func DefaultHomePattern() HomePattern {
	return HomePattern{Size: HomeMedium, Efficiency: EfficiencyStandard}
}

// VehicleType is the primary vehicle inferred from the description.
type VehicleType string

// Vehicle types, from highest to lowest emission factor.
const (
	VehiclePrivateJet VehicleType = "private_jet"
	VehicleHelicopter VehicleType = "helicopter"
	VehicleLuxuryCar  VehicleType = "luxury_car"
	VehicleSUV        VehicleType = "suv"
	VehicleSedan      VehicleType = "sedan"
	VehicleHybrid     VehicleType = "hybrid"
	VehicleElectric   VehicleType = "electric"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBus        VehicleType = "bus"
	VehicleTrain      VehicleType = "train"
	VehicleBike       VehicleType = "bike"
	VehicleWalk       VehicleType = "walk"
)

// TransportPattern captures travel attributes inferred from the description.
type TransportPattern struct {
	PrimaryVehicle  VehicleType `json:"primary_vehicle"`
	DailyDistanceKm float64     `json:"daily_distance"`
	WeeklyFlights   int         `json:"weekly_flights"`
	FlightKm        float64     `json:"flight_distance"`
	LuxuryTransport bool        `json:"luxury_transport"`
}

// DefaultTransportPattern returns the pattern used when no keyword matches.
func DefaultTransportPattern() TransportPattern {
	return TransportPattern{PrimaryVehicle: VehicleSedan, DailyDistanceKm: 30}
}

// DietType is the overall dietary leaning.
type DietType string

// Diet types.
const (
	DietVegan       DietType = "vegan"
	DietVegetarian  DietType = "vegetarian"
	DietPescatarian DietType = "pescatarian"
	DietOmnivore    DietType = "omnivore"
)

// Frequency is a coarse daily/weekly/monthly cadence.
type Frequency string

// Frequencies.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// DietPattern captures dietary attributes inferred from the description.
type DietPattern struct {
	Type              DietType  `json:"diet_type"`
	MeatFrequency     Frequency `json:"meat_frequency"`
	MeatTypes         []string  `json:"meat_types"`
	OrganicPreference bool      `json:"organic_preference"`
	LuxuryFoods       bool      `json:"luxury_foods"`
}

// DefaultDietPattern returns the pattern used when no keyword matches.
func DefaultDietPattern() DietPattern {
	return DietPattern{Type: DietOmnivore, MeatFrequency: FrequencyDaily}
}

// UpgradeCycle is how often electronics get replaced.
type UpgradeCycle string

// Electronics upgrade cycles.
const (
	UpgradeFast     UpgradeCycle = "1-2 years"
	UpgradeStandard UpgradeCycle = "3-5 years"
	UpgradeSlow     UpgradeCycle = "5+ years"
)

// ShoppingPattern captures consumption attributes inferred from the description.
type ShoppingPattern struct {
	Frequency            Frequency    `json:"shopping_frequency"`
	LuxuryPurchases      bool         `json:"luxury_purchases"`
	FastFashion          bool         `json:"fast_fashion"`
	ElectronicsCycle     UpgradeCycle `json:"electronics_upgrade_cycle"`
	SecondHandPreference bool         `json:"second_hand_preference"`
}

// DefaultShoppingPattern returns the pattern used when no keyword matches.
func DefaultShoppingPattern() ShoppingPattern {
	return ShoppingPattern{Frequency: FrequencyWeekly, ElectronicsCycle: UpgradeStandard}
}
