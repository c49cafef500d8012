package estimator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/verdantlabs/verdant/internal/common"
	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/service"
)

// Emission factors in kg CO2 per kg of food.
var foodEmissions = map[string]float64{
	"beef":       60.0,
	"lamb":       24.0,
	"cheese":     21.0,
	"pork":       7.2,
	"chicken":    6.9,
	"fish":       6.1,
	"eggs":       4.2,
	"rice":       2.7,
	"milk":       3.2,
	"wheat":      1.4,
	"vegetables": 0.4,
	"fruits":     0.3,
	"legumes":    0.7,
	"nuts":       0.3,
}

var dietTypeRules = []keywordRule[model.DietType]{
	{value: model.DietVegan, keywords: []string{"vegan", "plant-based", "no animal products"}},
	{value: model.DietVegetarian, keywords: []string{"vegetarian", "no meat", "plant diet"}},
	{value: model.DietPescatarian, keywords: []string{"pescatarian", "fish only", "no meat except fish"}},
	{value: model.DietOmnivore, keywords: []string{"meat", "everything", "omnivore"}},
}

// meatTypeKeywords are all evaluated; any number of meat types may match.
var meatTypeKeywords = []struct {
	meat     string
	keywords []string
}{
	{meat: "beef", keywords: []string{"beef", "steak", "wagyu", "hamburger", "burger"}},
	{meat: "pork", keywords: []string{"pork", "bacon", "ham", "sausage"}},
	{meat: "chicken", keywords: []string{"chicken", "poultry", "turkey"}},
	{meat: "lamb", keywords: []string{"lamb", "mutton"}},
	{meat: "fish", keywords: []string{"fish", "salmon", "tuna", "seafood"}},
}

var mealFrequencyRules = []keywordRule[model.Frequency]{
	{value: model.FrequencyDaily, keywords: []string{"daily", "every day", "each day"}},
	{value: model.FrequencyWeekly, keywords: []string{"weekly", "few times a week", "several times"}},
	{value: model.FrequencyMonthly, keywords: []string{"monthly", "rarely", "occasionally"}},
}

var luxuryFoodKeywords = []string{"wagyu", "caviar", "truffle", "premium", "expensive", "fine dining"}

var organicKeywords = []string{"local", "organic", "farm-to-table", "sustainable", "farmers market"}

var meatFrequencyMultipliers = map[model.Frequency]float64{
	model.FrequencyDaily:   1.5,
	model.FrequencyWeekly:  1.0,
	model.FrequencyMonthly: 0.3,
}

var dietBaseScores = map[model.DietType]float64{
	model.DietVegan:       0.9,
	model.DietVegetarian:  0.7,
	model.DietPescatarian: 0.6,
	model.DietOmnivore:    0.3,
}

type nutritionProfile struct {
	protein float64
	b12     float64
	iron    float64
	omega3  float64
}

var dietNutritionProfiles = map[model.DietType]nutritionProfile{
	model.DietVegan:       {protein: 0.7, b12: 0.3, iron: 0.6, omega3: 0.4},
	model.DietVegetarian:  {protein: 0.8, b12: 0.7, iron: 0.7, omega3: 0.5},
	model.DietPescatarian: {protein: 0.9, b12: 0.9, iron: 0.8, omega3: 0.9},
	model.DietOmnivore:    {protein: 0.9, b12: 0.9, iron: 0.9, omega3: 0.7},
}

// DietEstimator analyzes dietary emissions and nutritional balance.
type DietEstimator struct {
	sourcing service.FoodSourcingProvider
}

// NewDietEstimator creates a diet estimator backed by the given food
// sourcing provider.
func NewDietEstimator(sourcing service.FoodSourcingProvider) *DietEstimator {
	return &DietEstimator{sourcing: sourcing}
}

// Domain identifies this estimator.
func (e *DietEstimator) Domain() model.Domain {
	return model.DomainDiet
}

// Analyze infers the dietary pattern and prices annual food emissions.
func (e *DietEstimator) Analyze(ctx context.Context, description string, location model.LocationContext) (*model.DomainAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sourcing, err := e.sourcing.Sourcing(ctx, location.City)
	if err != nil {
		slog.Debug("food sourcing lookup failed, using fallback record", "city", location.City, "error", err)
		fallback := model.DefaultFoodSourcing()
		sourcing = &fallback
	}

	pattern := extractDietPattern(description)
	footprint := dietFootprint(pattern)
	nutrition := analyzeNutrition(pattern)

	return &model.DomainAnalysis{
		Domain:          model.DomainDiet,
		CarbonFootprint: footprint,
		EfficiencyScore: dietEfficiencyScore(pattern),
		KeyFindings:     dietFindings(pattern, footprint),
		Recommendations: dietRecommendations(pattern),
		Diet:            &pattern,
		Sourcing:        sourcing,
		Nutrition:       &nutrition,
	}, nil
}

func extractDietPattern(description string) model.DietPattern {
	lowered := strings.ToLower(description)
	pattern := model.DefaultDietPattern()
	pattern.Type = classify(lowered, dietTypeRules, pattern.Type)
	for _, entry := range meatTypeKeywords {
		if containsAny(lowered, entry.keywords) {
			pattern.MeatTypes = append(pattern.MeatTypes, entry.meat)
		}
	}
	pattern.MeatFrequency = classify(lowered, mealFrequencyRules, pattern.MeatFrequency)
	pattern.LuxuryFoods = containsAny(lowered, luxuryFoodKeywords)
	pattern.OrganicPreference = containsAny(lowered, organicKeywords)
	return pattern
}

func eatsMeat(diet model.DietType) bool {
	return diet != model.DietVegan && diet != model.DietVegetarian && diet != model.DietPescatarian
}

func hasMeatType(pattern model.DietPattern, meat string) bool {
	for _, m := range pattern.MeatTypes {
		if m == meat {
			return true
		}
	}
	return false
}

// dietFootprint estimates annual diet emissions in tons CO2 from base
// consumption tables in kg per year.
func dietFootprint(pattern model.DietPattern) float64 {
	emissions := 0.0
	meatMultiplier := meatFrequencyMultipliers[pattern.MeatFrequency]
	if meatMultiplier == 0 {
		meatMultiplier = 1.0
	}

	meatBase := map[string]float64{"beef": 20, "pork": 15, "chicken": 25}
	if eatsMeat(pattern.Type) {
		for _, meat := range []string{"beef", "pork", "chicken"} {
			if !hasMeatType(pattern, meat) {
				continue
			}
			consumption := meatBase[meat] * meatMultiplier
			if pattern.LuxuryFoods && meat == "beef" {
				consumption *= 2
			}
			emissions += consumption * foodEmissions[meat]
		}
	}

	if pattern.Type != model.DietVegan {
		fishConsumption := 15.0
		if hasMeatType(pattern, "fish") {
			fishConsumption *= 1.5
		}
		emissions += fishConsumption * foodEmissions["fish"]

		// Dairy priced at milk-equivalent kilograms.
		emissions += 100 * foodEmissions["milk"]
	}

	produce := map[string]float64{"vegetables": 150, "fruits": 80}
	for _, food := range []string{"vegetables", "fruits"} {
		consumption := produce[food]
		if pattern.OrganicPreference {
			consumption *= 0.8
		}
		emissions += consumption * foodEmissions[food]
	}

	emissions += 120 * foodEmissions["wheat"]

	return common.Round(emissions/1000, 2)
}

func analyzeNutrition(pattern model.DietPattern) model.NutritionalAnalysis {
	profile, ok := dietNutritionProfiles[pattern.Type]
	if !ok {
		profile = dietNutritionProfiles[model.DietOmnivore]
	}

	var recommendations []string
	if profile.protein < 0.8 {
		recommendations = append(recommendations, "Consider adding legumes, nuts, or plant-based protein sources")
	}
	if profile.b12 < 0.7 {
		recommendations = append(recommendations, "Consider B12 supplementation or fortified foods")
	}
	if profile.iron < 0.7 {
		recommendations = append(recommendations, "Include iron-rich foods like spinach, lentils, or lean meats")
	}
	if profile.omega3 < 0.6 {
		recommendations = append(recommendations, "Add omega-3 sources like fish, walnuts, or flax seeds")
	}

	return model.NutritionalAnalysis{
		OverallScore:    (profile.protein + profile.b12 + profile.iron + profile.omega3) / 4,
		ProteinAdequacy: profile.protein,
		B12Status:       profile.b12,
		IronStatus:      profile.iron,
		Omega3Status:    profile.omega3,
		Recommendations: recommendations,
	}
}

func dietEfficiencyScore(pattern model.DietPattern) float64 {
	score, ok := dietBaseScores[pattern.Type]
	if !ok {
		score = 0.3
	}

	if pattern.Type == model.DietOmnivore {
		switch pattern.MeatFrequency {
		case model.FrequencyWeekly:
			score += 0.2
		case model.FrequencyMonthly:
			score += 0.4
		}
	}

	if pattern.OrganicPreference {
		score += 0.1
	}
	if pattern.LuxuryFoods {
		score -= 0.2
	}

	return clampUnit(score)
}

func dietRecommendations(pattern model.DietPattern) []model.Recommendation {
	var recommendations []model.Recommendation

	if pattern.Type == model.DietOmnivore && pattern.MeatFrequency == model.FrequencyDaily {
		recommendations = append(recommendations, model.Recommendation{
			Action:          "Reduce meat consumption to 3-4 times per week",
			Impact:          "Reduce diet emissions by 30-40%",
			NutritionImpact: "Maintain protein with legumes and fish",
			Priority:        model.PriorityHigh,
			CO2Reduction:    "1-2 tons/year",
		})
	}

	if hasMeatType(pattern, "beef") {
		recommendations = append(recommendations, model.Recommendation{
			Action:          "Replace beef with chicken or plant proteins",
			Impact:          "Reduce diet emissions by 50-70%",
			NutritionImpact: "Similar protein content, lower saturated fat",
			Priority:        model.PriorityHigh,
			CO2Reduction:    "2-4 tons/year",
		})
	}

	if !pattern.OrganicPreference {
		recommendations = append(recommendations, model.Recommendation{
			Action:          "Choose local and seasonal produce",
			Impact:          "Reduce transport emissions by 20-30%",
			NutritionImpact: "Fresher nutrients, seasonal variety",
			Priority:        model.PriorityMedium,
			CO2Reduction:    "0.3-0.8 tons/year",
		})
	}

	recommendations = append(recommendations, model.Recommendation{
		Action:          "Implement 2-3 plant-based days per week",
		Impact:          "Reduce weekly diet emissions by 25-35%",
		NutritionImpact: "Increase fiber and antioxidants",
		Priority:        model.PriorityMedium,
		CO2Reduction:    "0.8-1.5 tons/year",
	})

	return recommendations
}

func dietFindings(pattern model.DietPattern, footprint float64) []string {
	var findings []string

	if footprint > 4 {
		findings = append(findings, "High-impact diet with significant reduction potential")
	}

	if hasMeatType(pattern, "beef") && pattern.MeatFrequency == model.FrequencyDaily {
		findings = append(findings, "Daily beef consumption is primary diet emission source")
	}

	if pattern.LuxuryFoods {
		findings = append(findings, "Luxury food choices significantly increase carbon impact")
	}

	if pattern.Type == model.DietVegan || pattern.Type == model.DietVegetarian {
		findings = append(findings, "Plant-based diet provides excellent carbon efficiency")
	}

	return findings
}
