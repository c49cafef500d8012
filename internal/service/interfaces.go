// Package service defines the interfaces between application components.
package service

import (
	"context"

	"github.com/verdantlabs/verdant/internal/model"
)

// Storage persists completed analyses for history and stats queries.
// The pipeline itself never reads the store mid-run.
type Storage interface {
	SaveAnalysis(ctx context.Context, input string, result *model.AnalysisResult) (int64, error)
	GetRecentAnalyses(ctx context.Context, limit int) ([]model.Conversation, error)
	SearchAnalyses(ctx context.Context, pattern string, limit int) ([]model.Conversation, error)
	GetStats(ctx context.Context) (*model.MemoryStats, error)
	Migrate(ctx context.Context) error
	Close() error
}

// GridIntensityProvider resolves a country to its electricity grid record.
type GridIntensityProvider interface {
	GridIntensity(ctx context.Context, country string) (*model.GridIntensity, error)
}

// WeatherProvider resolves coordinates to a heating/cooling weather record.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, location model.LocationContext) (*model.WeatherImpact, error)
}

// TransportInfraProvider resolves a city to its transport infrastructure.
type TransportInfraProvider interface {
	Infrastructure(ctx context.Context, city string) (*model.TransportInfra, error)
}

// ShoppingInfraProvider resolves a city to its shopping infrastructure.
type ShoppingInfraProvider interface {
	Infrastructure(ctx context.Context, city string) (*model.ShoppingInfra, error)
}

// FoodSourcingProvider resolves a city to its local food sourcing record.
type FoodSourcingProvider interface {
	Sourcing(ctx context.Context, city string) (*model.FoodSourcing, error)
}

// Estimator is one of the four domain analyzers. Provider failures never
// surface from Analyze; they degrade to documented fallback records inside
// the estimator. An error return means the whole domain analysis failed and
// must be substituted by the orchestrator.
type Estimator interface {
	Domain() model.Domain
	Analyze(ctx context.Context, description string, location model.LocationContext) (*model.DomainAnalysis, error)
}
