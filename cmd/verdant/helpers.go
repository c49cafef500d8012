package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/verdantlabs/verdant/internal/config"
	"github.com/verdantlabs/verdant/internal/estimator"
	"github.com/verdantlabs/verdant/internal/location"
	"github.com/verdantlabs/verdant/internal/providers"
	"github.com/verdantlabs/verdant/internal/service"
	"github.com/verdantlabs/verdant/internal/storage"
	"github.com/verdantlabs/verdant/internal/workflow"
)

func databasePath() (string, error) {
	if dbPath := viper.GetString("database.path"); dbPath != "" {
		return config.ExpandPath(dbPath), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "verdant", "verdant.db"), nil
}

// openStorage opens the analysis history store and brings its schema up to
// date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return store, nil
}

// newAnalysisEngine wires the providers, estimators, and pipeline stages.
func newAnalysisEngine() *workflow.Engine {
	estimators := []service.Estimator{
		estimator.NewHomeEstimator(providers.NewGridTable(), providers.NewWeatherTable()),
		estimator.NewTransportEstimator(providers.NewTransportInfraTable()),
		estimator.NewDietEstimator(providers.NewFoodSourcingTable()),
		estimator.NewShoppingEstimator(providers.NewShoppingInfraTable()),
	}
	return workflow.NewEngine(location.NewResolver(), estimators)
}
