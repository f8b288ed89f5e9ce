package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/budgetease/backend/internal/domain/entity"
	"github.com/budgetease/backend/internal/infra/db"
	"github.com/budgetease/backend/internal/integration/persistence"
	"github.com/budgetease/backend/internal/integration/persistence/model"
)

func openDatabase(v *viper.Viper) (*db.Database, error) {
	cfg := loadConfig(v)
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	return database, nil
}

// migrateAndSeed creates the schema and inserts the default global categories.
// Both steps are idempotent.
func migrateAndSeed(ctx context.Context, database *db.Database) error {
	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		return err
	}
	if err := persistence.NewCategoryRepository(database.DB()).SeedGlobals(ctx, entity.DefaultCategories()); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}
