package database

import (
	"fmt"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema for every persistent model. It is shared by
// Connect (non-production), cmd/migrate, and test setup so that all three
// build exactly the same schema, including the explicit recipe_tags join
// model with its composite primary key.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Recipe{}, "Tags", &models.RecipeTag{}); err != nil {
		return fmt.Errorf("failed to set up recipe_tags join table: %w", err)
	}

	if err := db.AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	return nil
}
