package repository

import (
	"context"
	"testing"

	"foodgram/internal/database"
	"foodgram/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory store with the full schema applied.
// A single pooled connection keeps the in-memory database alive across
// queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, unit string) models.Ingredient {
	t.Helper()
	ing := models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(&ing).Error)
	return ing
}

func createTestTag(t *testing.T, db *gorm.DB, name, color, slug string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name, Color: color, Slug: slug}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func createTestRecipe(t *testing.T, db *gorm.DB, authorID uint, name string, pairs map[uint]int, tagIDs []uint) models.Recipe {
	t.Helper()
	repo := NewRecipeRepository(db)
	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        "instructions for " + name,
		CookingTime: 30,
	}
	links := make([]models.RecipeIngredient, 0, len(pairs))
	for id, amount := range pairs {
		links = append(links, models.RecipeIngredient{IngredientID: id, Amount: amount})
	}
	require.NoError(t, repo.Create(context.Background(), &recipe, links, tagIDs))
	return recipe
}
