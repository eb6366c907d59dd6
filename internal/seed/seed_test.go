package seed

import (
	"testing"

	"foodgram/internal/database"
	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
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

func TestSeedRunProducesConsistentData(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db)

	require.NoError(t, seeder.Run(Options{Users: 5, Recipes: 10, Clean: false}))

	var userCount, recipeCount, linkCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipeCount).Error)
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Count(&linkCount).Error)
	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 10, recipeCount)
	assert.NotZero(t, linkCount)

	// Every recipe keeps at least one ingredient and a valid cooking time.
	var recipes []models.Recipe
	require.NoError(t, db.Preload("Ingredients").Find(&recipes).Error)
	for _, r := range recipes {
		assert.NotEmpty(t, r.Ingredients, "recipe %d has no ingredients", r.ID)
		assert.GreaterOrEqual(t, r.CookingTime, models.CookingTimeMin)
		assert.LessOrEqual(t, r.CookingTime, models.CookingTimeMax)
	}

	// No seeded subscription is a self-follow.
	var selfFollows int64
	require.NoError(t, db.Model(&models.Subscription{}).
		Where("follower_id = author_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)
}

func TestSeedClearAll(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db)

	require.NoError(t, seeder.Run(Options{Users: 2, Recipes: 3, Clean: false}))
	require.NoError(t, seeder.ClearAll())

	for _, model := range []interface{}{
		&models.User{}, &models.Recipe{}, &models.Ingredient{},
		&models.Tag{}, &models.Favorite{}, &models.Subscription{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "expected %T cleared", model)
	}
}
