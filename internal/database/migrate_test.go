package database

import (
	"testing"

	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB pins the pool to one connection so the in-memory database is
// shared across all statements.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestMigrateBuildsFullSchema(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	for _, m := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(m), "expected table for %T", m)
	}
}

func TestMigrateEnforcesUniquePairs(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	recipe := models.Recipe{AuthorID: user.ID, Name: "Toast", Text: "toast it", CookingTime: 5}
	require.NoError(t, db.Create(&recipe).Error)

	fav := models.Favorite{UserID: user.ID, RecipeID: recipe.ID}
	require.NoError(t, db.Create(&fav).Error)

	dup := models.Favorite{UserID: user.ID, RecipeID: recipe.ID}
	err := db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
