package repository

import (
	"context"
	"time"

	"foodgram/internal/models"
	"foodgram/internal/observability"

	"gorm.io/gorm"
)

// ShoppingListRepository derives the consolidated shopping list for a user's
// cart. The aggregation is a single grouped query: quantities of the same
// ingredient across every cart recipe are summed in the store, never in
// application code.
type ShoppingListRepository interface {
	Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// Aggregate groups by the ingredient identity, sums amounts and orders by
// ingredient name with unit and id as deterministic tie-breaks. An empty cart
// yields an empty slice. The single statement makes the result a consistent
// snapshot without an explicit transaction.
func (r *shoppingListRepository) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	start := time.Now()
	var items []models.ShoppingListItem
	err := r.db.WithContext(ctx).
		Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS ingredient_name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_items.user_id = ?", userID).
		Group("ingredients.id, ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC, ingredients.measurement_unit ASC, ingredients.id ASC").
		Scan(&items).Error
	observability.DatabaseQueryLatency.WithLabelValues("aggregate", "recipe_ingredients").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if items == nil {
		items = []models.ShoppingListItem{}
	}
	return items, nil
}
