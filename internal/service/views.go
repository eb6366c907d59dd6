// Package service implements the application's business logic on top of the
// repository layer. Services validate input before any row is written and
// attach per-viewer derived state to everything they return.
package service

import (
	"foodgram/internal/models"
)

// UserView is a user profile as seen by a particular viewer.
type UserView struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// IngredientAmountView is one ingredient line of a recipe detail.
type IngredientAmountView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeView is the full recipe representation with viewer-dependent flags.
type RecipeView struct {
	ID          uint                   `json:"id"`
	Tags        []models.Tag           `json:"tags"`
	Author      UserView               `json:"author"`
	Ingredients []IngredientAmountView `json:"ingredients"`
	IsFavorited bool                   `json:"is_favorited"`
	IsInCart    bool                   `json:"is_in_shopping_cart"`
	Name        string                 `json:"name"`
	Image       string                 `json:"image"`
	Text        string                 `json:"text"`
	CookingTime int                    `json:"cooking_time"`
}

// AuthorView is a subscription feed entry: the followed author plus their
// recipes in short form.
type AuthorView struct {
	UserView
	Recipes      []models.RecipeSummary `json:"recipes"`
	RecipesCount int                    `json:"recipes_count"`
}

func userView(u *models.User, isSubscribed bool) UserView {
	return UserView{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
