package models

import (
	"time"
)

// Bounds enforced on recipe payloads before any row is written.
const (
	CookingTimeMin = 1
	CookingTimeMax = 1440

	IngredientAmountMin = 1
	IngredientAmountMax = 10000
)

// Recipe is the aggregate root for a published recipe. It exclusively owns
// its RecipeIngredient and RecipeTag rows: they are only ever written
// through the recipe repository's transactional create/update, and deleting
// a recipe cascades to them (and to favorites and cart entries referencing
// it). Ingredient and Tag are shared reference data and are never touched
// by recipe writes.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Image       string    `gorm:"size:255" json:"image"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CookingTime int       `gorm:"not null" json:"cooking_time"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
}

// RecipeIngredient links a recipe to an ingredient with a quantity.
// The composite primary key makes an ingredient appear at most once per
// recipe; the whole set is replaced wholesale on recipe update.
type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey;autoIncrement:false" json:"-"`
	IngredientID uint `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Amount       int  `gorm:"not null" json:"amount"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}

// TableName specifies the table name for GORM
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// RecipeTag is the join row behind Recipe.Tags. Declared explicitly so the
// aggregate writer can replace the set inside its transaction; wired as the
// many2many join table in database.Migrate.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	TagID    uint `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
}

// TableName specifies the table name for GORM
func (RecipeTag) TableName() string {
	return "recipe_tags"
}

// RecipeSummary is the short representation returned by favorite and cart
// toggles and embedded in subscription listings.
type RecipeSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// Summary returns the short representation of the recipe.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// ShoppingListItem is one aggregated line of a user's shopping list:
// the summed amount of a single ingredient across every recipe in the cart.
// It is derived by query, never persisted.
type ShoppingListItem struct {
	IngredientName  string `json:"ingredient_name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int    `json:"total_amount"`
}
