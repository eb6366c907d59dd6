// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"foodgram/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser persists a demo user. Every seeded account shares the password
// "password123" so demo logins are predictable.
func (f *Factory) CreateUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	user := &models.User{
		Username:  fmt.Sprintf("%s_%s%d", first, last, f.r.Intn(10000)),
		Email:     gofakeit.Email(),
		FirstName: first,
		LastName:  last,
		Password:  string(hash),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

var dishNames = []string{
	"Pancakes", "Borscht", "Shakshuka", "Carbonara", "Ratatouille",
	"Okroshka", "Pad Thai", "Chili con carne", "Minestrone", "Pelmeni",
	"Risotto", "Goulash", "Tom Yum", "Frittata", "Pilaf",
}

// CreateRecipe persists a recipe with a random subset of the given catalog
// rows, written through the same transactional path the API uses.
func (f *Factory) CreateRecipe(author *models.User, ingredients []models.Ingredient, tags []models.Tag) (*models.Recipe, error) {
	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        dishNames[f.r.Intn(len(dishNames))],
		Image:       fmt.Sprintf("recipes/images/%s.jpg", gofakeit.UUID()),
		Text:        gofakeit.Paragraph(1, 3, 8, "\n"),
		CookingTime: 5 + f.r.Intn(116),
		CreatedAt:   time.Now().Add(-time.Duration(f.r.Intn(90*24)) * time.Hour),
	}

	picked := f.pickIngredients(ingredients, 2+f.r.Intn(4))
	links := make([]models.RecipeIngredient, 0, len(picked))
	for _, ing := range picked {
		links = append(links, models.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       1 + f.r.Intn(500),
		})
	}

	tagIDs := make([]uint, 0)
	for _, tag := range tags {
		if f.r.Intn(2) == 0 {
			tagIDs = append(tagIDs, tag.ID)
		}
	}
	if len(tagIDs) == 0 && len(tags) > 0 {
		tagIDs = append(tagIDs, tags[f.r.Intn(len(tags))].ID)
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Tags").Create(recipe).Error; err != nil {
			return err
		}
		for i := range links {
			links[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (f *Factory) pickIngredients(pool []models.Ingredient, n int) []models.Ingredient {
	if n > len(pool) {
		n = len(pool)
	}
	idx := f.r.Perm(len(pool))[:n]
	picked := make([]models.Ingredient, 0, n)
	for _, i := range idx {
		picked = append(picked, pool[i])
	}
	return picked
}
