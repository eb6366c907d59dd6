package seed

import (
	"context"
	"log"

	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/service"

	"gorm.io/gorm"
)

// Options controls the amount of demo data generated.
type Options struct {
	Users   int
	Recipes int
	Clean   bool
}

// Seeder populates the database with a demo catalog, users, recipes and the
// relations between them. The catalog goes through CatalogService so the
// same validation and cache invalidation apply as for any other import.
type Seeder struct {
	db      *gorm.DB
	catalog *service.CatalogService
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		catalog: service.NewCatalogService(repository.NewCatalogRepository(db)),
	}
}

// ClearAll removes seeded data in dependency order.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Favorite{},
		&models.ShoppingCartItem{},
		&models.Subscription{},
		&models.RecipeIngredient{},
		&models.RecipeTag{},
		&models.Recipe{},
		&models.Tag{},
		&models.Ingredient{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	log.Println("database cleared")
	return nil
}

var tagPresets = []models.Tag{
	{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
	{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	{Name: "Dessert", Color: "#F9A62B", Slug: "dessert"},
}

var ingredientPresets = []models.Ingredient{
	{Name: "eggs", MeasurementUnit: "pcs"},
	{Name: "milk", MeasurementUnit: "ml"},
	{Name: "flour", MeasurementUnit: "g"},
	{Name: "sugar", MeasurementUnit: "g"},
	{Name: "salt", MeasurementUnit: "g"},
	{Name: "butter", MeasurementUnit: "g"},
	{Name: "olive oil", MeasurementUnit: "ml"},
	{Name: "onion", MeasurementUnit: "pcs"},
	{Name: "garlic", MeasurementUnit: "cloves"},
	{Name: "tomato", MeasurementUnit: "pcs"},
	{Name: "potato", MeasurementUnit: "pcs"},
	{Name: "carrot", MeasurementUnit: "pcs"},
	{Name: "chicken breast", MeasurementUnit: "g"},
	{Name: "beef", MeasurementUnit: "g"},
	{Name: "rice", MeasurementUnit: "g"},
	{Name: "pasta", MeasurementUnit: "g"},
	{Name: "cheese", MeasurementUnit: "g"},
	{Name: "sour cream", MeasurementUnit: "g"},
	{Name: "dill", MeasurementUnit: "g"},
	{Name: "black pepper", MeasurementUnit: "g"},
}

// Run seeds the catalog and generates users, recipes, favorites, carts and
// subscriptions.
func (s *Seeder) Run(opts Options) error {
	ctx := context.Background()

	if opts.Clean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	tags := make([]models.Tag, len(tagPresets))
	copy(tags, tagPresets)
	for i := range tags {
		if err := s.catalog.CreateTag(ctx, &tags[i]); err != nil {
			return err
		}
	}

	batch := make([]models.Ingredient, len(ingredientPresets))
	copy(batch, ingredientPresets)
	if err := s.catalog.ImportIngredients(ctx, batch); err != nil {
		return err
	}
	// Reload so the factories link by the assigned ids.
	ingredients, err := s.catalog.SearchIngredients(ctx, "", 0)
	if err != nil {
		return err
	}
	log.Printf("seeded %d tags and %d ingredients", len(tags), len(ingredients))

	factory := NewFactory(s.db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	recipes := make([]*models.Recipe, 0, opts.Recipes)
	for i := 0; i < opts.Recipes; i++ {
		author := users[factory.r.Intn(len(users))]
		recipe, err := factory.CreateRecipe(author, ingredients, tags)
		if err != nil {
			return err
		}
		recipes = append(recipes, recipe)
	}
	log.Printf("seeded %d recipes", len(recipes))

	if err := s.wireRelations(factory, users, recipes); err != nil {
		return err
	}
	log.Println("seeding complete")
	return nil
}

// wireRelations sprinkles favorites, cart entries and subscriptions across
// the seeded users. Pairs are deduplicated up front so inserts never trip the
// unique indexes.
func (s *Seeder) wireRelations(factory *Factory, users []*models.User, recipes []*models.Recipe) error {
	type pair struct{ a, b uint }

	favorites := map[pair]struct{}{}
	carts := map[pair]struct{}{}
	subs := map[pair]struct{}{}

	for _, user := range users {
		for i := 0; i < factory.r.Intn(6); i++ {
			recipe := recipes[factory.r.Intn(len(recipes))]
			favorites[pair{user.ID, recipe.ID}] = struct{}{}
		}
		for i := 0; i < factory.r.Intn(4); i++ {
			recipe := recipes[factory.r.Intn(len(recipes))]
			carts[pair{user.ID, recipe.ID}] = struct{}{}
		}
		for i := 0; i < factory.r.Intn(4); i++ {
			author := users[factory.r.Intn(len(users))]
			if author.ID != user.ID {
				subs[pair{user.ID, author.ID}] = struct{}{}
			}
		}
	}

	for p := range favorites {
		if err := s.db.Create(&models.Favorite{UserID: p.a, RecipeID: p.b}).Error; err != nil {
			return err
		}
	}
	for p := range carts {
		if err := s.db.Create(&models.ShoppingCartItem{UserID: p.a, RecipeID: p.b}).Error; err != nil {
			return err
		}
	}
	for p := range subs {
		if err := s.db.Create(&models.Subscription{FollowerID: p.a, AuthorID: p.b}).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d favorites, %d cart entries, %d subscriptions",
		len(favorites), len(carts), len(subs))
	return nil
}
