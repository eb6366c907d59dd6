package service

import (
	"context"
	"fmt"

	"foodgram/internal/models"
	"foodgram/internal/observability"
	"foodgram/internal/repository"
)

// IngredientAmountInput is one (ingredient, amount) pair of a recipe payload.
type IngredientAmountInput struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

// RecipeInput is the payload for recipe create and update. Image carries a
// base64 data URI; on update an empty Image keeps the stored file.
type RecipeInput struct {
	Name        string                  `json:"name"`
	Text        string                  `json:"text"`
	CookingTime int                     `json:"cooking_time"`
	Image       string                  `json:"image"`
	Ingredients []IngredientAmountInput `json:"ingredients"`
	TagIDs      []uint                  `json:"tags"`
}

// RecipeService validates recipe payloads and drives the transactional
// aggregate writes. Validation is strict on both create and update: every
// rule is checked before a single row is written.
type RecipeService struct {
	recipes  repository.RecipeRepository
	catalog  repository.CatalogRepository
	derived  *DerivedState
	mediaDir string
}

func NewRecipeService(recipes repository.RecipeRepository, catalog repository.CatalogRepository, derived *DerivedState, mediaDir string) *RecipeService {
	return &RecipeService{recipes: recipes, catalog: catalog, derived: derived, mediaDir: mediaDir}
}

func validateRecipeInput(input RecipeInput) error {
	if input.Name == "" {
		return models.NewValidationError("name is required")
	}
	if input.Text == "" {
		return models.NewValidationError("text is required")
	}
	if input.CookingTime < models.CookingTimeMin || input.CookingTime > models.CookingTimeMax {
		return models.NewValidationError(fmt.Sprintf(
			"cooking_time must be between %d and %d minutes", models.CookingTimeMin, models.CookingTimeMax))
	}
	if len(input.Ingredients) == 0 {
		return models.NewValidationError("at least one ingredient is required")
	}
	seen := make(map[uint]struct{}, len(input.Ingredients))
	for _, ing := range input.Ingredients {
		if ing.Amount < models.IngredientAmountMin || ing.Amount > models.IngredientAmountMax {
			return models.NewValidationError(fmt.Sprintf(
				"ingredient amount must be between %d and %d", models.IngredientAmountMin, models.IngredientAmountMax))
		}
		if _, dup := seen[ing.ID]; dup {
			return models.NewValidationError(fmt.Sprintf("ingredient %d appears more than once", ing.ID))
		}
		seen[ing.ID] = struct{}{}
	}
	return nil
}

// resolveReferences checks every referenced tag and ingredient against the
// catalog before the transaction starts.
func (s *RecipeService) resolveReferences(ctx context.Context, input RecipeInput) error {
	if len(input.TagIDs) > 0 {
		tags, err := s.catalog.GetTagsByIDs(ctx, input.TagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(input.TagIDs) {
			return models.NewValidationError("unknown tag in payload")
		}
	}
	ids := make([]uint, 0, len(input.Ingredients))
	for _, ing := range input.Ingredients {
		ids = append(ids, ing.ID)
	}
	found, err := s.catalog.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		present := make(map[uint]struct{}, len(found))
		for _, ing := range found {
			present[ing.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := present[id]; !ok {
				return models.NewNotFoundError("ingredient", id)
			}
		}
	}
	return nil
}

func buildLinks(input RecipeInput) []models.RecipeIngredient {
	links := make([]models.RecipeIngredient, 0, len(input.Ingredients))
	for _, ing := range input.Ingredients {
		links = append(links, models.RecipeIngredient{IngredientID: ing.ID, Amount: ing.Amount})
	}
	return links
}

func (s *RecipeService) Create(ctx context.Context, authorID uint, input RecipeInput) (*RecipeView, error) {
	if err := validateRecipeInput(input); err != nil {
		observability.RecipeWritesTotal.WithLabelValues("create", "rejected").Inc()
		return nil, err
	}
	if input.Image == "" {
		return nil, models.NewValidationError("image is required")
	}
	if err := s.resolveReferences(ctx, input); err != nil {
		return nil, err
	}

	imagePath, err := saveRecipeImage(s.mediaDir, input.Image)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        input.Name,
		Image:       imagePath,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}
	if err := s.recipes.Create(ctx, &recipe, buildLinks(input), input.TagIDs); err != nil {
		observability.RecipeWritesTotal.WithLabelValues("create", "error").Inc()
		removeRecipeImage(s.mediaDir, imagePath)
		return nil, err
	}
	observability.RecipeWritesTotal.WithLabelValues("create", "ok").Inc()
	return s.Get(ctx, authorID, recipe.ID)
}

func (s *RecipeService) Update(ctx context.Context, viewerID, recipeID uint, input RecipeInput) (*RecipeView, error) {
	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != viewerID {
		return nil, models.NewForbiddenError("only the author can edit a recipe")
	}
	if err := validateRecipeInput(input); err != nil {
		observability.RecipeWritesTotal.WithLabelValues("update", "rejected").Inc()
		return nil, err
	}
	if err := s.resolveReferences(ctx, input); err != nil {
		return nil, err
	}

	imagePath := existing.Image
	if input.Image != "" {
		imagePath, err = saveRecipeImage(s.mediaDir, input.Image)
		if err != nil {
			return nil, err
		}
	}

	recipe := models.Recipe{
		ID:          recipeID,
		AuthorID:    existing.AuthorID,
		Name:        input.Name,
		Image:       imagePath,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}
	if err := s.recipes.Update(ctx, &recipe, buildLinks(input), input.TagIDs); err != nil {
		observability.RecipeWritesTotal.WithLabelValues("update", "error").Inc()
		if imagePath != existing.Image {
			removeRecipeImage(s.mediaDir, imagePath)
		}
		return nil, err
	}
	observability.RecipeWritesTotal.WithLabelValues("update", "ok").Inc()
	return s.Get(ctx, viewerID, recipeID)
}

func (s *RecipeService) Delete(ctx context.Context, viewerID, recipeID uint) error {
	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if existing.AuthorID != viewerID {
		return models.NewForbiddenError("only the author can delete a recipe")
	}
	return s.recipes.Delete(ctx, recipeID)
}

func (s *RecipeService) Get(ctx context.Context, viewerID, recipeID uint) (*RecipeView, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, viewerID, recipe)
}

func (s *RecipeService) List(ctx context.Context, viewerID uint, filter repository.RecipeFilter) ([]RecipeView, int64, error) {
	recipes, total, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		view, err := s.buildView(ctx, viewerID, &recipes[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

func (s *RecipeService) buildView(ctx context.Context, viewerID uint, recipe *models.Recipe) (*RecipeView, error) {
	favorited, err := s.derived.IsFavorited(ctx, viewerID, recipe.ID)
	if err != nil {
		return nil, err
	}
	inCart, err := s.derived.IsInCart(ctx, viewerID, recipe.ID)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.derived.IsSubscribed(ctx, viewerID, recipe.AuthorID)
	if err != nil {
		return nil, err
	}

	ingredients := make([]IngredientAmountView, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		ingredients = append(ingredients, IngredientAmountView{
			ID:              ri.IngredientID,
			Name:            ri.Ingredient.Name,
			MeasurementUnit: ri.Ingredient.MeasurementUnit,
			Amount:          ri.Amount,
		})
	}
	tags := recipe.Tags
	if tags == nil {
		tags = []models.Tag{}
	}

	return &RecipeView{
		ID:          recipe.ID,
		Tags:        tags,
		Author:      userView(&recipe.Author, subscribed),
		Ingredients: ingredients,
		IsFavorited: favorited,
		IsInCart:    inCart,
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
	}, nil
}
