package service

import (
	"context"

	"foodgram/internal/models"
	"foodgram/internal/observability"
	"foodgram/internal/repository"
)

// RelationService implements the favorite, shopping cart and subscription
// toggles. Adding an existing pair or removing a missing one is a
// validation error, never a silent no-op; the unique index remains the
// final word under concurrency, and losing that race surfaces as a
// conflict from the repository.
type RelationService struct {
	relations repository.RelationRepository
	recipes   repository.RecipeRepository
	users     repository.UserRepository
}

func NewRelationService(relations repository.RelationRepository, recipes repository.RecipeRepository, users repository.UserRepository) *RelationService {
	return &RelationService{relations: relations, recipes: recipes, users: users}
}

func (s *RelationService) AddFavorite(ctx context.Context, userID, recipeID uint) (*models.RecipeSummary, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	exists, err := s.relations.FavoriteExists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("recipe is already favorited")
	}
	if err := s.relations.CreateFavorite(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	observability.RelationTogglesTotal.WithLabelValues("favorite", "add").Inc()
	summary := recipe.Summary()
	return &summary, nil
}

func (s *RelationService) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	removed, err := s.relations.DeleteFavorite(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewValidationError("recipe is not favorited")
	}
	observability.RelationTogglesTotal.WithLabelValues("favorite", "remove").Inc()
	return nil
}

func (s *RelationService) AddToCart(ctx context.Context, userID, recipeID uint) (*models.RecipeSummary, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	exists, err := s.relations.CartItemExists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("recipe is already in the shopping cart")
	}
	if err := s.relations.CreateCartItem(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	observability.RelationTogglesTotal.WithLabelValues("cart", "add").Inc()
	summary := recipe.Summary()
	return &summary, nil
}

func (s *RelationService) RemoveFromCart(ctx context.Context, userID, recipeID uint) error {
	removed, err := s.relations.DeleteCartItem(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewValidationError("recipe is not in the shopping cart")
	}
	observability.RelationTogglesTotal.WithLabelValues("cart", "remove").Inc()
	return nil
}

// Subscribe rejects self-subscription before any read or write happens.
func (s *RelationService) Subscribe(ctx context.Context, followerID, authorID uint) (*AuthorView, error) {
	if followerID == authorID {
		return nil, models.NewValidationError("subscribing to yourself is not allowed")
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	exists, err := s.relations.SubscriptionExists(ctx, followerID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("already subscribed to this author")
	}
	if err := s.relations.CreateSubscription(ctx, followerID, authorID); err != nil {
		return nil, err
	}
	observability.RelationTogglesTotal.WithLabelValues("subscription", "add").Inc()

	recipes, _, err := s.recipes.List(ctx, repository.RecipeFilter{AuthorID: authorID})
	if err != nil {
		return nil, err
	}
	view := authorView(author, recipes, 0)
	return &view, nil
}

// Unsubscribe has no self check; a follower can never hold a subscription
// to themselves, so the missing-pair rejection covers that case.
func (s *RelationService) Unsubscribe(ctx context.Context, followerID, authorID uint) error {
	removed, err := s.relations.DeleteSubscription(ctx, followerID, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewValidationError("not subscribed to this author")
	}
	observability.RelationTogglesTotal.WithLabelValues("subscription", "remove").Inc()
	return nil
}

// ListSubscriptions returns the authors the user follows with their recipes
// in short form. recipesLimit > 0 caps the recipes shown per author while
// RecipesCount keeps the full number.
func (s *RelationService) ListSubscriptions(ctx context.Context, followerID uint, limit, offset, recipesLimit int) ([]AuthorView, int64, error) {
	authors, total, err := s.relations.ListSubscribedAuthors(ctx, followerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views := make([]AuthorView, 0, len(authors))
	for i := range authors {
		views = append(views, authorViewFromUser(&authors[i], recipesLimit))
	}
	return views, total, nil
}

func authorView(author *models.User, recipes []models.Recipe, recipesLimit int) AuthorView {
	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, recipes[i].Summary())
	}
	count := len(summaries)
	if recipesLimit > 0 && len(summaries) > recipesLimit {
		summaries = summaries[:recipesLimit]
	}
	return AuthorView{
		UserView:     userView(author, true),
		Recipes:      summaries,
		RecipesCount: count,
	}
}

func authorViewFromUser(author *models.User, recipesLimit int) AuthorView {
	return authorView(author, author.Recipes, recipesLimit)
}
