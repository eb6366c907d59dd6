package service

import (
	"context"
	"errors"
	"testing"

	"foodgram/internal/models"
	"foodgram/internal/repository"
)

func TestAddFavoriteReturnsSummary(t *testing.T) {
	recipes := noopRecipeRepo()
	recipes.getByIDFn = func(_ context.Context, id uint) (*models.Recipe, error) {
		return &models.Recipe{ID: id, Name: "Omelette", Image: "recipes/images/x.png", CookingTime: 10}, nil
	}
	svc := NewRelationService(noopRelationRepo(), recipes, noopUserRepo())

	summary, err := svc.AddFavorite(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ID != 9 || summary.Name != "Omelette" || summary.CookingTime != 10 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestAddFavoriteAlreadyExists(t *testing.T) {
	relations := noopRelationRepo()
	relations.favoriteExistsFn = func(context.Context, uint, uint) (bool, error) { return true, nil }
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	_, err := svc.AddFavorite(context.Background(), 1, 9)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestAddFavoriteMissingRecipe(t *testing.T) {
	recipes := noopRecipeRepo()
	recipes.getByIDFn = func(_ context.Context, id uint) (*models.Recipe, error) {
		return nil, models.NewNotFoundError("recipe", id)
	}
	svc := NewRelationService(noopRelationRepo(), recipes, noopUserRepo())

	_, err := svc.AddFavorite(context.Background(), 1, 9)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestRemoveFavoriteMissing(t *testing.T) {
	relations := noopRelationRepo()
	relations.deleteFavoriteFn = func(context.Context, uint, uint) (bool, error) { return false, nil }
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	err := svc.RemoveFavorite(context.Background(), 1, 9)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestAddToCartAlreadyExists(t *testing.T) {
	relations := noopRelationRepo()
	relations.cartItemExistsFn = func(context.Context, uint, uint) (bool, error) { return true, nil }
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	_, err := svc.AddToCart(context.Background(), 1, 9)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestRemoveFromCartMissing(t *testing.T) {
	relations := noopRelationRepo()
	relations.deleteCartItemFn = func(context.Context, uint, uint) (bool, error) { return false, nil }
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	err := svc.RemoveFromCart(context.Background(), 1, 9)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestSubscribeToSelf(t *testing.T) {
	relations := noopRelationRepo()
	touched := false
	relations.subscriptionExistsFn = func(context.Context, uint, uint) (bool, error) {
		touched = true
		return false, nil
	}
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		touched = true
		return &models.User{ID: id}, nil
	}
	svc := NewRelationService(relations, noopRecipeRepo(), users)

	_, err := svc.Subscribe(context.Background(), 3, 3)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
	if touched {
		t.Fatal("self-subscription must be rejected before any store access")
	}
}

func TestSubscribeAlreadySubscribed(t *testing.T) {
	relations := noopRelationRepo()
	relations.subscriptionExistsFn = func(context.Context, uint, uint) (bool, error) { return true, nil }
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	_, err := svc.Subscribe(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestSubscribeReturnsAuthorWithRecipes(t *testing.T) {
	recipes := noopRecipeRepo()
	recipes.listFn = func(_ context.Context, f repository.RecipeFilter) ([]models.Recipe, int64, error) {
		if f.AuthorID != 2 {
			t.Fatalf("expected recipes filtered by author 2, got %d", f.AuthorID)
		}
		return []models.Recipe{{ID: 4, Name: "Stew", CookingTime: 90}}, 1, nil
	}
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "bob"}, nil
	}
	svc := NewRelationService(noopRelationRepo(), recipes, users)

	view, err := svc.Subscribe(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.IsSubscribed {
		t.Fatal("a fresh subscription must report is_subscribed true")
	}
	if view.RecipesCount != 1 || len(view.Recipes) != 1 || view.Recipes[0].Name != "Stew" {
		t.Fatalf("unexpected author view %+v", view)
	}
}

func TestUnsubscribeMissing(t *testing.T) {
	relations := noopRelationRepo()
	relations.deleteSubscriptionFn = func(context.Context, uint, uint) (bool, error) { return false, nil }
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	err := svc.Unsubscribe(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestUnsubscribeSelfUsesMissingPairPath(t *testing.T) {
	relations := noopRelationRepo()
	deleted := false
	relations.deleteSubscriptionFn = func(context.Context, uint, uint) (bool, error) {
		deleted = true
		return false, nil
	}
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	err := svc.Unsubscribe(context.Background(), 3, 3)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation app error, got %#v", err)
	}
	if !deleted {
		t.Fatal("remove must consult the store; only add short-circuits on self")
	}
}

func TestListSubscriptionsCapsRecipes(t *testing.T) {
	relations := noopRelationRepo()
	relations.listSubscribedAuthorsFn = func(context.Context, uint, int, int) ([]models.User, int64, error) {
		return []models.User{{
			ID:       2,
			Username: "bob",
			Recipes: []models.Recipe{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B"},
				{ID: 3, Name: "C"},
			},
		}}, 1, nil
	}
	svc := NewRelationService(relations, noopRecipeRepo(), noopUserRepo())

	views, total, err := svc.ListSubscriptions(context.Background(), 1, 10, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(views) != 1 {
		t.Fatalf("unexpected result: total=%d views=%d", total, len(views))
	}
	if len(views[0].Recipes) != 2 || views[0].RecipesCount != 3 {
		t.Fatalf("expected 2 of 3 recipes shown, got %+v", views[0])
	}
}
