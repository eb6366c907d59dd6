package service

import (
	"context"

	"foodgram/internal/models"
	"foodgram/internal/repository"
)

type recipeRepoStub struct {
	createFn  func(context.Context, *models.Recipe, []models.RecipeIngredient, []uint) error
	updateFn  func(context.Context, *models.Recipe, []models.RecipeIngredient, []uint) error
	getByIDFn func(context.Context, uint) (*models.Recipe, error)
	listFn    func(context.Context, repository.RecipeFilter) ([]models.Recipe, int64, error)
	deleteFn  func(context.Context, uint) error
}

func (s *recipeRepoStub) Create(ctx context.Context, r *models.Recipe, ing []models.RecipeIngredient, tags []uint) error {
	return s.createFn(ctx, r, ing, tags)
}
func (s *recipeRepoStub) Update(ctx context.Context, r *models.Recipe, ing []models.RecipeIngredient, tags []uint) error {
	return s.updateFn(ctx, r, ing, tags)
}
func (s *recipeRepoStub) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	return s.getByIDFn(ctx, id)
}
func (s *recipeRepoStub) List(ctx context.Context, f repository.RecipeFilter) ([]models.Recipe, int64, error) {
	return s.listFn(ctx, f)
}
func (s *recipeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopRecipeRepo() *recipeRepoStub {
	return &recipeRepoStub{
		createFn: func(context.Context, *models.Recipe, []models.RecipeIngredient, []uint) error { return nil },
		updateFn: func(context.Context, *models.Recipe, []models.RecipeIngredient, []uint) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Recipe, error) {
			return &models.Recipe{ID: id, AuthorID: 1, Name: "Omelette", CookingTime: 10}, nil
		},
		listFn:   func(context.Context, repository.RecipeFilter) ([]models.Recipe, int64, error) { return nil, 0, nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type catalogRepoStub struct {
	listTagsFn            func(context.Context) ([]models.Tag, error)
	getTagByIDFn          func(context.Context, uint) (*models.Tag, error)
	getTagsByIDsFn        func(context.Context, []uint) ([]models.Tag, error)
	createTagFn           func(context.Context, *models.Tag) error
	searchIngredientsFn   func(context.Context, string, int) ([]models.Ingredient, error)
	getIngredientByIDFn   func(context.Context, uint) (*models.Ingredient, error)
	getIngredientsByIDsFn func(context.Context, []uint) ([]models.Ingredient, error)
	createIngredientsFn   func(context.Context, []models.Ingredient) error
}

func (s *catalogRepoStub) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.listTagsFn(ctx)
}
func (s *catalogRepoStub) GetTagByID(ctx context.Context, id uint) (*models.Tag, error) {
	return s.getTagByIDFn(ctx, id)
}
func (s *catalogRepoStub) GetTagsByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	return s.getTagsByIDsFn(ctx, ids)
}
func (s *catalogRepoStub) CreateTag(ctx context.Context, tag *models.Tag) error {
	return s.createTagFn(ctx, tag)
}
func (s *catalogRepoStub) SearchIngredients(ctx context.Context, prefix string, limit int) ([]models.Ingredient, error) {
	return s.searchIngredientsFn(ctx, prefix, limit)
}
func (s *catalogRepoStub) GetIngredientByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	return s.getIngredientByIDFn(ctx, id)
}
func (s *catalogRepoStub) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	return s.getIngredientsByIDsFn(ctx, ids)
}
func (s *catalogRepoStub) CreateIngredients(ctx context.Context, ingredients []models.Ingredient) error {
	return s.createIngredientsFn(ctx, ingredients)
}

// noopCatalogRepo resolves every referenced tag and ingredient as existing.
func noopCatalogRepo() *catalogRepoStub {
	return &catalogRepoStub{
		listTagsFn:   func(context.Context) ([]models.Tag, error) { return nil, nil },
		getTagByIDFn: func(_ context.Context, id uint) (*models.Tag, error) { return &models.Tag{ID: id}, nil },
		getTagsByIDsFn: func(_ context.Context, ids []uint) ([]models.Tag, error) {
			tags := make([]models.Tag, 0, len(ids))
			for _, id := range ids {
				tags = append(tags, models.Tag{ID: id})
			}
			return tags, nil
		},
		createTagFn: func(context.Context, *models.Tag) error { return nil },
		searchIngredientsFn: func(context.Context, string, int) ([]models.Ingredient, error) {
			return nil, nil
		},
		getIngredientByIDFn: func(_ context.Context, id uint) (*models.Ingredient, error) {
			return &models.Ingredient{ID: id}, nil
		},
		getIngredientsByIDsFn: func(_ context.Context, ids []uint) ([]models.Ingredient, error) {
			ingredients := make([]models.Ingredient, 0, len(ids))
			for _, id := range ids {
				ingredients = append(ingredients, models.Ingredient{ID: id})
			}
			return ingredients, nil
		},
		createIngredientsFn: func(context.Context, []models.Ingredient) error { return nil },
	}
}

type relationRepoStub struct {
	favoriteExistsFn        func(context.Context, uint, uint) (bool, error)
	createFavoriteFn        func(context.Context, uint, uint) error
	deleteFavoriteFn        func(context.Context, uint, uint) (bool, error)
	cartItemExistsFn        func(context.Context, uint, uint) (bool, error)
	createCartItemFn        func(context.Context, uint, uint) error
	deleteCartItemFn        func(context.Context, uint, uint) (bool, error)
	subscriptionExistsFn    func(context.Context, uint, uint) (bool, error)
	createSubscriptionFn    func(context.Context, uint, uint) error
	deleteSubscriptionFn    func(context.Context, uint, uint) (bool, error)
	listSubscribedAuthorsFn func(context.Context, uint, int, int) ([]models.User, int64, error)
}

func (s *relationRepoStub) FavoriteExists(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.favoriteExistsFn(ctx, userID, recipeID)
}
func (s *relationRepoStub) CreateFavorite(ctx context.Context, userID, recipeID uint) error {
	return s.createFavoriteFn(ctx, userID, recipeID)
}
func (s *relationRepoStub) DeleteFavorite(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.deleteFavoriteFn(ctx, userID, recipeID)
}
func (s *relationRepoStub) CartItemExists(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.cartItemExistsFn(ctx, userID, recipeID)
}
func (s *relationRepoStub) CreateCartItem(ctx context.Context, userID, recipeID uint) error {
	return s.createCartItemFn(ctx, userID, recipeID)
}
func (s *relationRepoStub) DeleteCartItem(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.deleteCartItemFn(ctx, userID, recipeID)
}
func (s *relationRepoStub) SubscriptionExists(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.subscriptionExistsFn(ctx, followerID, authorID)
}
func (s *relationRepoStub) CreateSubscription(ctx context.Context, followerID, authorID uint) error {
	return s.createSubscriptionFn(ctx, followerID, authorID)
}
func (s *relationRepoStub) DeleteSubscription(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.deleteSubscriptionFn(ctx, followerID, authorID)
}
func (s *relationRepoStub) ListSubscribedAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error) {
	return s.listSubscribedAuthorsFn(ctx, followerID, limit, offset)
}

func noopRelationRepo() *relationRepoStub {
	return &relationRepoStub{
		favoriteExistsFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		createFavoriteFn:     func(context.Context, uint, uint) error { return nil },
		deleteFavoriteFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		cartItemExistsFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		createCartItemFn:     func(context.Context, uint, uint) error { return nil },
		deleteCartItemFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		subscriptionExistsFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		createSubscriptionFn: func(context.Context, uint, uint) error { return nil },
		deleteSubscriptionFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
		listSubscribedAuthorsFn: func(context.Context, uint, int, int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
	}
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	listFn          func(context.Context, int, int) ([]models.User, int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "user"}, nil
		},
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		listFn:          func(context.Context, int, int) ([]models.User, int64, error) { return nil, 0, nil },
	}
}

type shoppingRepoStub struct {
	aggregateFn func(context.Context, uint) ([]models.ShoppingListItem, error)
}

func (s *shoppingRepoStub) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.aggregateFn(ctx, userID)
}
