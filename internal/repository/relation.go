package repository

import (
	"context"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

// RelationRepository stores the three user-owned relation sets: favorites,
// shopping cart entries and subscriptions. Each pair is covered by a unique
// index, which stays the authoritative guard against concurrent duplicate
// inserts; Exists checks are advisory only.
type RelationRepository interface {
	FavoriteExists(ctx context.Context, userID, recipeID uint) (bool, error)
	CreateFavorite(ctx context.Context, userID, recipeID uint) error
	DeleteFavorite(ctx context.Context, userID, recipeID uint) (bool, error)

	CartItemExists(ctx context.Context, userID, recipeID uint) (bool, error)
	CreateCartItem(ctx context.Context, userID, recipeID uint) error
	DeleteCartItem(ctx context.Context, userID, recipeID uint) (bool, error)

	SubscriptionExists(ctx context.Context, followerID, authorID uint) (bool, error)
	CreateSubscription(ctx context.Context, followerID, authorID uint) error
	DeleteSubscription(ctx context.Context, followerID, authorID uint) (bool, error)
	ListSubscribedAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error)
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) pairExists(ctx context.Context, model interface{}, cond string, a, b uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Where(cond, a, b).Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *relationRepository) FavoriteExists(ctx context.Context, userID, recipeID uint) (bool, error) {
	return r.pairExists(ctx, &models.Favorite{}, "user_id = ? AND recipe_id = ?", userID, recipeID)
}

func (r *relationRepository) CreateFavorite(ctx context.Context, userID, recipeID uint) error {
	fav := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return translateWriteError(err, "favorite")
	}
	return nil
}

// DeleteFavorite reports whether a row was actually removed, so callers can
// surface "was not favorited" without a prior read.
func (r *relationRepository) DeleteFavorite(ctx context.Context, userID, recipeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) CartItemExists(ctx context.Context, userID, recipeID uint) (bool, error) {
	return r.pairExists(ctx, &models.ShoppingCartItem{}, "user_id = ? AND recipe_id = ?", userID, recipeID)
}

func (r *relationRepository) CreateCartItem(ctx context.Context, userID, recipeID uint) error {
	item := models.ShoppingCartItem{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return translateWriteError(err, "shopping cart entry")
	}
	return nil
}

func (r *relationRepository) DeleteCartItem(ctx context.Context, userID, recipeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCartItem{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) SubscriptionExists(ctx context.Context, followerID, authorID uint) (bool, error) {
	return r.pairExists(ctx, &models.Subscription{}, "follower_id = ? AND author_id = ?", followerID, authorID)
}

func (r *relationRepository) CreateSubscription(ctx context.Context, followerID, authorID uint) error {
	sub := models.Subscription{FollowerID: followerID, AuthorID: authorID}
	if err := r.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return translateWriteError(err, "subscription")
	}
	return nil
}

func (r *relationRepository) DeleteSubscription(ctx context.Context, followerID, authorID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListSubscribedAuthors returns the authors the follower subscribed to,
// newest subscription first, with each author's recipes preloaded for the
// subscription feed.
func (r *relationRepository) ListSubscribedAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.follower_id = ?", followerID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var authors []models.User
	q := base.Session(&gorm.Session{}).
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipes.created_at DESC, recipes.id DESC")
		}).
		Order("subscriptions.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&authors).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return authors, total, nil
}
