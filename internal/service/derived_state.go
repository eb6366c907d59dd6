package service

import (
	"context"

	"foodgram/internal/repository"
)

// DerivedState resolves the per-viewer flags attached to read models:
// is_favorited, is_in_shopping_cart and is_subscribed. An anonymous viewer
// (id 0) always resolves to false without touching the store.
type DerivedState struct {
	relations repository.RelationRepository
}

func NewDerivedState(relations repository.RelationRepository) *DerivedState {
	return &DerivedState{relations: relations}
}

func (d *DerivedState) IsFavorited(ctx context.Context, viewerID, recipeID uint) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return d.relations.FavoriteExists(ctx, viewerID, recipeID)
}

func (d *DerivedState) IsInCart(ctx context.Context, viewerID, recipeID uint) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return d.relations.CartItemExists(ctx, viewerID, recipeID)
}

func (d *DerivedState) IsSubscribed(ctx context.Context, viewerID, authorID uint) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return d.relations.SubscriptionExists(ctx, viewerID, authorID)
}
