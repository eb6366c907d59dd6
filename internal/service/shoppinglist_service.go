package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodgram/internal/models"
	"foodgram/internal/observability"
	"foodgram/internal/repository"
)

// ShoppingListService produces the consolidated shopping list for a user's
// cart, both as data and as the downloadable plain text report.
type ShoppingListService struct {
	shopping repository.ShoppingListRepository
	users    repository.UserRepository
}

func NewShoppingListService(shopping repository.ShoppingListRepository, users repository.UserRepository) *ShoppingListService {
	return &ShoppingListService{shopping: shopping, users: users}
}

func (s *ShoppingListService) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	items, err := s.shopping.Aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}
	observability.ShoppingListExportsTotal.Inc()
	return items, nil
}

// RenderText formats the aggregated list for download. The line order is the
// aggregation order, so repeated exports of an unchanged cart are identical.
func (s *ShoppingListService) RenderText(ctx context.Context, userID uint, items []models.ShoppingListItem) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shopping list for %s\n", user.Username)
	fmt.Fprintf(&b, "Generated on %s\n\n", time.Now().Format("2006-01-02"))
	if len(items) == 0 {
		b.WriteString("The shopping cart is empty.\n")
		return b.String(), nil
	}
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s): %d\n", item.IngredientName, item.MeasurementUnit, item.TotalAmount)
	}
	return b.String(), nil
}
