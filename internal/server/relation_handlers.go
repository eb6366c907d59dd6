package server

import (
	"foodgram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FavoriteRecipe handles POST /api/recipes/:id/favorite
func (s *Server) FavoriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	summary, err := s.relationService.AddFavorite(c.Context(), userID, recipeID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// UnfavoriteRecipe handles DELETE /api/recipes/:id/favorite
func (s *Server) UnfavoriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.RemoveFavorite(c.Context(), userID, recipeID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddRecipeToCart handles POST /api/recipes/:id/shopping_cart
func (s *Server) AddRecipeToCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	summary, err := s.relationService.AddToCart(c.Context(), userID, recipeID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// RemoveRecipeFromCart handles DELETE /api/recipes/:id/shopping_cart
func (s *Server) RemoveRecipeFromCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.RemoveFromCart(c.Context(), userID, recipeID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart
func (s *Server) DownloadShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	items, err := s.shoppingService.Aggregate(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	text, err := s.shoppingService.RenderText(c.Context(), userID, items)
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping_list.txt"`)
	return c.SendString(text)
}

// SubscribeToAuthor handles POST /api/users/:id/subscribe
func (s *Server) SubscribeToAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.relationService.Subscribe(c.Context(), userID, authorID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UnsubscribeFromAuthor handles DELETE /api/users/:id/subscribe
func (s *Server) UnsubscribeFromAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Unsubscribe(c.Context(), userID, authorID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type subscriptionListResponse struct {
	Count   int64                `json:"count"`
	Results []service.AuthorView `json:"results"`
}

// GetSubscriptions handles GET /api/users/subscriptions
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	pagination := parsePagination(c, 6)
	recipesLimit := c.QueryInt("recipes_limit", 0)

	views, total, err := s.relationService.ListSubscriptions(
		c.Context(), userID, pagination.Limit, pagination.Offset, recipesLimit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(subscriptionListResponse{Count: total, Results: views})
}
