package server

import (
	"strings"

	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/service"

	"github.com/gofiber/fiber/v2"
)

type recipeListResponse struct {
	Count   int64                `json:"count"`
	Results []service.RecipeView `json:"results"`
}

// GetRecipes handles GET /api/recipes with optional filters:
// author, tags (comma-separated slugs), is_favorited, is_in_shopping_cart.
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	viewerID := s.optionalUserID(c)
	pagination := parsePagination(c, 6)

	filter := repository.RecipeFilter{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	}
	if author := c.QueryInt("author", 0); author > 0 {
		filter.AuthorID = uint(author)
	}
	if tags := c.Query("tags"); tags != "" {
		filter.TagSlugs = strings.Split(tags, ",")
	}
	// Relation filters only make sense for an authenticated viewer.
	if viewerID != 0 {
		if c.QueryBool("is_favorited", false) {
			filter.FavoritedBy = viewerID
		}
		if c.QueryBool("is_in_shopping_cart", false) {
			filter.InCartOf = viewerID
		}
	}

	views, total, err := s.recipeService.List(c.Context(), viewerID, filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(recipeListResponse{Count: total, Results: views})
}

// GetRecipe handles GET /api/recipes/:id
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.recipeService.Get(c.Context(), s.optionalUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// CreateRecipe handles POST /api/recipes
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input service.RecipeInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.recipeService.Create(c.Context(), userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdateRecipe handles PATCH /api/recipes/:id
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.RecipeInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.recipeService.Update(c.Context(), userID, id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// DeleteRecipe handles DELETE /api/recipes/:id
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.recipeService.Delete(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
