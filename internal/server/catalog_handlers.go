package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.catalogService.ListTags(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tags)
}

// GetTag handles GET /api/tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.catalogService.GetTag(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tag)
}

// GetIngredients handles GET /api/ingredients?name=<prefix>
func (s *Server) GetIngredients(c *fiber.Ctx) error {
	pagination := parsePagination(c, 50)
	ingredients, err := s.catalogService.SearchIngredients(c.Context(), c.Query("name"), pagination.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(ingredients)
}

// GetIngredient handles GET /api/ingredients/:id
func (s *Server) GetIngredient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ingredient, err := s.catalogService.GetIngredient(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(ingredient)
}
