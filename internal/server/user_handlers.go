package server

import (
	"foodgram/internal/service"

	"github.com/gofiber/fiber/v2"
)

type userListResponse struct {
	Count   int64              `json:"count"`
	Results []service.UserView `json:"results"`
}

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	viewerID := s.optionalUserID(c)
	pagination := parsePagination(c, 6)

	views, total, err := s.userService.List(c.Context(), viewerID, pagination.Limit, pagination.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(userListResponse{Count: total, Results: views})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.userService.GetProfile(c.Context(), s.optionalUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	view, err := s.userService.GetProfile(c.Context(), userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}
