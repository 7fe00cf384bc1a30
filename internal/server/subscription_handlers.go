package server

import (
	"ladle/internal/models"

	"github.com/gofiber/fiber/v2"
)

const defaultSubscriptionRecipes = 3

// Subscribe handles POST /api/users/:id/subscribe
func (s *Server) Subscribe(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	recipesLimit := c.QueryInt("recipes_limit", defaultSubscriptionRecipes)

	view, err := s.subscriptionService.Subscribe(c.UserContext(), currentUserID(c), authorID, recipesLimit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// Unsubscribe handles DELETE /api/users/:id/subscribe
func (s *Server) Unsubscribe(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.subscriptionService.Unsubscribe(c.UserContext(), currentUserID(c), authorID); err != nil {
		return models.RespondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSubscriptions handles GET /api/users/subscriptions
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	p := parsePagination(c, 6)
	recipesLimit := c.QueryInt("recipes_limit", defaultSubscriptionRecipes)

	views, total, err := s.subscriptionService.List(c.UserContext(), currentUserID(c), p.Limit, p.Offset, recipesLimit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count":   total,
		"results": views,
	})
}
