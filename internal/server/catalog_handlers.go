package server

import (
	"ladle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.catalogRepo.ListTags(c.UserContext())
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(tags)
}

// GetTag handles GET /api/tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	tagID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.catalogRepo.GetTag(c.UserContext(), tagID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(tag)
}

// GetIngredients handles GET /api/ingredients with optional name prefix search
func (s *Server) GetIngredients(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	ingredients, err := s.catalogRepo.SearchIngredients(c.UserContext(), c.Query("name"), p.Limit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(ingredients)
}

// GetIngredient handles GET /api/ingredients/:id
func (s *Server) GetIngredient(c *fiber.Ctx) error {
	ingredientID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ingredient, err := s.catalogRepo.GetIngredient(c.UserContext(), ingredientID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(ingredient)
}
