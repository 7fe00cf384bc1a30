package server

import (
	"ladle/internal/models"
	"ladle/internal/observability"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) addRelation(c *fiber.Ctx, kind models.RelationKind) error {
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	summary, err := s.relationService.Add(c.UserContext(), currentUserID(c), recipeID, kind)
	if err != nil {
		observability.RelationToggles.WithLabelValues(string(kind), "add", "error").Inc()
		return models.RespondError(c, err)
	}

	observability.RelationToggles.WithLabelValues(string(kind), "add", "success").Inc()
	return c.Status(fiber.StatusCreated).JSON(summary)
}

func (s *Server) removeRelation(c *fiber.Ctx, kind models.RelationKind) error {
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Remove(c.UserContext(), currentUserID(c), recipeID, kind); err != nil {
		observability.RelationToggles.WithLabelValues(string(kind), "remove", "error").Inc()
		return models.RespondError(c, err)
	}

	observability.RelationToggles.WithLabelValues(string(kind), "remove", "success").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// FavoriteRecipe handles POST /api/recipes/:id/favorite
func (s *Server) FavoriteRecipe(c *fiber.Ctx) error {
	return s.addRelation(c, models.RelationFavorite)
}

// UnfavoriteRecipe handles DELETE /api/recipes/:id/favorite
func (s *Server) UnfavoriteRecipe(c *fiber.Ctx) error {
	return s.removeRelation(c, models.RelationFavorite)
}

// AddToCart handles POST /api/recipes/:id/shopping_cart
func (s *Server) AddToCart(c *fiber.Ctx) error {
	return s.addRelation(c, models.RelationCart)
}

// RemoveFromCart handles DELETE /api/recipes/:id/shopping_cart
func (s *Server) RemoveFromCart(c *fiber.Ctx) error {
	return s.removeRelation(c, models.RelationCart)
}

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart
func (s *Server) DownloadShoppingCart(c *fiber.Ctx) error {
	text, err := s.shoppingListService.RenderText(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}

	observability.ShoppingListExports.Inc()
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping_cart.txt"`)
	return c.SendString(text)
}
