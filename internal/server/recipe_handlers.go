package server

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ladle/internal/cache"
	"ladle/internal/models"
	"ladle/internal/observability"
	"ladle/internal/repository"
	"ladle/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const recipeCacheTTL = 10 * time.Minute

type recipeRequest struct {
	Name        string                          `json:"name"`
	Text        string                          `json:"text"`
	CookingTime int                             `json:"cooking_time"`
	Image       string                          `json:"image"`
	Tags        []uint                          `json:"tags"`
	Ingredients []service.RecipeIngredientInput `json:"ingredients"`
}

// storeImage decodes a base64 payload (optionally a data URI) and writes it
// under the upload directory with a random name. Returns the stored path.
func (s *Server) storeImage(data string) (string, error) {
	if data == "" {
		return "", nil
	}

	ext := "png"
	payload := data
	if strings.HasPrefix(data, "data:") {
		meta, rest, found := strings.Cut(data, ",")
		if !found {
			return "", models.NewValidationError("Invalid image encoding")
		}
		payload = rest
		if mime, ok := strings.CutPrefix(meta, "data:image/"); ok {
			ext = strings.TrimSuffix(mime, ";base64")
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", models.NewValidationError("Invalid image encoding")
	}

	dir := filepath.Join(s.config.UploadDir, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}
	return path, nil
}

func (s *Server) parseRecipeInput(c *fiber.Ctx) (service.RecipeInput, error) {
	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return service.RecipeInput{}, models.NewValidationError("Invalid request body")
	}

	image, err := s.storeImage(req.Image)
	if err != nil {
		return service.RecipeInput{}, err
	}

	return service.RecipeInput{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       image,
		TagIDs:      req.Tags,
		Ingredients: req.Ingredients,
	}, nil
}

// CreateRecipe handles POST /api/recipes
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	input, err := s.parseRecipeInput(c)
	if err != nil {
		observability.RecipeWrites.WithLabelValues("create", "error").Inc()
		return models.RespondError(c, err)
	}

	view, err := s.recipeService.Create(c.UserContext(), currentUserID(c), input)
	if err != nil {
		observability.RecipeWrites.WithLabelValues("create", "error").Inc()
		return models.RespondError(c, err)
	}

	observability.RecipeWrites.WithLabelValues("create", "success").Inc()
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetRecipes handles GET /api/recipes
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	p := parsePagination(c, 6)

	filter := repository.RecipeFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if author := c.QueryInt("author", 0); author > 0 {
		filter.AuthorID = uint(author)
	}
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		filter.TagSlugs = append(filter.TagSlugs, string(slug))
	}
	if viewerID != 0 {
		if c.QueryBool("is_favorited") {
			filter.FavoritedBy = viewerID
		}
		if c.QueryBool("is_in_shopping_cart") {
			filter.InCartOf = viewerID
		}
	}

	views, total, err := s.recipeService.List(c.UserContext(), filter, viewerID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count":   total,
		"results": views,
	})
}

// GetRecipe handles GET /api/recipes/:id. The viewer-independent part of the
// read model is served cache-aside; relation flags are filled in per viewer.
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	ctx := c.UserContext()

	var view models.RecipeView
	if err := cache.CacheAside(ctx, cache.RecipeKey(recipeID), &view, recipeCacheTTL, func() error {
		fetched, err := s.recipeService.Get(ctx, recipeID, 0)
		if err != nil {
			return err
		}
		view = *fetched
		return nil
	}); err != nil {
		return models.RespondError(c, err)
	}

	if viewerID, ok := s.optionalUserID(c); ok {
		favorited, err := s.relationRepo.Exists(ctx, viewerID, recipeID, models.RelationFavorite)
		if err != nil {
			return models.RespondError(c, err)
		}
		inCart, err := s.relationRepo.Exists(ctx, viewerID, recipeID, models.RelationCart)
		if err != nil {
			return models.RespondError(c, err)
		}
		view.IsFavorited = favorited
		view.IsInCart = inCart
	}

	return c.JSON(view)
}

// UpdateRecipe handles PATCH /api/recipes/:id
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	input, err := s.parseRecipeInput(c)
	if err != nil {
		observability.RecipeWrites.WithLabelValues("update", "error").Inc()
		return models.RespondError(c, err)
	}

	view, err := s.recipeService.Update(c.UserContext(), currentUserID(c), recipeID, input)
	if err != nil {
		observability.RecipeWrites.WithLabelValues("update", "error").Inc()
		return models.RespondError(c, err)
	}

	cache.Invalidate(c.UserContext(), cache.RecipeKey(recipeID))
	observability.RecipeWrites.WithLabelValues("update", "success").Inc()
	return c.JSON(view)
}

// DeleteRecipe handles DELETE /api/recipes/:id
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.recipeService.Delete(c.UserContext(), currentUserID(c), recipeID); err != nil {
		observability.RecipeWrites.WithLabelValues("delete", "error").Inc()
		return models.RespondError(c, err)
	}

	cache.Invalidate(c.UserContext(), cache.RecipeKey(recipeID))
	observability.RecipeWrites.WithLabelValues("delete", "success").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}
