// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"fmt"

	"ladle/internal/models"
	"ladle/internal/repository"
)

// RecipeIngredientInput is one quantified catalog reference in a recipe
// write request.
type RecipeIngredientInput struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

// RecipeInput carries the validated payload of a recipe create or update.
// Image is the already-stored file path, not raw upload bytes.
type RecipeInput struct {
	Name        string
	Text        string
	CookingTime int
	Image       string
	TagIDs      []uint
	Ingredients []RecipeIngredientInput
}

// RecipeService provides recipe composition logic: catalog resolution,
// atomic writes and author-only mutation.
type RecipeService struct {
	recipeRepo   repository.RecipeRepository
	catalogRepo  repository.CatalogRepository
	relationRepo repository.RelationRepository
}

// NewRecipeService returns a new RecipeService.
func NewRecipeService(recipeRepo repository.RecipeRepository, catalogRepo repository.CatalogRepository, relationRepo repository.RelationRepository) *RecipeService {
	return &RecipeService{
		recipeRepo:   recipeRepo,
		catalogRepo:  catalogRepo,
		relationRepo: relationRepo,
	}
}

// resolveInput validates the payload against the catalog. Every tag and
// ingredient must already exist; the write itself never creates catalog rows.
func (s *RecipeService) resolveInput(ctx context.Context, input RecipeInput) ([]models.Tag, []models.RecipeIngredient, error) {
	if input.Name == "" {
		return nil, nil, models.NewValidationError("Recipe name is required")
	}
	if input.CookingTime < 1 {
		return nil, nil, models.NewValidationError("Cooking time must be at least 1 minute")
	}
	if len(input.Ingredients) == 0 {
		return nil, nil, models.NewValidationError("Recipe needs at least one ingredient")
	}
	if len(input.TagIDs) == 0 {
		return nil, nil, models.NewValidationError("Recipe needs at least one tag")
	}

	seen := make(map[uint]bool, len(input.Ingredients))
	ingredientIDs := make([]uint, 0, len(input.Ingredients))
	for _, row := range input.Ingredients {
		if row.Amount < 1 {
			return nil, nil, models.NewValidationError("Ingredient amounts must be at least 1")
		}
		if seen[row.ID] {
			return nil, nil, models.NewValidationError(fmt.Sprintf("Ingredient %d is listed more than once", row.ID))
		}
		seen[row.ID] = true
		ingredientIDs = append(ingredientIDs, row.ID)
	}

	tags, err := s.catalogRepo.GetTagsByIDs(ctx, input.TagIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(input.TagIDs) {
		return nil, nil, models.NewValidationError("One or more tags do not exist")
	}

	ingredients, err := s.catalogRepo.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(ingredients) != len(ingredientIDs) {
		return nil, nil, models.NewValidationError("One or more ingredients do not exist")
	}

	ledger := make([]models.RecipeIngredient, 0, len(input.Ingredients))
	for _, row := range input.Ingredients {
		ledger = append(ledger, models.RecipeIngredient{
			IngredientID: row.ID,
			Amount:       row.Amount,
		})
	}
	return tags, ledger, nil
}

// Create publishes a new recipe. The recipe row, tag links and ingredient
// ledger are written in one transaction.
func (s *RecipeService) Create(ctx context.Context, authorID uint, input RecipeInput) (*models.RecipeView, error) {
	tags, ledger, err := s.resolveInput(ctx, input)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        input.Name,
		Description: input.Text,
		CookingTime: input.CookingTime,
		Image:       input.Image,
		Tags:        tags,
		Ingredients: ledger,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return s.Get(ctx, recipe.ID, authorID)
}

// Get returns the full read model. The favorite and cart flags are computed
// for the viewer; a zero viewerID means anonymous and both flags stay false.
func (s *RecipeService) Get(ctx context.Context, recipeID, viewerID uint) (*models.RecipeView, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, recipe, viewerID)
}

// List returns a page of read models, newest first.
func (s *RecipeService) List(ctx context.Context, filter repository.RecipeFilter, viewerID uint) ([]models.RecipeView, int64, error) {
	recipes, total, err := s.recipeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]models.RecipeView, 0, len(recipes))
	for i := range recipes {
		view, err := s.buildView(ctx, &recipes[i], viewerID)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

// Update rewrites a recipe. Only the author may update; the ingredient
// ledger is patched to match the new payload. Omitted scalar fields keep
// their current values, while tags and ingredients must always be supplied.
func (s *RecipeService) Update(ctx context.Context, userID, recipeID uint, input RecipeInput) (*models.RecipeView, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, models.NewForbiddenError("Only the author can edit this recipe")
	}

	if input.Name == "" {
		input.Name = recipe.Name
	}
	if input.Text == "" {
		input.Text = recipe.Description
	}
	if input.CookingTime == 0 {
		input.CookingTime = recipe.CookingTime
	}

	tags, ledger, err := s.resolveInput(ctx, input)
	if err != nil {
		return nil, err
	}

	recipe.Name = input.Name
	recipe.Description = input.Text
	recipe.CookingTime = input.CookingTime
	if input.Image != "" {
		recipe.Image = input.Image
	}
	if err := s.recipeRepo.Update(ctx, recipe, tags, ledger); err != nil {
		return nil, err
	}
	return s.Get(ctx, recipeID, userID)
}

// Delete removes a recipe along with its ledger and every favorite/cart row
// pointing at it. Only the author may delete.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID uint) error {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return models.NewForbiddenError("Only the author can delete this recipe")
	}
	return s.recipeRepo.Delete(ctx, recipe)
}

func (s *RecipeService) buildView(ctx context.Context, recipe *models.Recipe, viewerID uint) (*models.RecipeView, error) {
	view := &models.RecipeView{
		ID:          recipe.ID,
		Author:      recipe.Author.Summary(),
		Name:        recipe.Name,
		Description: recipe.Description,
		CookingTime: recipe.CookingTime,
		Image:       recipe.Image,
		Tags:        recipe.Tags,
		Ingredients: make([]models.RecipeIngredientView, 0, len(recipe.Ingredients)),
		CreatedAt:   recipe.CreatedAt,
	}
	for _, row := range recipe.Ingredients {
		view.Ingredients = append(view.Ingredients, models.RecipeIngredientView{
			ID:     row.IngredientID,
			Name:   row.Ingredient.Name,
			Unit:   row.Ingredient.Unit,
			Amount: row.Amount,
		})
	}

	if viewerID != 0 {
		favorited, err := s.relationRepo.Exists(ctx, viewerID, recipe.ID, models.RelationFavorite)
		if err != nil {
			return nil, err
		}
		inCart, err := s.relationRepo.Exists(ctx, viewerID, recipe.ID, models.RelationCart)
		if err != nil {
			return nil, err
		}
		view.IsFavorited = favorited
		view.IsInCart = inCart
	}
	return view, nil
}
