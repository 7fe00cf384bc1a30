package service

import (
	"context"
	"errors"

	"ladle/internal/models"
	"ladle/internal/repository"

	"gorm.io/gorm"
)

// RelationService toggles favorite and cart edges between a user and a
// recipe. Both kinds share one code path; only the error wording differs.
type RelationService struct {
	relationRepo repository.RelationRepository
	recipeRepo   repository.RecipeRepository
}

// NewRelationService returns a new RelationService.
func NewRelationService(relationRepo repository.RelationRepository, recipeRepo repository.RecipeRepository) *RelationService {
	return &RelationService{
		relationRepo: relationRepo,
		recipeRepo:   recipeRepo,
	}
}

func kindLabel(kind models.RelationKind) string {
	if kind == models.RelationCart {
		return "shopping cart"
	}
	return "favorites"
}

// Add creates the edge and returns the recipe summary for the response.
// A duplicate add is a conflict whether it is caught by the pre-check or by
// the unique index when two adds race.
func (s *RelationService) Add(ctx context.Context, userID, recipeID uint, kind models.RelationKind) (*models.RecipeSummary, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.relationRepo.Exists(ctx, userID, recipeID, kind)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Recipe is already in " + kindLabel(kind))
	}

	relation := &models.Relation{UserID: userID, RecipeID: recipeID, Kind: kind}
	if err := s.relationRepo.Create(ctx, relation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("Recipe is already in " + kindLabel(kind))
		}
		return nil, err
	}

	summary := recipe.Summary()
	return &summary, nil
}

// Remove deletes the edge. Removing an edge that is not there is a conflict,
// including when a concurrent remove got there first.
func (s *RelationService) Remove(ctx context.Context, userID, recipeID uint, kind models.RelationKind) error {
	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return err
	}

	rows, err := s.relationRepo.Delete(ctx, userID, recipeID, kind)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewConflictError("Recipe is not in " + kindLabel(kind))
	}
	return nil
}
