package repository

import (
	"context"
	"errors"

	"ladle/internal/models"

	"gorm.io/gorm"
)

// RelationRepository defines the interface for favorite and cart edge
// operations. Create surfaces gorm.ErrDuplicatedKey unchanged so callers can
// distinguish a lost insert race from a real failure; the composite unique
// index on (user, recipe, kind) is what actually arbitrates the race.
type RelationRepository interface {
	Create(ctx context.Context, relation *models.Relation) error
	Exists(ctx context.Context, userID, recipeID uint, kind models.RelationKind) (bool, error)
	Delete(ctx context.Context, userID, recipeID uint, kind models.RelationKind) (int64, error)
	CountByRecipe(ctx context.Context, recipeID uint, kind models.RelationKind) (int64, error)
	SumCartIngredients(ctx context.Context, userID uint) ([]models.ShoppingItem, error)
}

type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository creates a new relation repository
func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) Create(ctx context.Context, relation *models.Relation) error {
	if err := r.db.WithContext(ctx).Create(relation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *relationRepository) Exists(ctx context.Context, userID, recipeID uint, kind models.RelationKind) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relation{}).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Delete removes every matching row and reports how many went away, so a
// remove that raced another remove can be told apart from a normal one.
func (r *relationRepository) Delete(ctx context.Context, userID, recipeID uint, kind models.RelationKind) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Delete(&models.Relation{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *relationRepository) CountByRecipe(ctx context.Context, recipeID uint, kind models.RelationKind) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relation{}).
		Where("recipe_id = ? AND kind = ?", recipeID, kind).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// SumCartIngredients aggregates the ledgers of every recipe in the user's
// cart, grouped by ingredient name and unit. Same-named ingredients with
// different units stay separate rows.
func (r *relationRepository) SumCartIngredients(ctx context.Context, userID uint) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.unit AS unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN relations ON relations.recipe_id = recipe_ingredients.recipe_id").
		Where("relations.user_id = ? AND relations.kind = ?", userID, models.RelationCart).
		Group("ingredients.name, ingredients.unit").
		Order("ingredients.name asc, ingredients.unit asc").
		Scan(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
