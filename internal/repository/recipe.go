package repository

import (
	"context"
	"errors"

	"ladle/internal/models"

	"gorm.io/gorm"
)

// RecipeFilter narrows recipe listings. TagSlugs are OR-combined; the
// relation filters join against the requesting user's favorite/cart rows.
type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	FavoritedBy uint
	InCartOf    uint
	Limit       int
	Offset      int
}

// RecipeRepository defines the interface for recipe data operations.
// Create, Update and Delete are transactional: the recipe row, its tag links
// and its ingredient ledger move together or not at all.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	Update(ctx context.Context, recipe *models.Recipe, tags []models.Tag, ledger []models.RecipeIngredient) error
	Delete(ctx context.Context, recipe *models.Recipe) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("Recipe ingredients must be unique")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Recipe{})

	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.
			Joins("JOIN recipe_tags rt ON rt.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = rt.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs).
			Distinct("recipes.*")
	}
	if filter.FavoritedBy != 0 {
		query = query.
			Joins("JOIN relations fav ON fav.recipe_id = recipes.id").
			Where("fav.user_id = ? AND fav.kind = ?", filter.FavoritedBy, models.RelationFavorite)
	}
	if filter.InCartOf != 0 {
		query = query.
			Joins("JOIN relations cart ON cart.recipe_id = recipes.id").
			Where("cart.user_id = ? AND cart.kind = ?", filter.InCartOf, models.RelationCart)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Distinct("recipes.id").Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var recipes []models.Recipe
	if err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at desc, recipes.id desc").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&recipes).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return recipes, total, nil
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// Update rewrites the recipe columns, replaces the tag links and patches the
// ingredient ledger to match the new set, all in one transaction. Ledger rows
// for ingredients that stay keep their primary key and get the new amount.
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe, tags []models.Tag, ledger []models.RecipeIngredient) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).
			Select("Name", "Description", "CookingTime", "Image").
			Updates(map[string]any{
				"name":         recipe.Name,
				"description":  recipe.Description,
				"cooking_time": recipe.CookingTime,
				"image":        recipe.Image,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Tags").Replace(tags); err != nil {
			return err
		}

		var existing []models.RecipeIngredient
		if err := tx.Where("recipe_id = ?", recipe.ID).Find(&existing).Error; err != nil {
			return err
		}
		current := make(map[uint]models.RecipeIngredient, len(existing))
		for _, row := range existing {
			current[row.IngredientID] = row
		}

		wanted := make(map[uint]bool, len(ledger))
		for _, row := range ledger {
			wanted[row.IngredientID] = true
			prev, ok := current[row.IngredientID]
			switch {
			case !ok:
				insert := models.RecipeIngredient{
					RecipeID:     recipe.ID,
					IngredientID: row.IngredientID,
					Amount:       row.Amount,
				}
				if err := tx.Create(&insert).Error; err != nil {
					return err
				}
			case prev.Amount != row.Amount:
				if err := tx.Model(&models.RecipeIngredient{}).
					Where("id = ?", prev.ID).
					Update("amount", row.Amount).Error; err != nil {
					return err
				}
			}
		}

		for ingredientID, row := range current {
			if !wanted[ingredientID] {
				if err := tx.Delete(&models.RecipeIngredient{}, row.ID).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the ledger, any favorite/cart rows pointing at the recipe
// and the tag links, then soft-deletes the recipe itself.
func (r *recipeRepository) Delete(ctx context.Context, recipe *models.Recipe) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Relation{}).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
