package repository

import (
	"context"
	"errors"

	"ladle/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository defines the interface for tag and ingredient lookups.
// The catalog is admin-seeded reference data; recipes only reference it.
type CatalogRepository interface {
	CreateTag(ctx context.Context, tag *models.Tag) error
	GetTag(ctx context.Context, id uint) (*models.Tag, error)
	GetTagsByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error
	GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	SearchIngredients(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error)
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateTag(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("A tag with this name or slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *catalogRepository) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *catalogRepository) GetTagsByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *catalogRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("id asc").Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *catalogRepository) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *catalogRepository) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ingredient", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ingredient, nil
}

func (r *catalogRepository) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ingredients, nil
}

func (r *catalogRepository) SearchIngredients(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.WithContext(ctx).Order("name asc")
	if namePrefix != "" {
		query = query.Where("name LIKE ?", namePrefix+"%")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ingredients, nil
}
