package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is a published recipe. The author is fixed at creation; every
// mutation re-checks authorship. Tags are shared catalog references, the
// ingredient ledger (RecipeIngredient rows) is owned exclusively by the
// recipe and replaced wholesale on update.
type Recipe struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	AuthorID    uint               `gorm:"not null;index" json:"author_id"`
	Author      User               `gorm:"foreignKey:AuthorID" json:"-"`
	Name        string             `gorm:"not null" json:"name"`
	Description string             `gorm:"type:text" json:"text"`
	CookingTime int                `gorm:"not null" json:"cooking_time"`
	Image       string             `json:"image"`
	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"-"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
}

// RecipeIngredient is one ledger row: a quantified ingredient of a recipe.
// The composite unique index guarantees at most one row per
// (recipe, ingredient) pair regardless of interleaved updates.
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"-"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
	Amount       int        `gorm:"not null" json:"amount"`
}

// RecipeSummary is the compact representation used in relation responses
// and subscription listings.
type RecipeSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// Summary returns the compact read model for the recipe.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// RecipeIngredientView is a resolved ledger row in the recipe read model.
type RecipeIngredientView struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Unit   string `json:"measurement_unit"`
	Amount int    `json:"amount"`
}

// RecipeView is the canonical full read model for a recipe. The favorite and
// cart flags are computed for the requesting user; both are false for
// anonymous readers.
type RecipeView struct {
	ID          uint                   `json:"id"`
	Author      UserSummary            `json:"author"`
	Name        string                 `json:"name"`
	Description string                 `json:"text"`
	CookingTime int                    `json:"cooking_time"`
	Image       string                 `json:"image"`
	Tags        []Tag                  `json:"tags"`
	Ingredients []RecipeIngredientView `json:"ingredients"`
	IsFavorited bool                   `json:"is_favorited"`
	IsInCart    bool                   `json:"is_in_shopping_cart"`
	CreatedAt   time.Time              `json:"created_at"`
}
