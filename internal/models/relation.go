package models

import "time"

// RelationKind distinguishes the two per-user recipe collections.
type RelationKind string

const (
	// RelationFavorite marks a recipe as favorited by the user.
	RelationFavorite RelationKind = "favorite"
	// RelationCart puts a recipe in the user's shopping cart.
	RelationCart RelationKind = "cart"
)

// Relation is a membership edge between a user and a recipe. The composite
// unique index is the authoritative dedup: a concurrent duplicate insert
// loses at the storage layer and is reported as a conflict.
type Relation struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_user_recipe_kind" json:"user_id"`
	RecipeID  uint         `gorm:"not null;uniqueIndex:idx_user_recipe_kind" json:"recipe_id"`
	Kind      RelationKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_recipe_kind" json:"kind"`
	Recipe    Recipe       `gorm:"foreignKey:RecipeID" json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Relation) TableName() string {
	return "relations"
}
