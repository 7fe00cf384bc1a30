package database

import (
	"ladle/internal/models"

	"gorm.io/gorm"
)

// AllModels lists every persisted model in dependency order. Tests and
// cmd/migrate share this registry so schemas never drift between them.
func AllModels() []any {
	return []any{
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Relation{},
		&models.Subscription{},
	}
}

// Migrate applies the schema for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
