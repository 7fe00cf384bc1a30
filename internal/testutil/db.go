// Package testutil provides shared test fixtures for backend tests.
package testutil

import (
	"testing"

	"ladle/internal/database"
	"ladle/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens an isolated in-memory database with the full schema.
// The pool is pinned to one connection because each sqlite ":memory:"
// connection is a separate database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// SeedUser inserts a user with deterministic fields derived from username.
func SeedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed-password",
		FirstName: "Test",
		LastName:  "User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// SeedCatalog inserts a small tag and ingredient catalog.
func SeedCatalog(t *testing.T, db *gorm.DB) ([]models.Tag, []models.Ingredient) {
	t.Helper()

	tags := []models.Tag{
		{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Dinner", Color: "#49B64E", Slug: "dinner"},
	}
	if err := db.Create(&tags).Error; err != nil {
		t.Fatalf("seed tags: %v", err)
	}

	ingredients := []models.Ingredient{
		{Name: "flour", Unit: "g"},
		{Name: "milk", Unit: "ml"},
		{Name: "egg", Unit: "pc"},
	}
	if err := db.Create(&ingredients).Error; err != nil {
		t.Fatalf("seed ingredients: %v", err)
	}
	return tags, ingredients
}

// SeedRecipe inserts a recipe with the given tags and ledger.
func SeedRecipe(t *testing.T, db *gorm.DB, author *models.User, name string, tags []models.Tag, ledger []models.RecipeIngredient) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Description: "test recipe",
		CookingTime: 30,
		Image:       "recipes/" + name + ".png",
		Tags:        tags,
		Ingredients: ledger,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return recipe
}
