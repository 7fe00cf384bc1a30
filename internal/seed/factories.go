// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ladle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a deterministic password ("Password123!com"
// hashed) so seeded accounts can be logged into during development.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!com"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  fmt.Sprintf("%s_%s", gofakeit.Username(), gofakeit.LetterN(4)),
		Email:     gofakeit.Email(),
		Password:  string(hash),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRecipe persists a recipe for the author with a ledger drawn from the
// given ingredient catalog.
func (f *Factory) CreateRecipe(author *models.User, tags []models.Tag, ingredients []models.Ingredient, overrides ...func(*models.Recipe)) (*models.Recipe, error) {
	picked := f.pickIngredients(ingredients, 2+f.rand.Intn(4))
	ledger := make([]models.RecipeIngredient, 0, len(picked))
	for _, ingredient := range picked {
		ledger = append(ledger, models.RecipeIngredient{
			IngredientID: ingredient.ID,
			Amount:       1 + f.rand.Intn(500),
		})
	}

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        gofakeit.Dinner(),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		CookingTime: 5 + f.rand.Intn(115),
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		Tags:        f.pickTags(tags, 1+f.rand.Intn(2)),
		Ingredients: ledger,
		CreatedAt:   time.Now().Add(-time.Duration(f.rand.Intn(90*24)) * time.Hour),
	}
	for _, override := range overrides {
		override(recipe)
	}
	if err := f.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (f *Factory) pickTags(tags []models.Tag, n int) []models.Tag {
	if n > len(tags) {
		n = len(tags)
	}
	perm := f.rand.Perm(len(tags))
	picked := make([]models.Tag, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, tags[idx])
	}
	return picked
}

func (f *Factory) pickIngredients(ingredients []models.Ingredient, n int) []models.Ingredient {
	if n > len(ingredients) {
		n = len(ingredients)
	}
	perm := f.rand.Perm(len(ingredients))
	picked := make([]models.Ingredient, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, ingredients[idx])
	}
	return picked
}
