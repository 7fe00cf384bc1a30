package seed

import (
	"fmt"
	"log"

	"ladle/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options control how much demo data Run generates.
type Options struct {
	Users         int
	RecipesPerMax int
}

// DefaultOptions returns the preset used by the seed command.
func DefaultOptions() Options {
	return Options{Users: 10, RecipesPerMax: 5}
}

// builtinTags is the baseline tag catalog. Slugs are stable so reseeding
// never duplicates rows.
var builtinTags = []models.Tag{
	{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
	{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	{Name: "Dessert", Color: "#F9A62B", Slug: "dessert"},
}

var builtinIngredients = []models.Ingredient{
	{Name: "flour", Unit: "g"},
	{Name: "sugar", Unit: "g"},
	{Name: "butter", Unit: "g"},
	{Name: "milk", Unit: "ml"},
	{Name: "cream", Unit: "ml"},
	{Name: "egg", Unit: "pc"},
	{Name: "onion", Unit: "pc"},
	{Name: "garlic", Unit: "clove"},
	{Name: "salt", Unit: "tsp"},
	{Name: "olive oil", Unit: "tbsp"},
	{Name: "chicken breast", Unit: "g"},
	{Name: "rice", Unit: "g"},
	{Name: "tomato", Unit: "pc"},
	{Name: "cheese", Unit: "g"},
}

// Catalog upserts the built-in tag and ingredient catalog. Safe to run
// repeatedly.
func Catalog(db *gorm.DB) ([]models.Tag, []models.Ingredient, error) {
	tags := make([]models.Tag, len(builtinTags))
	copy(tags, builtinTags)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&tags).Error; err != nil {
		return nil, nil, fmt.Errorf("seed tags: %w", err)
	}
	if err := db.Order("id asc").Find(&tags).Error; err != nil {
		return nil, nil, err
	}

	var count int64
	if err := db.Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count == 0 {
		rows := make([]models.Ingredient, len(builtinIngredients))
		copy(rows, builtinIngredients)
		if err := db.Create(&rows).Error; err != nil {
			return nil, nil, fmt.Errorf("seed ingredients: %w", err)
		}
	}
	var ingredients []models.Ingredient
	if err := db.Order("id asc").Find(&ingredients).Error; err != nil {
		return nil, nil, err
	}
	return tags, ingredients, nil
}

// Run generates a demo dataset: users with recipes, a sprinkling of
// favorites, carts and subscriptions.
func Run(db *gorm.DB, opts Options) error {
	tags, ingredients, err := Catalog(db)
	if err != nil {
		return err
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	var recipes []*models.Recipe
	for _, user := range users {
		n := 1 + factory.rand.Intn(opts.RecipesPerMax)
		for i := 0; i < n; i++ {
			recipe, err := factory.CreateRecipe(user, tags, ingredients)
			if err != nil {
				return fmt.Errorf("seed recipe: %w", err)
			}
			recipes = append(recipes, recipe)
		}
	}

	// favorites and carts, skipping own recipes
	for _, user := range users {
		for _, recipe := range recipes {
			if recipe.AuthorID == user.ID {
				continue
			}
			if factory.rand.Intn(4) == 0 {
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Relation{
					UserID: user.ID, RecipeID: recipe.ID, Kind: models.RelationFavorite,
				})
			}
			if factory.rand.Intn(6) == 0 {
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Relation{
					UserID: user.ID, RecipeID: recipe.ID, Kind: models.RelationCart,
				})
			}
		}
	}

	// subscriptions between distinct users
	for _, follower := range users {
		for _, author := range users {
			if follower.ID == author.ID || factory.rand.Intn(5) != 0 {
				continue
			}
			db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Subscription{
				FollowerID: follower.ID, AuthorID: author.ID,
			})
		}
	}

	log.Printf("seeded %d users and %d recipes", len(users), len(recipes))
	return nil
}
