package repository

import (
	"context"
	"testing"

	"ladle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRelationCreateDuplicate(t *testing.T) {
	db := openTestDB(t)
	repo := NewRelationRepository(db)
	user := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "chef")
	_, ingredients := createTestCatalog(t, db)
	recipe := createTestRecipe(t, db, author, "pie", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 100},
	})

	first := &models.Relation{UserID: user.ID, RecipeID: recipe.ID, Kind: models.RelationFavorite}
	require.NoError(t, repo.Create(context.Background(), first))

	second := &models.Relation{UserID: user.ID, RecipeID: recipe.ID, Kind: models.RelationFavorite}
	err := repo.Create(context.Background(), second)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// the same pair under the other kind is a distinct edge
	cart := &models.Relation{UserID: user.ID, RecipeID: recipe.ID, Kind: models.RelationCart}
	require.NoError(t, repo.Create(context.Background(), cart))

	var count int64
	require.NoError(t, db.Model(&models.Relation{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRelationDeleteReportsRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewRelationRepository(db)
	user := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "chef")
	_, ingredients := createTestCatalog(t, db)
	recipe := createTestRecipe(t, db, author, "pie", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 100},
	})

	require.NoError(t, repo.Create(context.Background(), &models.Relation{
		UserID: user.ID, RecipeID: recipe.ID, Kind: models.RelationCart,
	}))

	rows, err := repo.Delete(context.Background(), user.ID, recipe.ID, models.RelationCart)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = repo.Delete(context.Background(), user.ID, recipe.ID, models.RelationCart)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestSumCartIngredients(t *testing.T) {
	db := openTestDB(t)
	repo := NewRelationRepository(db)
	user := createTestUser(t, db, "shopper")
	author := createTestUser(t, db, "chef")
	_, ingredients := createTestCatalog(t, db)

	// a fourth ingredient sharing a name with flour but measured differently
	flourSpoons := models.Ingredient{Name: "flour", Unit: "tbsp"}
	require.NoError(t, db.Create(&flourSpoons).Error)

	pancakes := createTestRecipe(t, db, author, "pancakes", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 200},
		{IngredientID: ingredients[1].ID, Amount: 300},
	})
	bread := createTestRecipe(t, db, author, "bread", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 500},
		{IngredientID: flourSpoons.ID, Amount: 2},
	})
	skipped := createTestRecipe(t, db, author, "cake", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[2].ID, Amount: 4},
	})

	for _, recipeID := range []uint{pancakes.ID, bread.ID} {
		require.NoError(t, repo.Create(context.Background(), &models.Relation{
			UserID: user.ID, RecipeID: recipeID, Kind: models.RelationCart,
		}))
	}
	// favorited but not in the cart, must not leak into the list
	require.NoError(t, repo.Create(context.Background(), &models.Relation{
		UserID: user.ID, RecipeID: skipped.ID, Kind: models.RelationFavorite,
	}))

	items, err := repo.SumCartIngredients(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, []models.ShoppingItem{
		{Name: "flour", Unit: "g", Total: 700},
		{Name: "flour", Unit: "tbsp", Total: 2},
		{Name: "milk", Unit: "ml", Total: 300},
	}, items)
}

func TestSumCartIngredientsEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := NewRelationRepository(db)
	user := createTestUser(t, db, "shopper")

	items, err := repo.SumCartIngredients(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
