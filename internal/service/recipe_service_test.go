package service

import (
	"context"
	"errors"
	"testing"

	"ladle/internal/models"
	"ladle/internal/repository"
	"ladle/internal/testutil"
)

func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func noopCatalogRepo() *catalogRepoStub {
	return &catalogRepoStub{
		createTagFn: func(context.Context, *models.Tag) error { return nil },
		getTagFn:    func(context.Context, uint) (*models.Tag, error) { return &models.Tag{}, nil },
		getTagsByIDsFn: func(_ context.Context, ids []uint) ([]models.Tag, error) {
			tags := make([]models.Tag, len(ids))
			for i, id := range ids {
				tags[i] = models.Tag{ID: id}
			}
			return tags, nil
		},
		listTagsFn:         func(context.Context) ([]models.Tag, error) { return nil, nil },
		createIngredientFn: func(context.Context, *models.Ingredient) error { return nil },
		getIngredientFn:    func(context.Context, uint) (*models.Ingredient, error) { return &models.Ingredient{}, nil },
		getIngredientsByIDsFn: func(_ context.Context, ids []uint) ([]models.Ingredient, error) {
			ingredients := make([]models.Ingredient, len(ids))
			for i, id := range ids {
				ingredients[i] = models.Ingredient{ID: id}
			}
			return ingredients, nil
		},
		searchIngredientsFn: func(context.Context, string, int) ([]models.Ingredient, error) { return nil, nil },
	}
}

func noopRecipeRepo() *recipeRepoStub {
	return &recipeRepoStub{
		createFn:  func(context.Context, *models.Recipe) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.Recipe, error) { return &models.Recipe{}, nil },
		listFn: func(context.Context, repository.RecipeFilter) ([]models.Recipe, int64, error) {
			return nil, 0, nil
		},
		listByAuthorFn:  func(context.Context, uint, int) ([]models.Recipe, error) { return nil, nil },
		countByAuthorFn: func(context.Context, uint) (int64, error) { return 0, nil },
		updateFn: func(context.Context, *models.Recipe, []models.Tag, []models.RecipeIngredient) error {
			return nil
		},
		deleteFn: func(context.Context, *models.Recipe) error { return nil },
	}
}

func validInput() RecipeInput {
	return RecipeInput{
		Name:        "Pancakes",
		Text:        "Mix and fry",
		CookingTime: 20,
		TagIDs:      []uint{1},
		Ingredients: []RecipeIngredientInput{{ID: 1, Amount: 200}},
	}
}

func TestRecipeServiceCreateRejectsBadInput(t *testing.T) {
	svc := NewRecipeService(noopRecipeRepo(), noopCatalogRepo(), noRelations())

	tests := []struct {
		name   string
		mutate func(*RecipeInput)
	}{
		{"missing name", func(in *RecipeInput) { in.Name = "" }},
		{"zero cooking time", func(in *RecipeInput) { in.CookingTime = 0 }},
		{"no ingredients", func(in *RecipeInput) { in.Ingredients = nil }},
		{"no tags", func(in *RecipeInput) { in.TagIDs = nil }},
		{"zero amount", func(in *RecipeInput) { in.Ingredients[0].Amount = 0 }},
		{"duplicate ingredient", func(in *RecipeInput) {
			in.Ingredients = []RecipeIngredientInput{{ID: 1, Amount: 10}, {ID: 1, Amount: 20}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Create(context.Background(), 1, input)
			assertAppCode(t, err, "VALIDATION_ERROR")
		})
	}
}

func TestRecipeServiceCreateRejectsUnknownCatalogRefs(t *testing.T) {
	catalog := noopCatalogRepo()
	catalog.getTagsByIDsFn = func(context.Context, []uint) ([]models.Tag, error) { return nil, nil }
	svc := NewRecipeService(noopRecipeRepo(), catalog, noRelations())

	_, err := svc.Create(context.Background(), 1, validInput())
	assertAppCode(t, err, "VALIDATION_ERROR")

	catalog = noopCatalogRepo()
	catalog.getIngredientsByIDsFn = func(context.Context, []uint) ([]models.Ingredient, error) { return nil, nil }
	svc = NewRecipeService(noopRecipeRepo(), catalog, noRelations())

	_, err = svc.Create(context.Background(), 1, validInput())
	assertAppCode(t, err, "VALIDATION_ERROR")
}

func TestRecipeServiceUpdateAuthorOnly(t *testing.T) {
	repo := noopRecipeRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.Recipe, error) {
		return &models.Recipe{ID: 7, AuthorID: 1}, nil
	}
	svc := NewRecipeService(repo, noopCatalogRepo(), noRelations())

	_, err := svc.Update(context.Background(), 2, 7, validInput())
	assertAppCode(t, err, "FORBIDDEN")

	err = svc.Delete(context.Background(), 2, 7)
	assertAppCode(t, err, "FORBIDDEN")
}

func TestRecipeServiceCreateAndGet(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewRecipeService(
		repository.NewRecipeRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewRelationRepository(db),
	)
	author := testutil.SeedUser(t, db, "chef")
	tags, ingredients := testutil.SeedCatalog(t, db)

	view, err := svc.Create(context.Background(), author.ID, RecipeInput{
		Name:        "Pancakes",
		Text:        "Mix and fry",
		CookingTime: 20,
		Image:       "recipes/pancakes.png",
		TagIDs:      []uint{tags[0].ID},
		Ingredients: []RecipeIngredientInput{
			{ID: ingredients[0].ID, Amount: 200},
			{ID: ingredients[1].ID, Amount: 300},
		},
	})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if view.Author.Username != "chef" {
		t.Fatalf("expected author chef, got %q", view.Author.Username)
	}
	if len(view.Ingredients) != 2 || view.Ingredients[0].Name != "flour" || view.Ingredients[0].Unit != "g" {
		t.Fatalf("unexpected resolved ledger: %#v", view.Ingredients)
	}
	if view.IsFavorited || view.IsInCart {
		t.Fatal("fresh recipe must not carry relation flags")
	}
}

func TestRecipeServiceGetComputesViewerFlags(t *testing.T) {
	db := testutil.OpenTestDB(t)
	relationRepo := repository.NewRelationRepository(db)
	svc := NewRecipeService(
		repository.NewRecipeRepository(db),
		repository.NewCatalogRepository(db),
		relationRepo,
	)
	author := testutil.SeedUser(t, db, "chef")
	reader := testutil.SeedUser(t, db, "reader")
	_, ingredients := testutil.SeedCatalog(t, db)
	recipe := testutil.SeedRecipe(t, db, author, "pie", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 100},
	})

	if err := relationRepo.Create(context.Background(), &models.Relation{
		UserID: reader.ID, RecipeID: recipe.ID, Kind: models.RelationFavorite,
	}); err != nil {
		t.Fatalf("create relation: %v", err)
	}

	asReader, err := svc.Get(context.Background(), recipe.ID, reader.ID)
	if err != nil {
		t.Fatalf("get as reader: %v", err)
	}
	if !asReader.IsFavorited || asReader.IsInCart {
		t.Fatalf("expected favorited only, got favorited=%v cart=%v", asReader.IsFavorited, asReader.IsInCart)
	}

	anonymous, err := svc.Get(context.Background(), recipe.ID, 0)
	if err != nil {
		t.Fatalf("get as anonymous: %v", err)
	}
	if anonymous.IsFavorited || anonymous.IsInCart {
		t.Fatal("anonymous view must not carry relation flags")
	}
}

func TestRecipeServiceUpdateReplacesLedger(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewRecipeService(
		repository.NewRecipeRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewRelationRepository(db),
	)
	author := testutil.SeedUser(t, db, "chef")
	tags, ingredients := testutil.SeedCatalog(t, db)
	recipe := testutil.SeedRecipe(t, db, author, "soup", tags[:1], []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 100},
		{IngredientID: ingredients[1].ID, Amount: 50},
	})

	view, err := svc.Update(context.Background(), author.ID, recipe.ID, RecipeInput{
		Name:        "thick soup",
		Text:        "simmer longer",
		CookingTime: 45,
		TagIDs:      []uint{tags[1].ID},
		Ingredients: []RecipeIngredientInput{
			{ID: ingredients[0].ID, Amount: 250},
			{ID: ingredients[2].ID, Amount: 2},
		},
	})
	if err != nil {
		t.Fatalf("update recipe: %v", err)
	}
	if view.Name != "thick soup" || view.CookingTime != 45 {
		t.Fatalf("recipe columns not updated: %#v", view)
	}
	amounts := map[string]int{}
	for _, row := range view.Ingredients {
		amounts[row.Name] = row.Amount
	}
	if amounts["flour"] != 250 || amounts["egg"] != 2 || len(amounts) != 2 {
		t.Fatalf("ledger not replaced: %#v", amounts)
	}
}

func TestRecipeServiceUpdateKeepsOmittedScalars(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewRecipeService(
		repository.NewRecipeRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewRelationRepository(db),
	)
	author := testutil.SeedUser(t, db, "chef")
	tags, ingredients := testutil.SeedCatalog(t, db)
	recipe := testutil.SeedRecipe(t, db, author, "soup", tags[:1], []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 100},
	})

	view, err := svc.Update(context.Background(), author.ID, recipe.ID, RecipeInput{
		Name:        "thick soup",
		TagIDs:      []uint{tags[0].ID},
		Ingredients: []RecipeIngredientInput{{ID: ingredients[0].ID, Amount: 100}},
	})
	if err != nil {
		t.Fatalf("update recipe: %v", err)
	}
	if view.Name != "thick soup" {
		t.Fatalf("name not updated: %q", view.Name)
	}
	if view.CookingTime != 30 || view.Description != "test recipe" {
		t.Fatalf("omitted scalars not preserved: %#v", view)
	}
	if view.Image != "recipes/soup.png" {
		t.Fatalf("omitted image not preserved: %q", view.Image)
	}

	_, err = svc.Update(context.Background(), author.ID, recipe.ID, RecipeInput{
		Name:        "tagless soup",
		TagIDs:      nil,
		Ingredients: []RecipeIngredientInput{{ID: ingredients[0].ID, Amount: 100}},
	})
	assertAppCode(t, err, "VALIDATION_ERROR")

	fresh, err := svc.Get(context.Background(), recipe.ID, author.ID)
	if err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if len(fresh.Tags) != 1 {
		t.Fatalf("rejected update must not touch tags: %#v", fresh.Tags)
	}
}
