package service

import (
	"context"

	"ladle/internal/models"
	"ladle/internal/repository"
)

type recipeRepoStub struct {
	createFn        func(context.Context, *models.Recipe) error
	getByIDFn       func(context.Context, uint) (*models.Recipe, error)
	listFn          func(context.Context, repository.RecipeFilter) ([]models.Recipe, int64, error)
	listByAuthorFn  func(context.Context, uint, int) ([]models.Recipe, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
	updateFn        func(context.Context, *models.Recipe, []models.Tag, []models.RecipeIngredient) error
	deleteFn        func(context.Context, *models.Recipe) error
}

func (s *recipeRepoStub) Create(ctx context.Context, recipe *models.Recipe) error {
	return s.createFn(ctx, recipe)
}
func (s *recipeRepoStub) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	return s.getByIDFn(ctx, id)
}
func (s *recipeRepoStub) List(ctx context.Context, filter repository.RecipeFilter) ([]models.Recipe, int64, error) {
	return s.listFn(ctx, filter)
}
func (s *recipeRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error) {
	return s.listByAuthorFn(ctx, authorID, limit)
}
func (s *recipeRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *recipeRepoStub) Update(ctx context.Context, recipe *models.Recipe, tags []models.Tag, ledger []models.RecipeIngredient) error {
	return s.updateFn(ctx, recipe, tags, ledger)
}
func (s *recipeRepoStub) Delete(ctx context.Context, recipe *models.Recipe) error {
	return s.deleteFn(ctx, recipe)
}

type catalogRepoStub struct {
	createTagFn           func(context.Context, *models.Tag) error
	getTagFn              func(context.Context, uint) (*models.Tag, error)
	getTagsByIDsFn        func(context.Context, []uint) ([]models.Tag, error)
	listTagsFn            func(context.Context) ([]models.Tag, error)
	createIngredientFn    func(context.Context, *models.Ingredient) error
	getIngredientFn       func(context.Context, uint) (*models.Ingredient, error)
	getIngredientsByIDsFn func(context.Context, []uint) ([]models.Ingredient, error)
	searchIngredientsFn   func(context.Context, string, int) ([]models.Ingredient, error)
}

func (s *catalogRepoStub) CreateTag(ctx context.Context, tag *models.Tag) error {
	return s.createTagFn(ctx, tag)
}
func (s *catalogRepoStub) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return s.getTagFn(ctx, id)
}
func (s *catalogRepoStub) GetTagsByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	return s.getTagsByIDsFn(ctx, ids)
}
func (s *catalogRepoStub) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.listTagsFn(ctx)
}
func (s *catalogRepoStub) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	return s.createIngredientFn(ctx, ingredient)
}
func (s *catalogRepoStub) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	return s.getIngredientFn(ctx, id)
}
func (s *catalogRepoStub) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	return s.getIngredientsByIDsFn(ctx, ids)
}
func (s *catalogRepoStub) SearchIngredients(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error) {
	return s.searchIngredientsFn(ctx, namePrefix, limit)
}

type relationRepoStub struct {
	createFn             func(context.Context, *models.Relation) error
	existsFn             func(context.Context, uint, uint, models.RelationKind) (bool, error)
	deleteFn             func(context.Context, uint, uint, models.RelationKind) (int64, error)
	countByRecipeFn      func(context.Context, uint, models.RelationKind) (int64, error)
	sumCartIngredientsFn func(context.Context, uint) ([]models.ShoppingItem, error)
}

func (s *relationRepoStub) Create(ctx context.Context, relation *models.Relation) error {
	return s.createFn(ctx, relation)
}
func (s *relationRepoStub) Exists(ctx context.Context, userID, recipeID uint, kind models.RelationKind) (bool, error) {
	return s.existsFn(ctx, userID, recipeID, kind)
}
func (s *relationRepoStub) Delete(ctx context.Context, userID, recipeID uint, kind models.RelationKind) (int64, error) {
	return s.deleteFn(ctx, userID, recipeID, kind)
}
func (s *relationRepoStub) CountByRecipe(ctx context.Context, recipeID uint, kind models.RelationKind) (int64, error) {
	return s.countByRecipeFn(ctx, recipeID, kind)
}
func (s *relationRepoStub) SumCartIngredients(ctx context.Context, userID uint) ([]models.ShoppingItem, error) {
	return s.sumCartIngredientsFn(ctx, userID)
}

type subscriptionRepoStub struct {
	createFn      func(context.Context, *models.Subscription) error
	existsFn      func(context.Context, uint, uint) (bool, error)
	deleteFn      func(context.Context, uint, uint) (int64, error)
	listAuthorsFn func(context.Context, uint, int, int) ([]models.User, int64, error)
}

func (s *subscriptionRepoStub) Create(ctx context.Context, sub *models.Subscription) error {
	return s.createFn(ctx, sub)
}
func (s *subscriptionRepoStub) Exists(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.existsFn(ctx, followerID, authorID)
}
func (s *subscriptionRepoStub) Delete(ctx context.Context, followerID, authorID uint) (int64, error) {
	return s.deleteFn(ctx, followerID, authorID)
}
func (s *subscriptionRepoStub) ListAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error) {
	return s.listAuthorsFn(ctx, followerID, limit, offset)
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noRelations() *relationRepoStub {
	return &relationRepoStub{
		createFn: func(context.Context, *models.Relation) error { return nil },
		existsFn: func(context.Context, uint, uint, models.RelationKind) (bool, error) { return false, nil },
		deleteFn: func(context.Context, uint, uint, models.RelationKind) (int64, error) { return 0, nil },
		countByRecipeFn: func(context.Context, uint, models.RelationKind) (int64, error) {
			return 0, nil
		},
		sumCartIngredientsFn: func(context.Context, uint) ([]models.ShoppingItem, error) {
			return nil, nil
		},
	}
}
