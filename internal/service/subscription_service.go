package service

import (
	"context"
	"errors"

	"ladle/internal/models"
	"ladle/internal/repository"

	"gorm.io/gorm"
)

// SubscriptionService manages follower/author edges and builds the
// subscription listing with live recipe counts.
type SubscriptionService struct {
	subRepo    repository.SubscriptionRepository
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
}

// NewSubscriptionService returns a new SubscriptionService.
func NewSubscriptionService(subRepo repository.SubscriptionRepository, userRepo repository.UserRepository, recipeRepo repository.RecipeRepository) *SubscriptionService {
	return &SubscriptionService{
		subRepo:    subRepo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
	}
}

// Subscribe creates a following edge and returns the author's view entry.
func (s *SubscriptionService) Subscribe(ctx context.Context, followerID, authorID uint, recipesLimit int) (*models.SubscriptionView, error) {
	if followerID == authorID {
		return nil, models.NewValidationError("Cannot subscribe to yourself")
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.subRepo.Exists(ctx, followerID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Already subscribed to this author")
	}

	sub := &models.Subscription{FollowerID: followerID, AuthorID: authorID}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("Already subscribed to this author")
		}
		return nil, err
	}
	return s.buildView(ctx, author, recipesLimit)
}

// Unsubscribe removes the edge. Unsubscribing when not subscribed is a
// conflict so racing removes resolve to one success.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, followerID, authorID uint) error {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return err
	}

	rows, err := s.subRepo.Delete(ctx, followerID, authorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewConflictError("Not subscribed to this author")
	}
	return nil
}

// List returns the authors the user follows, each with a recipe preview and
// a count taken at read time.
func (s *SubscriptionService) List(ctx context.Context, followerID uint, limit, offset, recipesLimit int) ([]models.SubscriptionView, int64, error) {
	authors, total, err := s.subRepo.ListAuthors(ctx, followerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]models.SubscriptionView, 0, len(authors))
	for i := range authors {
		view, err := s.buildView(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

func (s *SubscriptionService) buildView(ctx context.Context, author *models.User, recipesLimit int) (*models.SubscriptionView, error) {
	recipes, err := s.recipeRepo.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipeRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, recipe.Summary())
	}
	return &models.SubscriptionView{
		Author:       author.Summary(),
		IsSubscribed: true,
		Recipes:      summaries,
		RecipesCount: count,
	}, nil
}
