package repository

import (
	"context"
	"errors"

	"ladle/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for follower/author edges.
// Like relations, Create lets gorm.ErrDuplicatedKey through for the service
// to translate; the (follower, author) unique index settles concurrent adds.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	Exists(ctx context.Context, followerID, authorID uint) (bool, error)
	Delete(ctx context.Context, followerID, authorID uint) (int64, error)
	ListAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, followerID, authorID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, followerID, authorID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Subscription{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

// ListAuthors returns the authors the user follows, oldest subscription
// first, with the total for pagination.
func (r *subscriptionRepository) ListAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error) {
	base := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.follower_id = ?", followerID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var authors []models.User
	if err := base.
		Order("subscriptions.id asc").
		Limit(limit).
		Offset(offset).
		Find(&authors).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return authors, total, nil
}
