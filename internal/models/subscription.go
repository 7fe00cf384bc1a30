package models

import "time"

// Subscription is a following edge from a user to a recipe author.
// Self-subscription is rejected in the service layer; duplicates are
// rejected by the composite unique index.
type Subscription struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_author" json:"follower_id"`
	AuthorID   uint      `gorm:"not null;uniqueIndex:idx_follower_author" json:"author_id"`
	Follower   User      `gorm:"foreignKey:FollowerID" json:"-"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubscriptionView is one entry of the subscription listing: the followed
// author with their recipes and a live recipe count.
type SubscriptionView struct {
	Author       UserSummary     `json:"author"`
	IsSubscribed bool            `json:"is_subscribed"`
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int64           `json:"recipes_count"`
}
