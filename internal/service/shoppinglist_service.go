package service

import (
	"context"
	"fmt"
	"strings"

	"ladle/internal/models"
	"ladle/internal/repository"
)

// ShoppingListService aggregates the ingredient ledgers of every recipe in
// the user's cart into a downloadable list.
type ShoppingListService struct {
	relationRepo repository.RelationRepository
}

// NewShoppingListService returns a new ShoppingListService.
func NewShoppingListService(relationRepo repository.RelationRepository) *ShoppingListService {
	return &ShoppingListService{relationRepo: relationRepo}
}

// Items returns the aggregated list, grouped by ingredient name and unit and
// sorted by both. An ingredient appearing in several cart recipes shows up
// once with its amounts summed; the same name under a different unit stays a
// separate row.
func (s *ShoppingListService) Items(ctx context.Context, userID uint) ([]models.ShoppingItem, error) {
	return s.relationRepo.SumCartIngredients(ctx, userID)
}

// RenderText formats the aggregated list as the plain-text download body.
// An empty cart yields just the header line.
func (s *ShoppingListService) RenderText(ctx context.Context, userID uint) (string, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Shopping list:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s - %d, %s\n", item.Name, item.Total, item.Unit)
	}
	return b.String(), nil
}
