package ports

import (
	"context"

	"github.com/recordstack/records-api/internal/core/domain"
)

// CreateItemInput carries the fields accepted when creating an item.
type CreateItemInput struct {
	Name        string
	Description *string
	Price       float64
	Tax         *float64
}

// ItemService exposes item record operations.
type ItemService interface {
	Create(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, id uint) (*domain.Item, error)
}
