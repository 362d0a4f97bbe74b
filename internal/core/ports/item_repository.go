package ports

import (
	"context"

	"github.com/recordstack/records-api/internal/core/domain"
)

// ItemRepository defines the persistence interface for Item records.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id uint) (*domain.Item, error)
}
