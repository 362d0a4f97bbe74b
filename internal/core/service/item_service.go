package service

import (
	"context"

	"github.com/recordstack/records-api/internal/core/domain"
	"github.com/recordstack/records-api/internal/core/ports"
)

// ItemService implements item record operations.
type ItemService struct {
	repo ports.ItemRepository
}

func NewItemService(repo ports.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create persists a new item and returns it with its assigned id.
func (s *ItemService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	created, err := s.repo.Create(ctx, &domain.Item{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Tax:         input.Tax,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Get fetches an item by its assigned id.
func (s *ItemService) Get(ctx context.Context, id uint) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}
