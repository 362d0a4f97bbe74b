package service

import (
	"context"
	"testing"

	"github.com/recordstack/records-api/internal/core/domain"
	"github.com/recordstack/records-api/internal/core/ports"
)

type stubItemRepo struct {
	items  map[uint]*domain.Item
	nextID uint
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uint]*domain.Item), nextID: 1}
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	stored := *item
	stored.ID = r.nextID
	r.nextID++
	r.items[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uint) (*domain.Item, error) {
	if it, ok := r.items[id]; ok {
		clone := *it
		return &clone, nil
	}
	return nil, domain.ErrItemNotFound
}

func TestItemService_CreateAndGet(t *testing.T) {
	svc := NewItemService(newStubItemRepo())

	desc := "a widget"
	tax := 1.5
	item, err := svc.Create(context.Background(), ports.CreateItemInput{
		Name:        "Widget",
		Description: &desc,
		Price:       9.99,
		Tax:         &tax,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if item.ID == 0 {
		t.Fatalf("created item must carry its assigned id")
	}

	fetched, err := svc.Get(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fetched.Name != "Widget" || fetched.Price != 9.99 {
		t.Fatalf("read-back mismatch: %+v", fetched)
	}
	if fetched.Description == nil || *fetched.Description != desc {
		t.Fatalf("description lost on round trip: %+v", fetched)
	}
}

func TestItemService_OptionalFieldsAbsent(t *testing.T) {
	svc := NewItemService(newStubItemRepo())

	item, err := svc.Create(context.Background(), ports.CreateItemInput{Name: "Plain", Price: 1})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if item.Description != nil || item.Tax != nil {
		t.Fatalf("absent optional fields must stay nil: %+v", item)
	}
}

func TestItemService_Get_NotFound(t *testing.T) {
	svc := NewItemService(newStubItemRepo())

	if _, err := svc.Get(context.Background(), 7); err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
