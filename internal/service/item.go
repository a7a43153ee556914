package service

import (
	"ReviewBoard/internal/model"
	"ReviewBoard/internal/repo"
	"context"
)

// ItemService: чтение каталога.
type ItemService struct {
	repo repo.ItemRepository
}

func NewItemService(r repo.ItemRepository) *ItemService {
	return &ItemService{repo: r}
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.List(ctx)
	return items, storeErr(err)
}

func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return it, nil
}
