package service

import (
	"context"

	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/rs/zerolog"
)

// ItemsStore is the slice of the items repository the service consumes.
type ItemsStore interface {
	List(ctx context.Context) ([]repository.Item, error)
	Get(ctx context.Context, id int64) (*repository.Item, error)
	Create(ctx context.Context, it repository.Item) (*repository.Item, error)
	Update(ctx context.Context, id int64, it repository.Item) (*repository.Item, error)
	Delete(ctx context.Context, id int64) error
}

// ItemService implements item business operations on top of an ItemsStore.
type ItemService struct {
	items ItemsStore
	log   *zerolog.Logger
}

func NewItemService(s *server.Server, items ItemsStore) *ItemService {
	return &ItemService{
		items: items,
		log:   s.Logger,
	}
}

func (s *ItemService) List(ctx context.Context) ([]repository.Item, error) {
	return s.items.List(ctx)
}

func (s *ItemService) Get(ctx context.Context, id int64) (*repository.Item, error) {
	return s.items.Get(ctx, id)
}

func (s *ItemService) Create(ctx context.Context, it repository.Item) (*repository.Item, error) {
	return s.items.Create(ctx, it)
}

func (s *ItemService) Update(ctx context.Context, id int64, it repository.Item) (*repository.Item, error) {
	return s.items.Update(ctx, id, it)
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.items.Delete(ctx, id)
}
