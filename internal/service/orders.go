package service

import (
	"context"
	"time"

	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/rs/zerolog"
)

// OrdersStore is the slice of the orders repository the service consumes.
type OrdersStore interface {
	List(ctx context.Context) ([]repository.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]repository.Order, error)
	Get(ctx context.Context, id int64) (*repository.Order, error)
	Create(ctx context.Context, userID, itemID int64, orderDate *time.Time, statusID *int64) (*repository.Order, error)
	Update(ctx context.Context, id, userID, itemID int64, orderDate *time.Time, statusID *int64) (*repository.Order, error)
	Delete(ctx context.Context, id int64) error
}

// StatusesStore is the slice of the statuses repository the service consumes.
type StatusesStore interface {
	List(ctx context.Context) ([]repository.OrderStatus, error)
}

// OrderService implements order business operations. Referential checks
// (user, item and status existence) are delegated to the store's
// foreign keys; violations surface as integrity errors.
type OrderService struct {
	orders   OrdersStore
	statuses StatusesStore
	log      *zerolog.Logger
}

func NewOrderService(s *server.Server, orders OrdersStore, statuses StatusesStore) *OrderService {
	return &OrderService{
		orders:   orders,
		statuses: statuses,
		log:      s.Logger,
	}
}

func (s *OrderService) List(ctx context.Context) ([]repository.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]repository.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*repository.Order, error) {
	return s.orders.Get(ctx, id)
}

// Create records an order. Omitted order_date defaults to the current
// time and omitted order_status_id to the initial status, both applied
// by the store.
func (s *OrderService) Create(ctx context.Context, userID, itemID int64, orderDate *time.Time, statusID *int64) (*repository.Order, error) {
	return s.orders.Create(ctx, userID, itemID, orderDate, statusID)
}

// Update is a full-record replace: omitted order_date and
// order_status_id take the same defaults as Create.
func (s *OrderService) Update(ctx context.Context, id, userID, itemID int64, orderDate *time.Time, statusID *int64) (*repository.Order, error) {
	return s.orders.Update(ctx, id, userID, itemID, orderDate, statusID)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

// ListStatuses returns the order status lookup table.
func (s *OrderService) ListStatuses(ctx context.Context) ([]repository.OrderStatus, error) {
	return s.statuses.List(ctx)
}
