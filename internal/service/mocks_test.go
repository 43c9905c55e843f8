package service

import (
	"context"
	"time"

	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

func newTestServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{Logger: &log}
}

type mockUsersStore struct {
	mock.Mock
}

func (m *mockUsersStore) List(ctx context.Context) ([]repository.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.User), args.Error(1)
}

func (m *mockUsersStore) Get(ctx context.Context, id int64) (*repository.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.User), args.Error(1)
}

func (m *mockUsersStore) Create(ctx context.Context, u repository.User) (*repository.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.User), args.Error(1)
}

func (m *mockUsersStore) Update(ctx context.Context, id int64, u repository.User) (*repository.User, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.User), args.Error(1)
}

func (m *mockUsersStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockItemsStore struct {
	mock.Mock
}

func (m *mockItemsStore) List(ctx context.Context) ([]repository.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Item), args.Error(1)
}

func (m *mockItemsStore) Get(ctx context.Context, id int64) (*repository.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Item), args.Error(1)
}

func (m *mockItemsStore) Create(ctx context.Context, it repository.Item) (*repository.Item, error) {
	args := m.Called(ctx, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Item), args.Error(1)
}

func (m *mockItemsStore) Update(ctx context.Context, id int64, it repository.Item) (*repository.Item, error) {
	args := m.Called(ctx, id, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Item), args.Error(1)
}

func (m *mockItemsStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrdersStore struct {
	mock.Mock
}

func (m *mockOrdersStore) List(ctx context.Context) ([]repository.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Order), args.Error(1)
}

func (m *mockOrdersStore) ListByUser(ctx context.Context, userID int64) ([]repository.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Order), args.Error(1)
}

func (m *mockOrdersStore) Get(ctx context.Context, id int64) (*repository.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Order), args.Error(1)
}

func (m *mockOrdersStore) Create(ctx context.Context, userID, itemID int64, orderDate *time.Time, statusID *int64) (*repository.Order, error) {
	args := m.Called(ctx, userID, itemID, orderDate, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Order), args.Error(1)
}

func (m *mockOrdersStore) Update(ctx context.Context, id, userID, itemID int64, orderDate *time.Time, statusID *int64) (*repository.Order, error) {
	args := m.Called(ctx, id, userID, itemID, orderDate, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Order), args.Error(1)
}

func (m *mockOrdersStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStatusesStore struct {
	mock.Mock
}

func (m *mockStatusesStore) List(ctx context.Context) ([]repository.OrderStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OrderStatus), args.Error(1)
}
