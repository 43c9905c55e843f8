package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Create(t *testing.T) {
	orderDate := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	statusID := int64(2)

	tests := []struct {
		name       string
		orderDate  *time.Time
		statusID   *int64
		setupMocks func(orders *mockOrdersStore)
		wantErr    bool
	}{
		{
			name: "defaults applied when date and status omitted",
			setupMocks: func(orders *mockOrdersStore) {
				orders.On("Create", mock.Anything, int64(1), int64(2), (*time.Time)(nil), (*int64)(nil)).
					Return(&repository.Order{
						OrderID:       10,
						UserID:        1,
						ItemID:        2,
						OrderDate:     time.Now(),
						OrderStatusID: 1,
					}, nil)
			},
		},
		{
			name:      "explicit date and status pass through",
			orderDate: &orderDate,
			statusID:  &statusID,
			setupMocks: func(orders *mockOrdersStore) {
				orders.On("Create", mock.Anything, int64(1), int64(2), &orderDate, &statusID).
					Return(&repository.Order{
						OrderID:       11,
						UserID:        1,
						ItemID:        2,
						OrderDate:     orderDate,
						OrderStatusID: 2,
					}, nil)
			},
		},
		{
			name: "store failure propagates",
			setupMocks: func(orders *mockOrdersStore) {
				orders.On("Create", mock.Anything, int64(1), int64(2), (*time.Time)(nil), (*int64)(nil)).
					Return(nil, fmt.Errorf("store unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(mockOrdersStore)
			tt.setupMocks(orders)

			svc := NewOrderService(newTestServer(), orders, new(mockStatusesStore))

			created, err := svc.Create(context.Background(), 1, 2, tt.orderDate, tt.statusID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, created.OrderID)
			}

			orders.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListByUser(t *testing.T) {
	orders := new(mockOrdersStore)
	orders.On("ListByUser", mock.Anything, int64(7)).
		Return([]repository.Order{
			{OrderID: 1, UserID: 7, ItemID: 3, OrderStatusID: 1},
			{OrderID: 2, UserID: 7, ItemID: 4, OrderStatusID: 2},
		}, nil)

	svc := NewOrderService(newTestServer(), orders, new(mockStatusesStore))

	list, err := svc.ListByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, o := range list {
		assert.Equal(t, int64(7), o.UserID)
	}
	orders.AssertExpectations(t)
}

func TestOrderService_ListByUser_UnknownUserIsEmpty(t *testing.T) {
	orders := new(mockOrdersStore)
	orders.On("ListByUser", mock.Anything, int64(404)).Return([]repository.Order{}, nil)

	svc := NewOrderService(newTestServer(), orders, new(mockStatusesStore))

	list, err := svc.ListByUser(context.Background(), 404)

	require.NoError(t, err)
	assert.Empty(t, list)
	orders.AssertExpectations(t)
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	notFoundErr := fmt.Errorf("table:orders: %w", pgx.ErrNoRows)

	orders := new(mockOrdersStore)
	orders.On("Delete", mock.Anything, int64(99)).Return(notFoundErr)

	svc := NewOrderService(newTestServer(), orders, new(mockStatusesStore))

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	orders.AssertExpectations(t)
}

func TestOrderService_ListStatuses(t *testing.T) {
	statuses := new(mockStatusesStore)
	statuses.On("List", mock.Anything).
		Return([]repository.OrderStatus{
			{StatusID: 1, StatusDescription: "created"},
			{StatusID: 2, StatusDescription: "paid"},
			{StatusID: 3, StatusDescription: "shipped"},
			{StatusID: 4, StatusDescription: "cancelled"},
		}, nil)

	svc := NewOrderService(newTestServer(), new(mockOrdersStore), statuses)

	list, err := svc.ListStatuses(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "created", list[0].StatusDescription)
	statuses.AssertExpectations(t)
}
