package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/catalog-service/internal/config"
	"github.com/deppfellow/catalog-service/internal/handler"
	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/router"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/deppfellow/catalog-service/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type testEnv struct {
	router   *echo.Echo
	users    *mockUsersStore
	items    *mockItemsStore
	orders   *mockOrdersStore
	statuses *mockStatusesStore
}

// newTestEnv wires the real router, middleware, handlers and services
// over mocked stores, so tests exercise the full HTTP pipeline
// including binding, validation and error shaping.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			CORSAllowedOrigins: []string{"*"},
		},
	}

	log := zerolog.Nop()
	srv := &server.Server{
		Config: cfg,
		Logger: &log,
	}

	env := &testEnv{
		users:    new(mockUsersStore),
		items:    new(mockItemsStore),
		orders:   new(mockOrdersStore),
		statuses: new(mockStatusesStore),
	}

	services := &service.Services{
		Users:  service.NewUserService(srv, env.users),
		Items:  service.NewItemService(srv, env.items),
		Orders: service.NewOrderService(srv, env.orders, env.statuses),
	}

	env.router = router.NewRouter(srv, handler.NewHandlers(srv, services))

	return env
}

func (env *testEnv) request(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("Create", mock.Anything, repository.User{
		UserName:     "Ada",
		UserLastName: "Lovelace",
		UserEmail:    "ada@example.com",
		Password:     "secret",
	}).Return(&repository.User{
		UserID:       1,
		UserName:     "Ada",
		UserLastName: "Lovelace",
		UserEmail:    "ada@example.com",
		Password:     "secret",
	}, nil)

	rec := env.request(http.MethodPost, "/users", `{
		"user_name": "Ada",
		"user_last_name": "Lovelace",
		"user_email": "ada@example.com",
		"password": "secret"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["user_id"])
	assert.Equal(t, "Ada", body["user_name"])
	// The password never appears in responses.
	assert.NotContains(t, body, "password")

	env.users.AssertExpectations(t)
}

func TestCreateUser_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/users", `{
		"user_name": "`+strings.Repeat("a", 31)+`",
		"user_last_name": "Lovelace",
		"user_email": "ada@example.com",
		"password": "secret"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["code"])

	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	fieldErr := errs[0].(map[string]interface{})
	assert.Equal(t, "user_name", fieldErr["field"])

	// The store must never see an invalid payload.
	env.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_EmailIsPlainString(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("Create", mock.Anything, repository.User{
		UserName:     "Ada",
		UserLastName: "Lovelace",
		UserEmail:    "just-a-string",
		Password:     "secret",
	}).Return(&repository.User{
		UserID:       1,
		UserName:     "Ada",
		UserLastName: "Lovelace",
		UserEmail:    "just-a-string",
		Password:     "secret",
	}, nil)

	// user_email is only length-checked, any string up to 128 chars is
	// accepted.
	rec := env.request(http.MethodPost, "/users", `{
		"user_name": "Ada",
		"user_last_name": "Lovelace",
		"user_email": "just-a-string",
		"password": "secret"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "just-a-string", body["user_email"])

	env.users.AssertExpectations(t)
}

func TestCreateUser_NameLengthBoundary(t *testing.T) {
	maxName := strings.Repeat("a", 30)

	tests := []struct {
		name       string
		userName   string
		wantStatus int
	}{
		{name: "empty name fails", userName: "", wantStatus: http.StatusBadRequest},
		{name: "30 chars succeeds", userName: maxName, wantStatus: http.StatusCreated},
		{name: "31 chars fails", userName: maxName + "a", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			if tt.wantStatus == http.StatusCreated {
				env.users.On("Create", mock.Anything, mock.Anything).
					Return(&repository.User{UserID: 1, UserName: tt.userName}, nil)
			}

			rec := env.request(http.MethodPost, "/users", `{
				"user_name": "`+tt.userName+`",
				"user_last_name": "Lovelace",
				"user_email": "ada@example.com",
				"password": "secret"
			}`)

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusBadRequest {
				body := decodeBody(t, rec)
				errs, ok := body["errors"].([]interface{})
				require.True(t, ok)
				require.Len(t, errs, 1)
				fieldErr := errs[0].(map[string]interface{})
				assert.Equal(t, "user_name", fieldErr["field"])
				env.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestGetUser_TrailingSlashList(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("List", mock.Anything).Return([]repository.User{
		{UserID: 1, UserName: "Ada"},
	}, nil)

	// /users/ must behave like /users.
	rec := env.request(http.MethodGet, "/users/", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0]["user_name"])
}

func TestGetItem_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("Get", mock.Anything, int64(42)).
		Return(nil, fmt.Errorf("table:items: %w", pgx.ErrNoRows))

	rec := env.request(http.MethodGet, "/items/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Item not found", body["message"])
	assert.Equal(t, true, body["override"])

	env.items.AssertExpectations(t)
}

func TestUpdateItem(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("Update", mock.Anything, int64(3), repository.Item{
		ItemName:        "Keyboard",
		ItemDescription: "Mechanical, brown switches",
		ItemPrice:       89.5,
	}).Return(&repository.Item{
		ItemID:          3,
		ItemName:        "Keyboard",
		ItemDescription: "Mechanical, brown switches",
		ItemPrice:       89.5,
	}, nil)

	rec := env.request(http.MethodPut, "/items/3", `{
		"item_name": "Keyboard",
		"item_description": "Mechanical, brown switches",
		"item_price": 89.5
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["item_id"])
	assert.Equal(t, 89.5, body["item_price"])

	env.items.AssertExpectations(t)
}

func TestCreateItem_MissingPrice(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/items", `{
		"item_name": "Keyboard",
		"item_description": "Mechanical"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	fieldErr := errs[0].(map[string]interface{})
	assert.Equal(t, "item_price", fieldErr["field"])

	env.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateItem_ZeroPriceAccepted(t *testing.T) {
	env := newTestEnv(t)
	env.items.On("Create", mock.Anything, repository.Item{
		ItemName:        "Sticker",
		ItemDescription: "Free swag",
		ItemPrice:       0,
	}).Return(&repository.Item{ItemID: 9, ItemName: "Sticker", ItemDescription: "Free swag", ItemPrice: 0}, nil)

	rec := env.request(http.MethodPost, "/items", `{
		"item_name": "Sticker",
		"item_description": "Free swag",
		"item_price": 0
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env.items.AssertExpectations(t)
}

func TestCreateOrder_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("Create", mock.Anything, int64(99), int64(1), (*time.Time)(nil), (*int64)(nil)).
		Return(nil, &pgconn.PgError{
			Code:           "23503",
			Severity:       "ERROR",
			TableName:      "orders",
			ColumnName:     "user_id",
			ConstraintName: "orders_user_id_fkey",
		})

	rec := env.request(http.MethodPost, "/orders", `{"user_id": 99, "item_id": 1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ORDER_NOT_FOUND", body["code"])
	assert.Equal(t, "The referenced User does not exist", body["message"])

	env.orders.AssertExpectations(t)
}

func TestCreateOrder_MissingIDs(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/orders", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestDeleteOrder(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("Delete", mock.Anything, int64(5)).Return(nil)

	rec := env.request(http.MethodDelete, "/orders/5", "")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Order has been deleted", body["message"])

	env.orders.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("Delete", mock.Anything, int64(99)).
		Return(fmt.Errorf("table:users: %w", pgx.ErrNoRows))

	rec := env.request(http.MethodDelete, "/users/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "User not found", body["message"])
}

func TestListUserOrders(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("ListByUser", mock.Anything, int64(7)).
		Return([]repository.Order{
			{OrderID: 1, UserID: 7, ItemID: 3, OrderStatusID: 1},
			{OrderID: 2, UserID: 7, ItemID: 4, OrderStatusID: 2},
		}, nil)

	rec := env.request(http.MethodGet, "/orders/user/7", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestListOrderStatuses(t *testing.T) {
	env := newTestEnv(t)
	env.statuses.On("List", mock.Anything).
		Return([]repository.OrderStatus{
			{StatusID: 1, StatusDescription: "created"},
			{StatusID: 2, StatusDescription: "paid"},
			{StatusID: 3, StatusDescription: "shipped"},
			{StatusID: 4, StatusDescription: "cancelled"},
		}, nil)

	rec := env.request(http.MethodGet, "/orders/statuses", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 4)
	assert.Equal(t, "created", list[0]["status_description"])
}

func TestRouteNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Route not found", body["message"])
}
