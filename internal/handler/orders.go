package handler

import (
	"time"

	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/deppfellow/catalog-service/internal/service"
	"github.com/deppfellow/catalog-service/internal/validation"
	"github.com/labstack/echo/v4"
)

// ListOrdersRequest is the empty payload for listing orders.
type ListOrdersRequest struct{}

func (r *ListOrdersRequest) Validate() error { return nil }

// ListOrderStatusesRequest is the empty payload for listing statuses.
type ListOrderStatusesRequest struct{}

func (r *ListOrderStatusesRequest) Validate() error { return nil }

// GetOrderRequest identifies an order by path parameter.
type GetOrderRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *GetOrderRequest) Validate() error { return validation.Struct(r) }

// ListUserOrdersRequest identifies the user whose orders to list.
type ListUserOrdersRequest struct {
	UserID int64 `param:"user_id" json:"-" validate:"required,gt=0"`
}

func (r *ListUserOrdersRequest) Validate() error { return validation.Struct(r) }

// CreateOrderRequest is the payload for placing an order. UserID and
// ItemID are pointers so presence is checked rather than zero values;
// OrderDate and OrderStatusID are optional and default server-side.
type CreateOrderRequest struct {
	UserID        *int64     `json:"user_id" validate:"required,gt=0"`
	ItemID        *int64     `json:"item_id" validate:"required,gt=0"`
	OrderDate     *time.Time `json:"order_date"`
	OrderStatusID *int64     `json:"order_status_id" validate:"omitempty,gt=0"`
}

func (r *CreateOrderRequest) Validate() error { return validation.Struct(r) }

// UpdateOrderRequest is a full-record replace of the order matching the
// path parameter. Omitted OrderDate/OrderStatusID take the same
// defaults as on create.
type UpdateOrderRequest struct {
	ID            int64      `param:"id" json:"-" validate:"required,gt=0"`
	UserID        *int64     `json:"user_id" validate:"required,gt=0"`
	ItemID        *int64     `json:"item_id" validate:"required,gt=0"`
	OrderDate     *time.Time `json:"order_date"`
	OrderStatusID *int64     `json:"order_status_id" validate:"omitempty,gt=0"`
}

func (r *UpdateOrderRequest) Validate() error { return validation.Struct(r) }

// DeleteOrderRequest identifies the order to delete.
type DeleteOrderRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *DeleteOrderRequest) Validate() error { return validation.Struct(r) }

// OrderHandler serves the /orders endpoints.
type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

func (h *OrderHandler) List(c echo.Context, req *ListOrdersRequest) ([]repository.Order, error) {
	return h.orders.List(c.Request().Context())
}

func (h *OrderHandler) ListStatuses(c echo.Context, req *ListOrderStatusesRequest) ([]repository.OrderStatus, error) {
	return h.orders.ListStatuses(c.Request().Context())
}

func (h *OrderHandler) ListByUser(c echo.Context, req *ListUserOrdersRequest) ([]repository.Order, error) {
	return h.orders.ListByUser(c.Request().Context(), req.UserID)
}

func (h *OrderHandler) Get(c echo.Context, req *GetOrderRequest) (*repository.Order, error) {
	return h.orders.Get(c.Request().Context(), req.ID)
}

func (h *OrderHandler) Create(c echo.Context, req *CreateOrderRequest) (*repository.Order, error) {
	return h.orders.Create(c.Request().Context(), *req.UserID, *req.ItemID, req.OrderDate, req.OrderStatusID)
}

func (h *OrderHandler) Update(c echo.Context, req *UpdateOrderRequest) (*repository.Order, error) {
	return h.orders.Update(c.Request().Context(), req.ID, *req.UserID, *req.ItemID, req.OrderDate, req.OrderStatusID)
}

func (h *OrderHandler) Delete(c echo.Context, req *DeleteOrderRequest) (MessageResponse, error) {
	if err := h.orders.Delete(c.Request().Context(), req.ID); err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: "Order has been deleted"}, nil
}
