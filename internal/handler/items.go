package handler

import (
	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/deppfellow/catalog-service/internal/service"
	"github.com/deppfellow/catalog-service/internal/validation"
	"github.com/labstack/echo/v4"
)

// ListItemsRequest is the empty payload for listing items.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error { return nil }

// GetItemRequest identifies an item by path parameter.
type GetItemRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *GetItemRequest) Validate() error { return validation.Struct(r) }

// CreateItemRequest is the payload for creating an item. ItemPrice is a
// pointer so a zero price still counts as present; only an omitted
// field fails the required rule.
type CreateItemRequest struct {
	ItemName        string   `json:"item_name" validate:"required,min=1,max=30"`
	ItemDescription string   `json:"item_description" validate:"required,min=1,max=500"`
	ItemPrice       *float64 `json:"item_price" validate:"required"`
}

func (r *CreateItemRequest) Validate() error { return validation.Struct(r) }

// UpdateItemRequest is a full-record replace of the item matching the
// path parameter.
type UpdateItemRequest struct {
	ID              int64    `param:"id" json:"-" validate:"required,gt=0"`
	ItemName        string   `json:"item_name" validate:"required,min=1,max=30"`
	ItemDescription string   `json:"item_description" validate:"required,min=1,max=500"`
	ItemPrice       *float64 `json:"item_price" validate:"required"`
}

func (r *UpdateItemRequest) Validate() error { return validation.Struct(r) }

// DeleteItemRequest identifies the item to delete.
type DeleteItemRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *DeleteItemRequest) Validate() error { return validation.Struct(r) }

// ItemHandler serves the /items endpoints.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *ItemHandler) List(c echo.Context, req *ListItemsRequest) ([]repository.Item, error) {
	return h.items.List(c.Request().Context())
}

func (h *ItemHandler) Get(c echo.Context, req *GetItemRequest) (*repository.Item, error) {
	return h.items.Get(c.Request().Context(), req.ID)
}

func (h *ItemHandler) Create(c echo.Context, req *CreateItemRequest) (*repository.Item, error) {
	return h.items.Create(c.Request().Context(), repository.Item{
		ItemName:        req.ItemName,
		ItemDescription: req.ItemDescription,
		ItemPrice:       *req.ItemPrice,
	})
}

func (h *ItemHandler) Update(c echo.Context, req *UpdateItemRequest) (*repository.Item, error) {
	return h.items.Update(c.Request().Context(), req.ID, repository.Item{
		ItemName:        req.ItemName,
		ItemDescription: req.ItemDescription,
		ItemPrice:       *req.ItemPrice,
	})
}

func (h *ItemHandler) Delete(c echo.Context, req *DeleteItemRequest) (MessageResponse, error) {
	if err := h.items.Delete(c.Request().Context(), req.ID); err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: "Item has been deleted"}, nil
}
