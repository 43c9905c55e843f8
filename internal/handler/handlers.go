package handler

import (
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/deppfellow/catalog-service/internal/service"
)

// MessageResponse is the body returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Users   *UserHandler
	Items   *ItemHandler
	Orders  *OrderHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Users:   NewUserHandler(s, services.Users),
		Items:   NewItemHandler(s, services.Items),
		Orders:  NewOrderHandler(s, services.Orders),
	}
}
