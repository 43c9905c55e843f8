package router

import (
	"net/http"

	"github.com/deppfellow/catalog-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerCatalogRoutes registers the business endpoints: users, items
// and orders CRUD plus the order lookups.
func registerCatalogRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.List, http.StatusOK))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK))
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.Update, http.StatusOK))
	users.DELETE("/:id", handler.Handle(h.Users.Handler, h.Users.Delete, http.StatusOK))

	items := r.Group("/items")
	items.GET("", handler.Handle(h.Items.Handler, h.Items.List, http.StatusOK))
	items.POST("", handler.Handle(h.Items.Handler, h.Items.Create, http.StatusCreated))
	items.GET("/:id", handler.Handle(h.Items.Handler, h.Items.Get, http.StatusOK))
	items.PUT("/:id", handler.Handle(h.Items.Handler, h.Items.Update, http.StatusOK))
	items.DELETE("/:id", handler.Handle(h.Items.Handler, h.Items.Delete, http.StatusOK))

	orders := r.Group("/orders")
	orders.GET("", handler.Handle(h.Orders.Handler, h.Orders.List, http.StatusOK))
	orders.POST("", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusCreated))
	// Static segments take precedence over :id in Echo's router, so
	// /orders/statuses and /orders/user/... never collide with /orders/:id.
	orders.GET("/statuses", handler.Handle(h.Orders.Handler, h.Orders.ListStatuses, http.StatusOK))
	orders.GET("/user/:user_id", handler.Handle(h.Orders.Handler, h.Orders.ListByUser, http.StatusOK))
	orders.GET("/:id", handler.Handle(h.Orders.Handler, h.Orders.Get, http.StatusOK))
	orders.PUT("/:id", handler.Handle(h.Orders.Handler, h.Orders.Update, http.StatusOK))
	orders.DELETE("/:id", handler.Handle(h.Orders.Handler, h.Orders.Delete, http.StatusOK))
}
