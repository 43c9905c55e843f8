// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/catalog-service/internal/handler"
	"github.com/deppfellow/catalog-service/internal/middleware"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance: middleware chain, error handler
// and all route registrations.
//
// Middleware order matters: RequestID and the New Relic middleware run
// before the context enhancer so the request-scoped logger can pick up
// the request id and trace ids.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// /users/ and /users are the same resource; normalize before routing.
	e.Pre(echomw.RemoveTrailingSlash())

	mws := middleware.NewMiddlewares(s)

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	e.Use(mws.Global.Recover())
	e.Use(mws.Global.Secure())
	e.Use(mws.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(mws.Tracing.NewRelicMiddleware())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Tracing.EnhanceTracing())
	e.Use(mws.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerCatalogRoutes(e, h)

	return e
}
