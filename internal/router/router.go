// Package router initializes the HTTP router (using echo).
//
// It registers the global middlewares and defines the API route
// groups, mapping paths to handlers and attaching each route's
// validation gate.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/validgate/internal/handler"
	"github.com/deppfellow/validgate/internal/middleware"
	"github.com/deppfellow/validgate/internal/server"
)

// NewRouter builds the echo instance with the global middleware stack and
// every route registered.
//
// Middleware order matters:
//  1. RequestID so every later log line has an id
//  2. ContextEnhancer so the request logger exists (the gates log through it)
//  3. RequestLogger, Recover
//  4. BodyLimit before any gate reads the body
//  5. Secure, CORS
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.BodyLimit(),
		m.Global.Secure(),
		m.Global.CORS(),
	)

	registerSystemRoutes(r, h)

	v1 := r.Group("/api/v1")
	registerUserRoutes(v1, h)

	return r
}

// registerSystemRoutes registers endpoints that are not part of the API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}
