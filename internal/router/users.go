package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/validgate/internal/handler"
	"github.com/deppfellow/validgate/internal/validation"
)

// Gate configs are built once here and shared by every request on the route.
var (
	createUserGate = validation.Gate(validation.Config{
		Body: validation.NewStructValidator[handler.CreateUserRequest](),
	})

	getUserGate = validation.Gate(validation.Config{
		Params: validation.NewStructValidator[handler.UserParams](),
		Query:  validation.NewStructValidator[handler.UserQuery](),
	})

	deleteUserGate = validation.Gate(validation.Config{
		Params: validation.NewStructValidator[handler.UserParams](),
	})
)

func registerUserRoutes(g *echo.Group, h *handler.Handlers) {
	users := g.Group("/users")

	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated), createUserGate)
	users.GET("/:userId", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK), getUserGate)
	users.DELETE("/:userId", handler.HandleNoContent(h.Users.Handler, h.Users.Delete, http.StatusNoContent), deleteUserGate)
}
