package handler

import (
	"github.com/deppfellow/validgate/internal/server"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health *HealthHandler
	Users  *UserHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Users:  NewUserHandler(s),
	}
}
