package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/validgate/internal/server"
)

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UserParams are the path parameters of /users/:userId.
type UserParams struct {
	UserID string `json:"userId" param:"userId" validate:"required,uuid"`
}

// UserQuery is the query string of GET /users/:userId.
type UserQuery struct {
	SortBy string `json:"sortBy" query:"sortBy" validate:"omitempty,oneof=name email"`
}

// GetUserRequest is what the GET handler binds: params and query together.
type GetUserRequest struct {
	UserParams
	UserQuery
}

// UserResponse is returned by the user endpoints.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	SortBy string `json:"sortBy,omitempty"`
}

// UserHandler serves the example user endpoints. It keeps no state: the
// point of these routes is to sit behind validation gates.
type UserHandler struct {
	Handler
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
	}
}

// Create answers with the submitted user under a fresh id.
func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*UserResponse, error) {
	return &UserResponse{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
	}, nil
}

// Delete accepts the removal of a user. There is no store behind these
// routes, so a well-formed id is all it takes.
func (h *UserHandler) Delete(c echo.Context, req *UserParams) error {
	return nil
}

// Get echoes the requested id and sort order.
func (h *UserHandler) Get(c echo.Context, req *GetUserRequest) (*UserResponse, error) {
	return &UserResponse{
		ID:     req.UserID,
		SortBy: req.SortBy,
	}, nil
}
