package handler

import (
	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/deppfellow/catalog-service/internal/service"
	"github.com/deppfellow/catalog-service/internal/validation"
	"github.com/labstack/echo/v4"
)

// ListUsersRequest is the empty payload for listing users.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

// GetUserRequest identifies a user by path parameter.
type GetUserRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *GetUserRequest) Validate() error { return validation.Struct(r) }

// CreateUserRequest is the payload for creating a user. The password is
// accepted on input but never echoed back; responses serialize the
// repository record, which hides it.
type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=1,max=30"`
	UserLastName string `json:"user_last_name" validate:"required,min=1,max=30"`
	UserEmail    string `json:"user_email" validate:"required,max=128"`
	Password     string `json:"password" validate:"required,max=128"`
}

func (r *CreateUserRequest) Validate() error { return validation.Struct(r) }

// UpdateUserRequest is a full-record replace of the user matching the
// path parameter.
type UpdateUserRequest struct {
	ID           int64  `param:"id" json:"-" validate:"required,gt=0"`
	UserName     string `json:"user_name" validate:"required,min=1,max=30"`
	UserLastName string `json:"user_last_name" validate:"required,min=1,max=30"`
	UserEmail    string `json:"user_email" validate:"required,max=128"`
	Password     string `json:"password" validate:"required,max=128"`
}

func (r *UpdateUserRequest) Validate() error { return validation.Struct(r) }

// DeleteUserRequest identifies the user to delete.
type DeleteUserRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *DeleteUserRequest) Validate() error { return validation.Struct(r) }

// UserHandler serves the /users endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) List(c echo.Context, req *ListUsersRequest) ([]repository.User, error) {
	return h.users.List(c.Request().Context())
}

func (h *UserHandler) Get(c echo.Context, req *GetUserRequest) (*repository.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*repository.User, error) {
	return h.users.Create(c.Request().Context(), repository.User{
		UserName:     req.UserName,
		UserLastName: req.UserLastName,
		UserEmail:    req.UserEmail,
		Password:     req.Password,
	})
}

func (h *UserHandler) Update(c echo.Context, req *UpdateUserRequest) (*repository.User, error) {
	return h.users.Update(c.Request().Context(), req.ID, repository.User{
		UserName:     req.UserName,
		UserLastName: req.UserLastName,
		UserEmail:    req.UserEmail,
		Password:     req.Password,
	})
}

func (h *UserHandler) Delete(c echo.Context, req *DeleteUserRequest) (MessageResponse, error) {
	if err := h.users.Delete(c.Request().Context(), req.ID); err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: "User has been deleted"}, nil
}
