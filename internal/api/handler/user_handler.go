package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-platform/internal/core/ports"
)

// UserHandler serves the user listing. Password hashes are excluded from
// serialization at the domain type.
type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
