package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/blog-platform/internal/api/middleware"
)

// actor extracts the authenticated username injected by the Auth middleware.
// A missing username means the route was wired without the gate; reject with
// 401 rather than attributing the mutation to nobody.
func actor(c echo.Context) (string, error) {
	username, _ := c.Get(middleware.UsernameKey).(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
