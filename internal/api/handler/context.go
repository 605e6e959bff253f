package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A missing
// role proves the middleware did not run (or the token carried no claims) and
// fails fast with 401 before any service call.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Identity{UserID: userID, Role: role}, nil
}

// ctxOptionalIdentity returns the identity when OptionalAuth attached one and
// a zero Identity otherwise.
func ctxOptionalIdentity(c echo.Context) ports.Identity {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	return ports.Identity{UserID: userID, Role: role}
}
