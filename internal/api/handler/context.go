package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fairlink/careerfair-api/internal/core/ports"
)

// ctxRequester extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: role and user id must
// be present, otherwise the token is structurally valid but operationally
// unusable and the request is rejected with 401.
func ctxRequester(c echo.Context) (ports.Requester, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("userId").(int64)
	if userID == 0 {
		return ports.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	isAdmin, _ := c.Get("isAdmin").(bool)
	return ports.Requester{UserID: userID, Role: role, IsAdmin: isAdmin}, nil
}
