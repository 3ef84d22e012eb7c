package middleware // middleware provides reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/task-tracker/internal/utils"
)

// Auth returns an Echo middleware that validates a Bearer access token and
// injects the token's subject into the request context. The provided secret
// must match the one used when issuing tokens. Protected handlers read the
// authenticated identity via c.Get("user_id"), which holds a uint64.
//
// A missing credential and an invalid one are both rejected with 400; the
// response never reveals whether a token was absent, expired or tampered
// beyond that split.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			uid, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", uid)
			return next(c)
		}
	}
}
