package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/openroads/trafficmon/internal/pkg/accessgate"
	jwtpkg "github.com/openroads/trafficmon/internal/pkg/jwt"
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/internal/utils"
)

// principalKey is the echo context key holding the resolved principal.
const principalKey = "principal"

// PrincipalMiddleware resolves the request principal from a Bearer token.
// Requests without an Authorization header proceed as anonymous; read
// endpoints stay open while write handlers consult the access gate. A
// present but invalid token is rejected.
func PrincipalMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Set(principalKey, accessgate.Principal{})
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			isAdmin, _ := (*claims)["is_admin"].(bool)

			c.Set(principalKey, accessgate.Principal{ID: userID, IsAdmin: isAdmin})
			c.Set("user_id", userID)

			return next(c)
		}
	}
}

// PrincipalFrom returns the principal resolved for the request, or the
// anonymous principal when none was set.
func PrincipalFrom(c echo.Context) accessgate.Principal {
	if p, ok := c.Get(principalKey).(accessgate.Principal); ok {
		return p
	}
	return accessgate.Principal{}
}
