package middleware

import (
	"net/http"
	"strings"

	"souqtech/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

type AdminMiddleware struct {
	store     *usecase.Store
	jwtSecret string
}

func NewAdminMiddleware(store *usecase.Store, jwtSecret string) *AdminMiddleware {
	return &AdminMiddleware{
		store:     store,
		jwtSecret: jwtSecret,
	}
}

// AdminOnly requires a valid session token from a prior login and an active
// admin flag on the store.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
			}
			return []byte(m.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		if !m.store.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Admin session has ended")
		}

		c.Set("username", claims["sub"])
		return next(c)
	}
}
