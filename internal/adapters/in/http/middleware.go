package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorContextKey     = "actor"
	userNameContextKey  = "actorName"
	userEmailContextKey = "actorEmail"
)

// Claims is the JWT payload issued by the identity service.
// Name and Email are snapshots used when an application needs applicant
// contact details.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ActorMiddleware resolves the acting user from the Authorization header.
// Requests without the header proceed as guest; a present but invalid token
// is rejected with 401 rather than silently downgraded.
func ActorMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(actorContextKey, actor.Guest())
				return next(c)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header must use the Bearer scheme",
				})
			}

			act, name, email, err := parseActor(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			c.Set(actorContextKey, act)
			c.Set(userNameContextKey, name)
			c.Set(userEmailContextKey, email)
			return next(c)
		}
	}
}

func parseActor(token, secret string) (actor.Actor, string, string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return actor.Actor{}, "", "", err
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return actor.Actor{}, "", "", err
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, "", "", err
	}

	act, err := actor.NewActor(userID, role)
	if err != nil {
		return actor.Actor{}, "", "", err
	}

	return act, claims.Name, claims.Email, nil
}

// actorFromContext returns the actor resolved by ActorMiddleware, or guest
// when the middleware did not run.
func actorFromContext(c echo.Context) actor.Actor {
	if act, ok := c.Get(actorContextKey).(actor.Actor); ok {
		return act
	}
	return actor.Guest()
}

func stringFromContext(c echo.Context, key string) string {
	if value, ok := c.Get(key).(string); ok {
		return value
	}
	return ""
}
