package middleware

import (
	"strings"

	"canteen/internal/delivery/api/response"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// AuthMiddleware resolves the Bearer ID token of a request into an actor.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate verifies the ID token and stores the resolved actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing"))
		}

		idToken, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(idToken) == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("must be a Bearer token"))
		}

		actor, err := m.sessions.Resolve(c.Request().Context(), strings.TrimSpace(idToken))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(actorKey, *actor)
		deliverycontext.BindCaller(c, actor.UserKey, actor.Role.String())

		return next(c)
	}
}

// RequireRole rejects actors holding none of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
			}

			if !entity.Roles(roles).Contains(actor.Role) {
				return response.HandleAppError(c, domainerrors.ErrRoleNotPermitted)
			}

			return next(c)
		}
	}
}

// GetActor returns the actor stored by Authenticate.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(actorKey).(entity.Actor)

	return actor, ok
}
