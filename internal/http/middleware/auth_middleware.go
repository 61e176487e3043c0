package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/policy"
	"repairdesk/internal/utils"
	"repairdesk/internal/utils/apierror"
)

type UserRepository interface {
	FindActiveByID(id int64) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo   UserRepository
	RolePolicy *policy.RolePolicy
}

// NewAuthMiddleware validates the bearer token, reloads the user row and
// resolves the authorization context once, so downstream handlers and
// services never re-query roles.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindActiveByID(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// Deactivated after the token was issued
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			if user.Role == nil || !user.Role.IsActive {
				return c.JSON(http.StatusForbidden, apierror.ForbiddenRoleError)
			}

			c.Set("actor", cfg.RolePolicy.Resolve(user))
			return next(c)
		}
	}
}
