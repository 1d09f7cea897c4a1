package handler

import (
	"github.com/labstack/echo/v4"

	"courseapi/internal/auth"
	apperrors "courseapi/internal/errors"
	"courseapi/internal/service"
)

// RequireAuth authenticates the request with HTTP Basic credentials and stores
// the user on the context. Failures stop the chain with a 401.
func RequireAuth(svc service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds, ok := auth.ParseBasic(c.Request())
			if !ok {
				return apperrors.Unauthenticated(service.ReasonNoAuthorization)
			}

			user, err := svc.Authenticate(c.Request().Context(), creds)
			if err != nil {
				return err
			}

			auth.SetCurrentUser(c, user)
			return next(c)
		}
	}
}
