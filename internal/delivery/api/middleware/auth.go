package middleware

import (
	"strings"

	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// AccessTokenCookie and RefreshTokenCookie are the cookies set on login and refresh.
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// AuthMiddleware resolves the caller from the access token cookie or a Bearer header.
type AuthMiddleware struct {
	credentials usecase.CredentialManager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(credentials usecase.CredentialManager) *AuthMiddleware {
	return &AuthMiddleware{credentials: credentials}
}

// Authenticate rejects the request with Unauthenticated unless a valid access token is presented.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessToken(c)
		if token == "" {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.credentials.VerifyAccess(c.Request().Context(), token)
		if err != nil {
			return err
		}
		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// Optional attaches the caller when a valid access token is presented. A missing
// or rejected token is served anonymously; any other failure aborts the request.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessToken(c)
		if token == "" {
			return next(c)
		}

		identity, err := m.credentials.VerifyAccess(c.Request().Context(), token)
		switch {
		case err == nil:
			deliverycontext.SetIdentity(c, identity)
		case !errors.Is(err, domainerrors.ErrUnauthenticated):
			return err
		}

		return next(c)
	}
}

// GetIdentity returns the caller attached by Authenticate or Optional, or nil.
func GetIdentity(c echo.Context) *entity.Identity {
	return deliverycontext.GetIdentity(c)
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
