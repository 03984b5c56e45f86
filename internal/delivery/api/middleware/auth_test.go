package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	mockUsecase "github.com/Abhithakur7080/your-video/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(token string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

// captureIdentity records whether the wrapped handler ran and who it ran as.
func captureIdentity(called *bool, seen **entity.Identity) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		*seen = GetIdentity(c)

		return nil
	}
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	credentials := mockUsecase.NewMockCredentialManager(t)
	m := NewAuthMiddleware(credentials)

	var called bool
	var seen *entity.Identity
	err := m.Authenticate(captureIdentity(&called, &seen))(newAuthContext(""))

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	credentials := mockUsecase.NewMockCredentialManager(t)
	m := NewAuthMiddleware(credentials)
	identity := &entity.Identity{UserID: uuid.New(), Username: "alice"}

	credentials.EXPECT().
		VerifyAccess(mock.Anything, "good-token").
		Return(identity, nil)

	var called bool
	var seen *entity.Identity
	err := m.Authenticate(captureIdentity(&called, &seen))(newAuthContext("good-token"))

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, identity, seen)
}

func TestAuthMiddleware_Optional(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name       string
		token      string
		verifyErr  error
		wantErr    error
		wantCalled bool
		wantUser   bool
	}{
		{name: "no token is anonymous", wantCalled: true},
		{name: "valid token attaches identity", token: "good-token", wantCalled: true, wantUser: true},
		{
			name:       "rejected token is anonymous",
			token:      "expired-token",
			verifyErr:  errors.Wrap(domainerrors.ErrUnauthenticated, "token is expired"),
			wantCalled: true,
		},
		{
			name:      "lookup failure aborts the request",
			token:     "good-token",
			verifyErr: errors.Wrap(dbErr, "failed to load token subject"),
			wantErr:   dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credentials := mockUsecase.NewMockCredentialManager(t)
			m := NewAuthMiddleware(credentials)
			identity := &entity.Identity{UserID: uuid.New(), Username: "alice"}

			if tt.token != "" {
				call := credentials.EXPECT().VerifyAccess(mock.Anything, tt.token)
				if tt.verifyErr != nil {
					call.Return(nil, tt.verifyErr)
				} else {
					call.RunAndReturn(func(context.Context, string) (*entity.Identity, error) {
						return identity, nil
					})
				}
			}

			var called bool
			var seen *entity.Identity
			err := m.Optional(captureIdentity(&called, &seen))(newAuthContext(tt.token))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantUser {
				assert.Equal(t, identity, seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}
