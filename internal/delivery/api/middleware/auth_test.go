package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "nomad/internal/delivery/context"
	domainerrors "nomad/internal/domain/errors"
	"nomad/internal/domain/service"
	mockSvc "nomad/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Name: "Ana", Roles: []string{"user"}}

	t.Run("valid bearer token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(claims, nil).Once()
		c, rec := newContext("/", "Bearer good")

		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		got, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		assert.Equal(t, userID.String(), c.Get(deliverycontext.KeyUserID))
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
		c, _ := newContext("/", "Bearer expired")

		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("token without a user", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("anonymous").Return(&service.Claims{}, nil).Once()
		c, _ := newContext("/", "Bearer anonymous")

		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		c, _ := newContext("/", "Basic dXNlcjpwYXNz")

		err := NewAuthMiddleware(mockSvc.NewMockTokenService(t)).Authenticate(okHandler)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("query token ignored", func(t *testing.T) {
		c, _ := newContext("/?token=good", "")

		err := NewAuthMiddleware(mockSvc.NewMockTokenService(t)).Authenticate(okHandler)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestAuthenticateQuery(t *testing.T) {
	claims := &service.Claims{UserID: uuid.New()}
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(claims, nil).Once()
	c, rec := newContext("/ws?token=good", "")

	err := NewAuthMiddleware(tokenSvc).AuthenticateQuery(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	tests := []struct {
		name    string
		claims  *service.Claims
		wantErr error
	}{
		{name: "has role", claims: &service.Claims{UserID: uuid.New(), Roles: []string{"user", "business"}}},
		{name: "missing role", claims: &service.Claims{UserID: uuid.New(), Roles: []string{"user"}}, wantErr: domainerrors.ErrForbidden},
		{name: "not authenticated", wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext("/", "")
			if tt.claims != nil {
				c.Set(claimsKey, tt.claims)
			}

			err := m.RequireRole("business")(okHandler)(c)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
