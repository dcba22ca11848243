package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{SessionUC: sessionUC, Logger: slog.Default()}), sessionUC
}

func newRequestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// echoIdentity writes the uid the middleware resolved.
func echoIdentity(c echo.Context) error {
	uid, ok := GetUserID(c)
	if !ok {
		return c.NoContent(http.StatusTeapot)
	}

	return c.String(http.StatusOK, uid)
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(*mockUsecase.MockSessionUsecase)
		wantStatus    int
		wantBody      string
	}{
		{
			name:          "valid token",
			authorization: "Bearer good",
			setup: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.Identity{UID: "user-1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic Zm9vOmJhcg==",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "empty bearer",
			authorization: "Bearer   ",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "rejected token",
			authorization: "Bearer expired",
			setup: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sessionUC := newAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(sessionUC)
			}

			c, rec := newRequestContext(tt.authorization)
			require.NoError(t, m.Authenticate(echoIdentity)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthenticateOrProvisionGuest(t *testing.T) {
	t.Run("provisions a guest without a header", func(t *testing.T) {
		m, sessionUC := newAuthMiddleware(t)
		sessionUC.EXPECT().StartGuestSession(mock.Anything).Return(&entity.Session{
			Identity: &entity.Identity{UID: "guest-1", Anonymous: true},
			Token:    "guest-token",
		}, nil)

		c, rec := newRequestContext("")
		require.NoError(t, m.AuthenticateOrProvisionGuest(echoIdentity)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "guest-1", rec.Body.String())
		assert.Equal(t, "guest-token", rec.Header().Get(constants.HeaderGuestToken))
	})

	t.Run("uses the bearer token when present", func(t *testing.T) {
		m, sessionUC := newAuthMiddleware(t)
		sessionUC.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.Identity{UID: "user-1"}, nil)

		c, rec := newRequestContext("Bearer tok")
		require.NoError(t, m.AuthenticateOrProvisionGuest(echoIdentity)(c))

		assert.Equal(t, "user-1", rec.Body.String())
		assert.Empty(t, rec.Header().Get(constants.HeaderGuestToken))
	})

	t.Run("does not fall back to a guest on a bad token", func(t *testing.T) {
		m, sessionUC := newAuthMiddleware(t)
		sessionUC.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, domainerrors.ErrUnauthorized)

		c, rec := newRequestContext("Bearer bad")
		require.NoError(t, m.AuthenticateOrProvisionGuest(echoIdentity)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		identity   *entity.Identity
		wantStatus int
	}{
		{name: "admin", identity: &entity.Identity{UID: "a", Roles: entity.Roles{entity.RoleAdmin}}, wantStatus: http.StatusOK},
		{name: "customer", identity: &entity.Identity{UID: "c", Roles: entity.Roles{entity.RoleCustomer}}, wantStatus: http.StatusForbidden},
		{name: "no identity", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newAuthMiddleware(t)

			c, rec := newRequestContext("")
			if tt.identity != nil {
				SetIdentity(c, tt.identity)
			}
			require.NoError(t, m.RequireRole(entity.RoleAdmin)(echoIdentity)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
