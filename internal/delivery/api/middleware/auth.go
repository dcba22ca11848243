package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contextKeyIdentity = "identity"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthMiddleware resolves bearer tokens to identities.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		identity, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		SetIdentity(c, identity)

		return next(c)
	}
}

// AuthenticateOrProvisionGuest behaves like Authenticate when an
// Authorization header is sent. Without one it provisions a guest identity
// and returns the new token in the X-Guest-Token response header.
func (m *AuthMiddleware) AuthenticateOrProvisionGuest(next echo.HandlerFunc) echo.HandlerFunc {
	authenticated := m.Authenticate(next)

	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) != "" {
			return authenticated(c)
		}

		session, err := m.sessionUC.StartGuestSession(c.Request().Context())
		if err != nil {
			return response.HandleAppError(c, err)
		}
		c.Response().Header().Set(constants.HeaderGuestToken, session.Token)
		SetIdentity(c, session.Identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has role.
// It must be used AFTER one of the authenticating middlewares.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if !identity.HasRole(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetIdentity returns the identity set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}

// GetUserID returns the caller's uid.
func GetUserID(c echo.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok || identity.UID == "" {
		return "", false
	}

	return identity.UID, true
}

// SetIdentity attaches identity to the request and tags its logger with the uid.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(contextKeyIdentity, identity)

	ctx := c.Request().Context()
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("uid", identity.UID)))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)

	return token, found && token != ""
}
