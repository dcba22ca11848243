// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// SessionServiceParams defines the dependencies of the session service.
type SessionServiceParams struct {
	fx.In

	Logger   *slog.Logger
	Provider service.IdentityProvider
	Users    repository.UserRepository
	Carts    usecase.CartUsecase
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	provider service.IdentityProvider
	users    repository.UserRepository
	carts    usecase.CartUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		provider: params.Provider,
		users:    params.Users,
		carts:    params.Carts,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) StartGuestSession(ctx context.Context) (*entity.Session, error) {
	session, err := srv.provider.ProvisionGuest(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to provision guest")
	}
	srv.log(ctx).Debug("Guest session started", slog.String("uid", session.Identity.UID))

	return session, nil
}

// SignUp creates the identity first; the profile follows. A profile write
// failure leaves a usable identity, so it is reported but the session is
// still returned.
func (srv *sessionService) SignUp(ctx context.Context, input service.SignUpInput) (*entity.Session, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if input.FirstName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("first name is required")
	}

	session, err := srv.provider.SignUp(ctx, input)
	if err != nil {
		return nil, err
	}

	profile := &entity.UserProfile{
		ID:        session.Identity.UID,
		Email:     session.Identity.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: srv.now().UTC(),
	}
	logger := srv.log(ctx).With(slog.String("uid", profile.ID))
	if err := srv.users.SaveProfile(ctx, profile); err != nil {
		logger.Error("Failed to save profile after sign-up", slog.Any("error", err))
	} else {
		logger.Info("Customer signed up")
	}

	return session, nil
}

func (srv *sessionService) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.provider.SignIn(ctx, email, password)
}

// SignOut drops the in-memory cart first so a later sign-in hydrates from
// the store.
func (srv *sessionService) SignOut(ctx context.Context, identity *entity.Identity) error {
	if identity == nil || identity.UID == "" {
		return domainerrors.ErrIdentityRequired
	}

	srv.carts.Evict(identity.UID)

	if err := srv.provider.SignOut(ctx, identity.UID); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}
	srv.log(ctx).Debug("Signed out", slog.String("uid", identity.UID))

	return nil
}

func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return srv.provider.VerifyToken(ctx, token)
}

func (srv *sessionService) GrantRole(ctx context.Context, uid string, role entity.Role) error {
	if uid == "" {
		return domainerrors.ErrValidationFailed.WithDetails("uid is required")
	}
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role))
	}

	if err := srv.provider.GrantRole(ctx, uid, role); err != nil {
		return err
	}
	srv.log(ctx).Info("Role granted", slog.String("uid", uid), slog.String("role", string(role)))

	return nil
}

func (srv *sessionService) Profile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.users.FindProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
