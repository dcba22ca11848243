package auth

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// ProviderParams defines the dependencies of the identity provider.
type ProviderParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	App         *firebase.App `optional:"true"`
	Credentials repository.CredentialRepository
}

// NewIdentityProvider selects the provider named by auth.provider.
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		if params.App == nil {
			return nil, errors.New("firebase identity provider requires a firebase section")
		}
		client, err := params.App.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Firebase auth client")
		}
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseProvider(client, cfg.MinPassword), nil

	case constants.AuthProviderLocal:
		tokens, err := NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using local identity provider")

		return NewLocalProvider(tokens, NewBcryptHasher(cfg.BcryptCost), params.Credentials, LocalOptions{
			AccessTokenTTL: cfg.AccessTokenTTL,
			GuestTokenTTL:  cfg.GuestTokenTTL,
			MinPassword:    cfg.MinPassword,
		}), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}
