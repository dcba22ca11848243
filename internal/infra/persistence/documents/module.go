package documents

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"

	"go.uber.org/fx"
)

// RepositoryParams defines the inputs for Repositories.
type RepositoryParams struct {
	fx.In

	Config      *config.Config
	Collections *Collections
}

// RepositoriesOut exposes every docstore backed repository to fx.
type RepositoriesOut struct {
	fx.Out

	Products    repository.ProductRepository
	Categories  repository.CategoryRepository
	Carts       repository.CartRepository
	Orders      repository.OrderRepository
	UserOrders  repository.UserOrderRepository
	Users       repository.UserRepository
	Credentials repository.CredentialRepository
	Devices     repository.DeviceRepository
}

// Repositories opens all configured collections.
func Repositories(params RepositoryParams) (RepositoriesOut, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return OpenRepositories(ctx, params.Collections, params.Config.Docstore)
}

// OpenRepositories opens all repositories against cfg.
func OpenRepositories(ctx context.Context, cols *Collections, cfg *config.DocstoreConfig) (out RepositoriesOut, err error) {
	if out.Products, err = NewProductRepository(ctx, cols, cfg.ProductsURL); err != nil {
		return out, err
	}
	if out.Categories, err = NewCategoryRepository(ctx, cols, cfg.CategoriesURL); err != nil {
		return out, err
	}
	if out.Carts, err = NewCartRepository(ctx, cols, cfg.CartsURL); err != nil {
		return out, err
	}
	if out.Orders, err = NewOrderRepository(ctx, cols, cfg.OrdersURL); err != nil {
		return out, err
	}
	if out.UserOrders, err = NewUserOrderRepository(cols, cfg.UserOrdersURL); err != nil {
		return out, err
	}
	if out.Users, err = NewUserRepository(ctx, cols, cfg.UsersURL); err != nil {
		return out, err
	}
	if out.Credentials, err = NewCredentialRepository(ctx, cols, cfg.CredentialsURL); err != nil {
		return out, err
	}
	if out.Devices, err = NewDeviceRepository(ctx, cols, cfg.DevicesURL); err != nil {
		return out, err
	}

	return out, nil
}

// Module wires the collection cache and repositories.
var Module = fx.Module("documents",
	fx.Provide(New, Repositories),
)
