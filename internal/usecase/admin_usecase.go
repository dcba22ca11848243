package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
)

// ProductInput is a new or replacement catalog product.
type ProductInput struct {
	ID            string
	Title         string
	Description   string
	RegularPrice  decimal.Decimal
	SalePrice     *decimal.Decimal
	StockQuantity int
	Variants      *string
	CategoryID    string
	ImageURL      string
	ImageHint     string
}

// ImageUpload is a product image received from an admin.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AdminUsecase backs the admin console and shopctl.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*entity.DashboardSummary, error)

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	PendingOrderCount(ctx context.Context) (int, error)

	// UpdateOrderStatus sets any valid status on an order. The global record
	// is updated first and its failure is returned; the customer's copy is
	// updated best effort and an order.status_changed event is published.
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*entity.Order, error)

	// ListProducts returns all products including inactive ones.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateProduct adds an active product under a new id.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpsertProduct writes a product under input.ID, keeping its active flag
	// if it already exists.
	UpsertProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	SetProductActive(ctx context.Context, id string, active bool) error

	DeleteProduct(ctx context.Context, id string) error

	UpsertCategory(ctx context.Context, category *entity.Category) error

	// UploadProductImage stores an image and returns its public URL.
	UploadProductImage(ctx context.Context, upload *ImageUpload) (*service.UploadResult, error)

	// ListCustomers returns customer profiles sorted by first name.
	ListCustomers(ctx context.Context) ([]*entity.UserProfile, error)
}
