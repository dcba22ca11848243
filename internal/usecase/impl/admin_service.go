package impl

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const productImagePrefix = "products/"

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// AdminServiceParams defines the dependencies of the admin service.
type AdminServiceParams struct {
	fx.In

	Logger     *slog.Logger
	Orders     repository.OrderRepository
	UserOrders repository.UserOrderRepository
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Users      repository.UserRepository
	Publisher  service.EventPublisher
	Storage    service.ObjectStorage `optional:"true"`
	Metrics    *metrics.OrderMetrics `optional:"true"`
}

type adminService struct {
	orders     repository.OrderRepository
	userOrders repository.UserOrderRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	publisher  service.EventPublisher
	storage    service.ObjectStorage
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
	now        func() time.Time
	newID      func() string
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		orders:     params.Orders,
		userOrders: params.UserOrders,
		products:   params.Products,
		categories: params.Categories,
		users:      params.Users,
		publisher:  params.Publisher,
		storage:    params.Storage,
		metrics:    params.Metrics,
		logger:     params.Logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *adminService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *adminService) Dashboard(ctx context.Context) (*entity.DashboardSummary, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	products, err := s.products.ListProducts(ctx, entity.ProductFilter{IncludeInactive: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	customers, err := s.users.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	summary := &entity.DashboardSummary{
		TotalOrders:   len(orders),
		Revenue:       decimal.Zero,
		ProductCount:  len(products),
		CustomerCount: len(customers),
	}
	for _, order := range orders {
		switch order.Status {
		case entity.OrderStatusPending:
			summary.PendingOrders++
		case entity.OrderStatusDelivered:
			summary.Revenue = summary.Revenue.Add(order.TotalAmount)
		}
	}

	return summary, nil
}

func (s *adminService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (s *adminService) PendingOrderCount(ctx context.Context) (int, error) {
	count, err := s.orders.CountOrdersByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pending orders")
	}

	return count, nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, orderID, rawStatus string) (*entity.Order, error) {
	status, ok := entity.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(rawStatus)
	}

	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	logger := s.getLogger(ctx).With(slog.String("order_id", orderID), slog.String("uid", order.UserID))
	prev := order.Status
	updatedAt := s.now().UTC()

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status, updatedAt); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		logger.Error("Failed to update order status", slog.Any("error", err))

		return nil, domainerrors.ErrStatusUpdateFailed.WrapMessage(err.Error())
	}

	// The worker rebuilds the customer's copy from the global record when the
	// event arrives, so a failure here only delays the customer's view.
	if err := s.userOrders.UpdateUserOrderStatus(ctx, order.UserID, orderID, status, updatedAt); err != nil {
		logger.Warn("Failed to update customer's order copy", slog.Any("error", err))
	}

	s.metrics.IncStatusChange(status.String())
	logger.Info("Order status updated", slog.String("from", prev.String()), slog.String("to", status.String()))

	event := &entity.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       entity.OrderEventStatusChanged,
		OrderID:    orderID,
		UserID:     order.UserID,
		Status:     status,
		PrevStatus: prev,
		OccurredAt: updatedAt,
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish status change", slog.Any("error", err))
	}

	updated := order.Clone()
	updated.Status = status
	updated.UpdatedAt = updatedAt

	return updated, nil
}

func (s *adminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.products.ListProducts(ctx, entity.ProductFilter{IncludeInactive: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *adminService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := s.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	product.ID = s.newID()
	product.IsActive = true

	if err := s.products.SaveProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	return product, nil
}

func (s *adminService) UpsertProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if input.ID == "" {
		return s.CreateProduct(ctx, input)
	}

	product, err := s.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	product.ID = input.ID
	product.IsActive = true

	existing, err := s.products.FindProductByID(ctx, input.ID)
	switch {
	case err == nil:
		product.IsActive = existing.IsActive
	case !errors.Is(err, repository.ErrProductNotFound):
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := s.products.SaveProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	return product, nil
}

// buildProduct validates input. Optional fields stay nil when absent.
func (s *adminService) buildProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if !input.RegularPrice.IsPositive() {
		return nil, domainerrors.ErrInvalidPrice
	}
	if input.SalePrice != nil && !input.SalePrice.IsPositive() {
		return nil, domainerrors.ErrInvalidPrice
	}
	if input.StockQuantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock quantity cannot be negative")
	}

	if _, err := s.categories.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	var variants *string
	if input.Variants != nil && strings.TrimSpace(*input.Variants) != "" {
		v := strings.TrimSpace(*input.Variants)
		variants = &v
	}

	return &entity.Product{
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		RegularPrice:  input.RegularPrice,
		SalePrice:     input.SalePrice,
		StockQuantity: input.StockQuantity,
		Variants:      variants,
		CategoryID:    input.CategoryID,
		ImageURL:      input.ImageURL,
		ImageHint:     input.ImageHint,
	}, nil
}

func (s *adminService) SetProductActive(ctx context.Context, id string, active bool) error {
	if err := s.products.SetProductActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (s *adminService) UpsertCategory(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = s.newID()
	}
	if strings.TrimSpace(category.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	if err := s.categories.SaveCategory(ctx, category); err != nil {
		return errors.Wrap(err, "failed to save category")
	}

	return nil
}

func (s *adminService) UploadProductImage(ctx context.Context, upload *usecase.ImageUpload) (*service.UploadResult, error) {
	if s.storage == nil {
		return nil, domainerrors.ErrStorageUnavailable
	}

	contentType, _, err := mime.ParseMediaType(upload.ContentType)
	if err != nil {
		return nil, domainerrors.ErrUnsupportedImage
	}
	defaultExt, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedImage
	}

	ext := strings.ToLower(path.Ext(upload.Filename))
	if !slices.Contains(imageExtensions(contentType), ext) {
		ext = defaultExt
	}
	key := productImagePrefix + s.newID() + ext

	logger := s.getLogger(ctx).With(slog.String("key", key))
	result, err := s.storage.Upload(ctx, &service.UploadInput{
		Key:         key,
		ContentType: contentType,
		Size:        upload.Size,
		Body:        upload.Body,
		OnProgress: func(p service.UploadProgress) {
			logger.Info("Image upload progress", slog.Int("percent", p.Percentage), slog.Int64("bytes", p.Written))
		},
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// imageExtensions lists the file extensions accepted for contentType.
func imageExtensions(contentType string) []string {
	if contentType == "image/jpeg" {
		return []string{".jpg", ".jpeg"}
	}

	return []string{allowedImageTypes[contentType]}
}

func (s *adminService) ListCustomers(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := s.users.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return profiles, nil
}
