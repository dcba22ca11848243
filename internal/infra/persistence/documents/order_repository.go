package documents

import (
	"cmp"
	"context"
	"net/url"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/docstore"
)

// UserIDPlaceholder is replaced with the user id in the user orders URL.
const UserIDPlaceholder = "{userID}"

type orderRepository struct {
	coll *docstore.Collection
}

// NewOrderRepository opens the global orders collection.
func NewOrderRepository(ctx context.Context, cols *Collections, url string) (repository.OrderRepository, error) {
	coll, err := cols.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return &orderRepository{coll: coll}, nil
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if err := repo.coll.Create(ctx, fromOrderDomain(order)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create order")
	}

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	return getOrder(ctx, repo.coll, id)
}

func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return listOrders(ctx, repo.coll.Query())
}

func (repo *orderRepository) CountOrdersByStatus(ctx context.Context, status entity.OrderStatus) (int, error) {
	docs, err := collect[orderDoc](ctx, repo.coll.Query().Where("status", "=", string(status)).Get(ctx, "id"))
	if err != nil {
		return 0, domainerrors.NewStoreExecuteError(err, "failed to count orders")
	}

	return len(docs), nil
}

func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) error {
	return updateOrderStatus(ctx, repo.coll, id, status, updatedAt)
}

// userOrderRepository keeps one collection per user, located by expanding
// the placeholder in the URL template.
type userOrderRepository struct {
	cols     *Collections
	template string
}

// NewUserOrderRepository returns the per-user order history store.
func NewUserOrderRepository(cols *Collections, template string) (repository.UserOrderRepository, error) {
	if !strings.Contains(template, UserIDPlaceholder) {
		return nil, errors.Errorf("user orders URL %q must contain %s", template, UserIDPlaceholder)
	}

	return &userOrderRepository{cols: cols, template: template}, nil
}

func (repo *userOrderRepository) collection(ctx context.Context, userID string) (*docstore.Collection, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	coll, err := repo.cols.Open(ctx, strings.ReplaceAll(repo.template, UserIDPlaceholder, url.PathEscape(userID)))
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to open user orders")
	}

	return coll, nil
}

func (repo *userOrderRepository) SaveUserOrder(ctx context.Context, order *entity.Order) error {
	coll, err := repo.collection(ctx, order.UserID)
	if err != nil {
		return err
	}

	for range maxConditionalAttempts {
		stored := &orderDoc{ID: order.ID}
		err := coll.Get(ctx, stored)
		switch {
		case errors.IsNotFound(err):
			err = coll.Create(ctx, fromOrderDomain(order))
		case err != nil:
			return domainerrors.NewStoreExecuteError(err, "failed to load user order for overwrite")
		case stored.UpdatedAt.After(order.UpdatedAt):
			return repository.ErrStaleWrite
		default:
			doc := fromOrderDomain(order)
			doc.DocstoreRevision = stored.DocstoreRevision
			err = coll.Replace(ctx, doc)
		}

		if err == nil {
			return nil
		}
		if !errors.IsAlreadyExists(err) && !errors.IsFailedPrecondition(err) {
			return domainerrors.NewStoreExecuteError(err, "failed to save user order")
		}
	}

	return domainerrors.NewStoreExecuteError(errConcurrentWrites, "failed to save user order")
}

func (repo *userOrderRepository) FindUserOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	coll, err := repo.collection(ctx, userID)
	if err != nil {
		return nil, err
	}

	return getOrder(ctx, coll, orderID)
}

func (repo *userOrderRepository) ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	coll, err := repo.collection(ctx, userID)
	if err != nil {
		return nil, err
	}

	return listOrders(ctx, coll.Query())
}

func (repo *userOrderRepository) UpdateUserOrderStatus(ctx context.Context, userID, orderID string, status entity.OrderStatus, updatedAt time.Time) error {
	coll, err := repo.collection(ctx, userID)
	if err != nil {
		return err
	}

	return updateOrderStatus(ctx, coll, orderID, status, updatedAt)
}

func getOrder(ctx context.Context, coll *docstore.Collection, id string) (*entity.Order, error) {
	doc := &orderDoc{ID: id}
	if err := coll.Get(ctx, doc); err != nil {
		if errors.IsNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get order")
	}

	return doc.toDomain(), nil
}

func listOrders(ctx context.Context, query *docstore.Query) ([]*entity.Order, error) {
	docs, err := collect[orderDoc](ctx, query.Get(ctx))
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(docs))
	for i, doc := range docs {
		orders[i] = doc.toDomain()
	}
	slices.SortFunc(orders, func(a, b *entity.Order) int {
		return cmp.Or(b.OrderDate.Compare(a.OrderDate), strings.Compare(a.ID, b.ID))
	})

	return orders, nil
}

func updateOrderStatus(ctx context.Context, coll *docstore.Collection, id string, status entity.OrderStatus, updatedAt time.Time) error {
	err := coll.Update(ctx, &orderDoc{ID: id}, docstore.Mods{
		"status":    string(status),
		"updatedAt": updatedAt,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update order status")
	}

	return nil
}
