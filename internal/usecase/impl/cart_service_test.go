package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type cartServiceFixtures struct {
	service  *cartService
	products *mockRepo.MockProductRepository
	carts    *mockRepo.MockCartRepository
	queue    *recordingQueue
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	products := mockRepo.NewMockProductRepository(t)
	carts := mockRepo.NewMockCartRepository(t)
	queue := &recordingQueue{}
	lc := fxtest.NewLifecycle(t)

	svc := NewCartService(CartServiceParams{
		Lifecycle: lc,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
		Products:  products,
		Carts:     carts,
		Queue:     queue,
	})
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return cartServiceFixtures{
		service:  svc.(*cartService),
		products: products,
		carts:    carts,
		queue:    queue,
	}
}

// withEmptyRemote makes the first load for uid return no items.
func (f cartServiceFixtures) withEmptyRemote(uid string) {
	f.carts.EXPECT().LoadCart(mock.Anything, uid).Return(entity.CartItems{}, nil).Once()
}

func TestCartService_RepeatedAddAggregates(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	p := activeProduct("p1", "100")

	f.withEmptyRemote("uid-1")
	f.products.EXPECT().FindProductByID(ctx, "p1").Return(p, nil).Times(5)

	var snapshot *entity.CartSnapshot
	var err error
	for range 5 {
		snapshot, err = f.service.AddToCart(ctx, "uid-1", "p1")
		require.NoError(t, err)
	}

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 5, snapshot.Items[0].Quantity)
	assert.True(t, price("500").Equal(snapshot.Total))
	assert.Equal(t, 5, snapshot.ItemCount)

	writes := f.queue.ofKind(entity.WriteKindCart)
	require.Len(t, writes, 5)
	for i := 1; i < len(writes); i++ {
		assert.Greater(t, writes[i].Version, writes[i-1].Version)
	}
	last := decodeCart(t, writes[4])
	assert.Equal(t, "uid-1", last.UserID)
	require.Len(t, last.Items, 1)
	assert.Equal(t, 5, last.Items[0].Quantity)
}

func TestCartService_NonPositiveQuantityRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		f := createTestCartService(t)
		ctx := context.Background()

		f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{
			{ProductID: "p1", Price: price("10"), Quantity: 2},
			{ProductID: "p2", Price: price("20"), Quantity: 1},
		}, nil).Once()

		snapshot, err := f.service.UpdateQuantity(ctx, "uid", "p1", quantity)
		require.NoError(t, err)

		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, "p2", snapshot.Items[0].ProductID)
	}
}

func TestCartService_UpdateQuantityHasNoUpperBound(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{{ProductID: "p1", Price: price("1"), Quantity: 1}}, nil).Once()

	snapshot, err := f.service.UpdateQuantity(ctx, "uid", "p1", 10_000)
	require.NoError(t, err)
	assert.Equal(t, 10_000, snapshot.Items[0].Quantity)
}

func TestCartService_ClearCartPersistsEmptyList(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{
		{ProductID: "p1", Price: price("10"), Quantity: 3},
	}, nil).Once()

	snapshot, err := f.service.ClearCart(ctx, "uid")
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
	assert.True(t, snapshot.Total.IsZero())

	writes := f.queue.ofKind(entity.WriteKindCart)
	require.Len(t, writes, 1)
	assert.Empty(t, decodeCart(t, writes[0]).Items)
	assert.JSONEq(t, `{"userId":"uid","items":[]}`, string(writes[0].Payload))
}

func TestCartService_SnapshotReportsLoadingUntilHydrated(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	release := make(chan struct{})

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").
		RunAndReturn(func(context.Context, string) (entity.CartItems, error) {
			<-release

			return entity.CartItems{{ProductID: "p1", Price: price("10"), Quantity: 2}}, nil
		}).Once()

	snapshot, err := f.service.GetCart(ctx, "uid")
	require.NoError(t, err)
	assert.True(t, snapshot.Loading)
	assert.Empty(t, snapshot.Items)

	// A second access does not start another load.
	snapshot, err = f.service.GetCart(ctx, "uid")
	require.NoError(t, err)
	assert.True(t, snapshot.Loading)

	close(release)

	require.Eventually(t, func() bool {
		snapshot, _ = f.service.GetCart(ctx, "uid")

		return !snapshot.Loading
	}, time.Second, 5*time.Millisecond)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Empty(t, f.queue.all(), "hydration must not write back")
}

func TestCartService_HydrationFailureStartsEmptyWithoutRetry(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(nil, assert.AnError).Once()

	require.Eventually(t, func() bool {
		snapshot, err := f.service.GetCart(ctx, "uid")

		return err == nil && !snapshot.Loading
	}, time.Second, 5*time.Millisecond)

	snapshot, err := f.service.GetCart(ctx, "uid")
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
}

func TestCartService_MutationWaitsForHydration(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	release := make(chan struct{})
	p2 := activeProduct("p2", "20")

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").
		RunAndReturn(func(context.Context, string) (entity.CartItems, error) {
			<-release

			return entity.CartItems{{ProductID: "p1", Price: price("10"), Quantity: 1}}, nil
		}).Once()
	f.products.EXPECT().FindProductByID(ctx, "p2").Return(p2, nil)

	_, err := f.service.GetCart(ctx, "uid")
	require.NoError(t, err)

	done := make(chan *entity.CartSnapshot)
	go func() {
		snapshot, addErr := f.service.AddToCart(ctx, "uid", "p2")
		assert.NoError(t, addErr)
		done <- snapshot
	}()

	select {
	case <-done:
		t.Fatal("mutation applied before hydration finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	snapshot := <-done
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, []string{"p1", "p2"}, []string{snapshot.Items[0].ProductID, snapshot.Items[1].ProductID})
}

func TestCartService_MutationGivesUpWhenContextEnds(t *testing.T) {
	f := createTestCartService(t)
	release := make(chan struct{})
	defer close(release)

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").
		RunAndReturn(func(context.Context, string) (entity.CartItems, error) {
			<-release

			return entity.CartItems{}, nil
		}).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.service.RemoveFromCart(ctx, "uid", "p1")
	assert.ErrorIs(t, err, domainerrors.ErrCartNotReady)
	assert.Empty(t, f.queue.all())
}

func TestCartService_AddRejectsUnknownAndInactiveProducts(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	inactive := activeProduct("p2", "10")
	inactive.IsActive = false

	f.products.EXPECT().FindProductByID(ctx, "missing").Return(nil, repository.ErrProductNotFound)
	f.products.EXPECT().FindProductByID(ctx, "p2").Return(inactive, nil)

	_, err := f.service.AddToCart(ctx, "uid", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = f.service.AddToCart(ctx, "uid", "p2")
	assert.ErrorIs(t, err, domainerrors.ErrProductInactive)

	assert.Empty(t, f.queue.all())
}

func TestCartService_RequiresIdentity(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	_, err := f.service.GetCart(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)

	_, err = f.service.ClearCart(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)

	err = f.service.Checkout(ctx, "", func(entity.CartItems) error { return nil })
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
}

func TestCartService_CheckoutClearsOnlyOnSuccess(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	lines := entity.CartItems{{ProductID: "p1", Price: price("100"), Quantity: 2}}

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(lines, nil).Once()

	var seen entity.CartItems
	err := f.service.Checkout(ctx, "uid", func(items entity.CartItems) error {
		seen = items

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, lines, seen)

	snapshot, err := f.service.GetCart(ctx, "uid")
	require.NoError(t, err)
	assert.Equal(t, lines, snapshot.Items)
	assert.Empty(t, f.queue.all())

	err = f.service.Checkout(ctx, "uid", func(entity.CartItems) error { return nil })
	require.NoError(t, err)

	snapshot, err = f.service.GetCart(ctx, "uid")
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
	writes := f.queue.ofKind(entity.WriteKindCart)
	require.Len(t, writes, 1)
	assert.Empty(t, decodeCart(t, writes[0]).Items)
}

func TestCartService_CheckoutItemsAreCopies(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{{ProductID: "p1", Price: price("1"), Quantity: 1}}, nil).Once()

	err := f.service.Checkout(ctx, "uid", func(items entity.CartItems) error {
		items[0].Quantity = 99

		return assert.AnError
	})
	require.Error(t, err)

	snapshot, err := f.service.GetCart(ctx, "uid")
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
}

func TestCartService_EvictIdleReloads(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return now }

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{}, nil).Twice()

	require.Eventually(t, func() bool {
		snapshot, _ := f.service.GetCart(ctx, "uid")

		return !snapshot.Loading
	}, time.Second, 5*time.Millisecond)

	assert.Zero(t, f.service.evictIdle())

	now = now.Add(f.service.idleTTL + time.Minute)
	assert.Equal(t, 1, f.service.evictIdle())

	snapshot, err := f.service.GetCart(ctx, "uid")
	require.NoError(t, err)
	assert.True(t, snapshot.Loading)

	require.Eventually(t, func() bool {
		snapshot, _ = f.service.GetCart(ctx, "uid")

		return !snapshot.Loading
	}, time.Second, 5*time.Millisecond)
}

func TestCartService_EvictForgetsCart(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{}, nil).Twice()

	_, err := f.service.ClearCart(ctx, "uid")
	require.NoError(t, err)

	f.service.Evict("uid")

	_, err = f.service.ClearCart(ctx, "uid")
	require.NoError(t, err)
}

func TestCartService_EvictRehydratesFromQueuedWrite(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	f.queue.unapplied = true

	f.withEmptyRemote("uid")
	f.products.EXPECT().FindProductByID(ctx, "p1").Return(activeProduct("p1", "10"), nil).Once()

	_, err := f.service.AddToCart(ctx, "uid", "p1")
	require.NoError(t, err)

	// The add is still queued, so the mirror holds the empty cart.
	f.service.Evict("uid")

	var snapshot *entity.CartSnapshot
	require.Eventually(t, func() bool {
		snapshot, err = f.service.GetCart(ctx, "uid")

		return err == nil && !snapshot.Loading
	}, time.Second, 5*time.Millisecond)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "p1", snapshot.Items[0].ProductID)
}

func TestCartService_RetiredStoreTakesNoMutations(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{}, nil).Once()
	f.carts.EXPECT().LoadCart(mock.Anything, "uid").Return(entity.CartItems{{ProductID: "p9", Price: price("1"), Quantity: 1}}, nil).Once()
	f.products.EXPECT().FindProductByID(ctx, "p1").Return(activeProduct("p1", "10"), nil).Once()

	old := f.service.store(ctx, "uid")
	require.NoError(t, old.wait(ctx))

	f.service.Evict("uid")
	assert.True(t, old.retired())

	snapshot, err := f.service.AddToCart(ctx, "uid", "p1")
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, []string{"p9", "p1"}, []string{snapshot.Items[0].ProductID, snapshot.Items[1].ProductID})
	assert.Empty(t, old.snapshot().Items)
}

func TestCartService_EvictWaitsForRunningMutation(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	f.withEmptyRemote("uid")

	store, err := f.service.acquire(ctx, "uid")
	require.NoError(t, err)

	evicted := make(chan struct{})
	go func() {
		f.service.Evict("uid")
		close(evicted)
	}()

	select {
	case <-evicted:
		t.Fatal("evict returned while a mutation held the cart")
	case <-time.After(50 * time.Millisecond):
	}

	store.mu.Unlock()
	<-evicted
	assert.True(t, store.retired())
}

func TestCartService_EvictIdleSkipsBusyCart(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return now }

	f.withEmptyRemote("uid")

	store, err := f.service.acquire(ctx, "uid")
	require.NoError(t, err)

	now = now.Add(f.service.idleTTL + time.Minute)
	assert.Zero(t, f.service.evictIdle())
	store.mu.Unlock()

	assert.Equal(t, 1, f.service.evictIdle())
	assert.True(t, store.retired())
}

func TestCartService_VersionsOutrankEarlierProcess(t *testing.T) {
	f := createTestCartService(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return now }

	first := f.service.nextVersion()
	assert.Equal(t, uint64(now.UnixNano()), first)
	assert.Equal(t, first+1, f.service.nextVersion())

	// A restarted process starts from the clock, not from zero.
	restarted := createTestCartService(t)
	later := now.Add(time.Second)
	restarted.service.now = func() time.Time { return later }
	assert.Greater(t, restarted.service.nextVersion(), first+1)
}

var _ usecase.CartUsecase = (*cartService)(nil)
