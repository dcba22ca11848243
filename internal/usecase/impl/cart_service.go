package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultHydrateTimeout = 5 * time.Second
	defaultCartIdleTTL    = 30 * time.Minute
)

// CartServiceParams defines the dependencies of the cart service.
type CartServiceParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Products repository.ProductRepository
	Carts    repository.CartRepository
	Queue    service.WriteQueue
}

type cartService struct {
	products repository.ProductRepository
	carts    repository.CartRepository
	queue    service.WriteQueue
	logger   *slog.Logger
	now      func() time.Time

	hydrateTimeout time.Duration
	idleTTL        time.Duration

	// versions orders cart writes across store instances and restarts. See
	// nextVersion.
	versions atomic.Uint64

	mu     sync.Mutex
	stores map[string]*cartStore

	background sync.WaitGroup
	stop       chan struct{}
}

// NewCartService creates the cart registry. Idle carts are evicted in the
// background while the application runs.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	s := &cartService{
		products:       params.Products,
		carts:          params.Carts,
		queue:          params.Queue,
		logger:         params.Logger.With(slog.String("component", "cart")),
		now:            time.Now,
		hydrateTimeout: defaultHydrateTimeout,
		idleTTL:        defaultCartIdleTTL,
		stores:         make(map[string]*cartStore),
		stop:           make(chan struct{}),
	}
	if cfg := params.Config.Cart; cfg != nil {
		if cfg.HydrateTimeout > 0 {
			s.hydrateTimeout = cfg.HydrateTimeout
		}
		if cfg.IdleTTL > 0 {
			s.idleTTL = cfg.IdleTTL
		}
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.background.Add(1)
			go s.evictLoop()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(s.stop)
			done := make(chan struct{})
			go func() {
				s.background.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return s
}

func (s *cartService) GetCart(ctx context.Context, uid string) (*entity.CartSnapshot, error) {
	if uid == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	return s.store(ctx, uid).snapshot(), nil
}

func (s *cartService) AddToCart(ctx context.Context, uid, productID string) (*entity.CartSnapshot, error) {
	if uid == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	product, err := s.products.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductInactive
	}

	return s.mutate(ctx, uid, func(items entity.CartItems) entity.CartItems {
		return items.Add(product)
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, uid, productID string, quantity int) (*entity.CartSnapshot, error) {
	if uid == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	return s.mutate(ctx, uid, func(items entity.CartItems) entity.CartItems {
		return items.SetQuantity(productID, quantity)
	})
}

func (s *cartService) RemoveFromCart(ctx context.Context, uid, productID string) (*entity.CartSnapshot, error) {
	if uid == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	return s.mutate(ctx, uid, func(items entity.CartItems) entity.CartItems {
		return items.Remove(productID)
	})
}

func (s *cartService) ClearCart(ctx context.Context, uid string) (*entity.CartSnapshot, error) {
	if uid == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	return s.mutate(ctx, uid, func(entity.CartItems) entity.CartItems {
		return entity.CartItems{}
	})
}

func (s *cartService) Checkout(ctx context.Context, uid string, place usecase.CheckoutFunc) error {
	if uid == "" {
		return domainerrors.ErrIdentityRequired
	}

	store, err := s.acquire(ctx, uid)
	if err != nil {
		return err
	}
	defer store.mu.Unlock()

	if err := place(store.items.Clone()); err != nil {
		return err
	}

	store.items = entity.CartItems{}
	s.persistLocked(ctx, store)

	return nil
}

// Evict forgets the identity's cart. A mutation already running finishes
// and queues its write first; requests still holding the store look it up
// again. Writes still queued are not lost: the next hydration starts from
// the newest of them.
func (s *cartService) Evict(uid string) {
	s.mu.Lock()
	store, ok := s.stores[uid]
	s.mu.Unlock()
	if !ok {
		return
	}

	store.retire()

	s.mu.Lock()
	if s.stores[uid] == store {
		delete(s.stores, uid)
	}
	s.mu.Unlock()
}

// store returns the identity's cart, creating it and starting its single
// hydrating read on first access or after the previous one was retired.
func (s *cartService) store(ctx context.Context, uid string) *cartStore {
	now := s.now()

	s.mu.Lock()
	store, ok := s.stores[uid]
	if ok && store.retired() {
		ok = false
	}
	if !ok {
		store = newCartStore(uid, now)
		s.stores[uid] = store
		s.background.Add(1)
		go s.hydrate(context.WithoutCancel(ctx), store)
	}
	s.mu.Unlock()

	if ok {
		store.touch(now)
	}

	return store
}

func (s *cartService) hydrate(ctx context.Context, store *cartStore) {
	defer s.background.Done()

	ctx, cancel := context.WithTimeout(ctx, s.hydrateTimeout)
	defer cancel()

	// A write still queued for the cart is newer than the mirror.
	if write, ok := s.queue.Latest(entity.WriteKindCart, store.uid); ok {
		var cart entity.Cart
		if err := json.Unmarshal(write.Payload, &cart); err == nil {
			store.finishHydration(cart.Items)

			return
		}
	}

	items, err := s.carts.LoadCart(ctx, store.uid)
	if err != nil {
		// An unreadable mirror starts the session with an empty cart.
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to load cart, starting empty",
			slog.String("uid", store.uid),
			slog.Any("error", err),
		)
		items = entity.CartItems{}
	}

	store.finishHydration(items)
}

// mutate applies fn to the hydrated cart and queues the full item list.
func (s *cartService) mutate(ctx context.Context, uid string, fn func(entity.CartItems) entity.CartItems) (*entity.CartSnapshot, error) {
	store, err := s.acquire(ctx, uid)
	if err != nil {
		return nil, err
	}
	defer store.mu.Unlock()

	store.items = fn(store.items)
	s.persistLocked(ctx, store)

	return store.snapshotLocked(), nil
}

// acquire returns the identity's hydrated cart with its lock held. A store
// retired while the caller waited is skipped and the lookup starts over.
func (s *cartService) acquire(ctx context.Context, uid string) (*cartStore, error) {
	for {
		store := s.store(ctx, uid)
		if err := store.wait(ctx); err != nil {
			return nil, domainerrors.ErrCartNotReady.WrapMessage(err.Error())
		}

		store.mu.Lock()
		if !store.retired() {
			return store, nil
		}
		store.mu.Unlock()
	}
}

// persistLocked queues an overwrite of the remote cart. It must run under
// store.mu so versions follow mutation order.
func (s *cartService) persistLocked(ctx context.Context, store *cartStore) {
	payload, err := json.Marshal(entity.Cart{UserID: store.uid, Items: store.items.Clone()})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to encode cart",
			slog.String("uid", store.uid),
			slog.Any("error", err),
		)

		return
	}

	s.queue.Enqueue(entity.PendingWrite{
		Kind:    entity.WriteKindCart,
		Key:     store.uid,
		Payload: payload,
		Version: s.nextVersion(),
	})
}

// nextVersion is strictly increasing within the process and seeded from the
// clock, so writes queued after a restart outrank those parked before it.
func (s *cartService) nextVersion() uint64 {
	for {
		last := s.versions.Load()
		next := max(last+1, uint64(max(s.now().UnixNano(), 0)))
		if s.versions.CompareAndSwap(last, next) {
			return next
		}
	}
}

func (s *cartService) evictLoop() {
	defer s.background.Done()

	ticker := time.NewTicker(max(s.idleTTL/2, time.Second))
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

// evictIdle drops hydrated carts not used within idleTTL. A cart whose lock
// is held is in use and stays.
func (s *cartService) evictIdle() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for uid, store := range s.stores {
		if store.retireIfIdle(cutoff) {
			delete(s.stores, uid)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.Debug("Evicted idle carts", slog.Int("count", evicted))
	}

	return evicted
}
