// Package writebehind applies full-document overwrites in the background.
//
// Writes are coalesced per document: while a write for a key waits, a newer
// one replaces it. At most one write per key is in flight. Handlers compare
// the write's version against the stored document and refuse older ones
// with repository.ErrStaleWrite, so a replayed dead letter cannot undo a
// later write even from another process. Writes that exhaust their retries
// are parked in the dead letter repository with their version.
package writebehind

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	"go.uber.org/fx"
)

const replayBatchSize = 100

// Handler applies one write. It must be idempotent.
type Handler func(ctx context.Context, write entity.PendingWrite) error

type writeKey struct {
	kind entity.WriteKind
	key  string
}

// Dispatcher is the write-behind queue.
type Dispatcher struct {
	cfg         config.WriteBehindConfig
	logger      *slog.Logger
	deadLetters repository.DeadLetterRepository
	metrics     *metrics.WriteBehindMetrics
	now         func() time.Time

	handlersMu sync.RWMutex
	handlers   map[entity.WriteKind]Handler

	mu       sync.Mutex
	pending  map[writeKey]entity.PendingWrite
	ready    []writeKey
	inflight map[writeKey]entity.PendingWrite
	closed   bool
	notify   chan struct{}
	stopping chan struct{}

	cancel  context.CancelFunc
	workers sync.WaitGroup
	drained chan struct{}
}

// Params defines the dependencies of the dispatcher.
type Params struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	DeadLetters repository.DeadLetterRepository
	Metrics     *metrics.WriteBehindMetrics `optional:"true"`
}

// New creates a dispatcher started and drained with the application.
func New(params Params) *Dispatcher {
	d := NewDispatcher(*params.Config.WriteBehind, params.Logger, params.DeadLetters, params.Metrics)

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})

	return d
}

// NewDispatcher creates a stopped dispatcher.
func NewDispatcher(cfg config.WriteBehindConfig, logger *slog.Logger, deadLetters repository.DeadLetterRepository, m *metrics.WriteBehindMetrics) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	return &Dispatcher{
		cfg:         cfg,
		logger:      logger.With(slog.String("component", "writebehind")),
		deadLetters: deadLetters,
		metrics:     m,
		now:         time.Now,
		handlers:    make(map[entity.WriteKind]Handler),
		pending:     make(map[writeKey]entity.PendingWrite),
		inflight:    make(map[writeKey]entity.PendingWrite),
		notify:      make(chan struct{}, 1),
		stopping:    make(chan struct{}),
		drained:     make(chan struct{}),
	}
}

// Register installs the handler for kind.
func (d *Dispatcher) Register(kind entity.WriteKind, handler Handler) {
	d.handlersMu.Lock()
	defer d.handlersMu.Unlock()

	d.handlers[kind] = handler
}

func (d *Dispatcher) handler(kind entity.WriteKind) (Handler, bool) {
	d.handlersMu.RLock()
	defer d.handlersMu.RUnlock()

	h, ok := d.handlers[kind]

	return h, ok
}

// Enqueue schedules write, replacing any queued write for the same document.
// A write older than the one queued or in flight for the document is
// dropped.
func (d *Dispatcher) Enqueue(write entity.PendingWrite) {
	if write.QueuedAt.IsZero() {
		write.QueuedAt = d.now()
	}
	k := writeKey{kind: write.Kind, key: write.Key}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("Write queued after shutdown, parking as dead letter",
			slog.String("kind", string(write.Kind)), slog.String("key", write.Key))
		d.park(context.Background(), write, 0, errors.New("dispatcher stopped"))

		return
	}

	queued, isQueued := d.pending[k]
	running, isRunning := d.inflight[k]
	if (isQueued && queued.Version > write.Version) || (isRunning && running.Version > write.Version) {
		d.mu.Unlock()
		d.metrics.IncWrite(string(write.Kind), metrics.ResultSkipped)

		return
	}
	if !isQueued && !isRunning {
		d.ready = append(d.ready, k)
	}
	d.pending[k] = write
	d.metrics.SetDepth(len(d.pending))
	d.mu.Unlock()

	d.wake()
}

func (d *Dispatcher) wake() {
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

// Start launches the workers and the periodic dead letter replay.
func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.mu.Lock()
	d.cancel = cancel
	d.mu.Unlock()

	for range d.cfg.Workers {
		d.workers.Add(1)
		go func() {
			defer d.workers.Done()
			d.work(ctx)
		}()
	}

	go func() {
		d.workers.Wait()
		close(d.drained)
	}()

	if d.cfg.ReplayInterval > 0 {
		go d.replayLoop(ctx)
	}
}

// Stop refuses new writes and waits for the queue to drain. Whatever is
// still queued when ctx or the drain timeout expires is parked as a dead
// letter.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()

		return nil
	}
	d.closed = true
	started := d.cancel != nil
	d.mu.Unlock()
	close(d.stopping)

	if started {
		if d.cfg.DrainTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.cfg.DrainTimeout)
			defer cancel()
		}

		select {
		case <-d.drained:
		case <-ctx.Done():
			d.logger.Warn("Write-behind drain timed out")
		}
		d.cancel()
		<-d.drained
	}

	d.mu.Lock()
	leftovers := make([]entity.PendingWrite, 0, len(d.pending))
	for _, write := range d.pending {
		leftovers = append(leftovers, write)
	}
	clear(d.pending)
	d.ready = nil
	d.mu.Unlock()

	var err error
	for _, write := range leftovers {
		err = errors.Append(err, d.park(context.Background(), write, 0, errors.New("not written before shutdown")))
	}

	return err
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		write, ok := d.next(ctx)
		if !ok {
			return
		}
		d.apply(ctx, write)
		d.finish(writeKey{kind: write.Kind, key: write.Key})
	}
}

// next blocks until a document is ready. It returns false once the
// dispatcher is stopped and the queue is empty, or ctx is done.
func (d *Dispatcher) next(ctx context.Context) (entity.PendingWrite, bool) {
	for {
		if ctx.Err() != nil {
			return entity.PendingWrite{}, false
		}

		d.mu.Lock()
		if len(d.ready) > 0 {
			k := d.ready[0]
			d.ready = d.ready[1:]
			write := d.pending[k]
			delete(d.pending, k)
			d.inflight[k] = write
			more := len(d.ready) > 0
			d.metrics.SetDepth(len(d.pending))
			d.mu.Unlock()

			if more {
				d.wake()
			}

			return write, true
		}
		idle := d.closed && len(d.inflight) == 0 && len(d.pending) == 0
		closed := d.closed
		d.mu.Unlock()

		if idle {
			return entity.PendingWrite{}, false
		}

		if closed {
			// Another worker holds a key that may be re-queued.
			if err := sleep(ctx, 10*time.Millisecond); err != nil {
				return entity.PendingWrite{}, false
			}

			continue
		}

		select {
		case <-ctx.Done():
			return entity.PendingWrite{}, false
		case <-d.notify:
		case <-d.stopping:
		}
	}
}

func (d *Dispatcher) finish(k writeKey) {
	d.mu.Lock()
	delete(d.inflight, k)
	_, requeue := d.pending[k]
	if requeue {
		d.ready = append(d.ready, k)
	}
	closed := d.closed
	d.mu.Unlock()

	if requeue && !closed {
		d.wake()
	}
}

// Latest returns the newest write for the document that has not finished
// yet, queued or in flight.
func (d *Dispatcher) Latest(kind entity.WriteKind, key string) (entity.PendingWrite, bool) {
	k := writeKey{kind: kind, key: key}

	d.mu.Lock()
	defer d.mu.Unlock()

	if write, ok := d.pending[k]; ok {
		return write, true
	}
	write, ok := d.inflight[k]

	return write, ok
}

func (d *Dispatcher) superseded(write entity.PendingWrite) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.pending[writeKey{kind: write.Kind, key: write.Key}]

	return ok
}

func (d *Dispatcher) apply(ctx context.Context, write entity.PendingWrite) {
	kind := string(write.Kind)
	logger := d.logger.With(slog.String("kind", kind), slog.String("key", write.Key), slog.Uint64("version", write.Version))

	handler, ok := d.handler(write.Kind)
	if !ok {
		logger.Error("No handler registered for write kind")
		_ = d.park(ctx, write, 0, errors.Errorf("no handler for %s", kind))

		return
	}

	var (
		lastErr error
		backoff time.Duration
	)
	for attempt := 1; attempt <= d.cfg.MaxAttempts; attempt++ {
		lastErr = d.attempt(ctx, handler, write)
		if lastErr == nil {
			d.metrics.IncWrite(kind, metrics.ResultApplied)

			return
		}
		if errors.Is(lastErr, repository.ErrStaleWrite) {
			logger.Debug("Stored document is newer, write dropped")
			d.metrics.IncWrite(kind, metrics.ResultSkipped)

			return
		}

		if d.superseded(write) {
			logger.Debug("Write failed but a newer one is queued", slog.Any("error", lastErr))
			d.metrics.IncWrite(kind, metrics.ResultSuperseded)

			return
		}
		if attempt == d.cfg.MaxAttempts {
			break
		}

		d.metrics.IncRetry(kind)
		backoff = nextBackoff(backoff, d.cfg.InitialBackoff, d.cfg.MaxBackoff)
		logger.Warn("Write failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.Any("error", lastErr),
		)
		if err := sleep(ctx, withJitter(backoff)); err != nil {
			lastErr = errors.Append(lastErr, err)
			_ = d.park(context.Background(), write, attempt, lastErr)

			return
		}
	}

	logger.Error("Write exhausted retries", slog.Int("attempts", d.cfg.MaxAttempts), slog.Any("error", lastErr))
	_ = d.park(ctx, write, d.cfg.MaxAttempts, lastErr)
}

func (d *Dispatcher) attempt(ctx context.Context, handler Handler, write entity.PendingWrite) error {
	if d.cfg.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.WriteTimeout)
		defer cancel()
	}

	started := time.Now()
	err := handler(ctx, write)
	d.metrics.ObserveWrite(string(write.Kind), time.Since(started).Seconds())

	return err
}

func (d *Dispatcher) park(ctx context.Context, write entity.PendingWrite, attempts int, cause error) error {
	letter := &entity.DeadLetter{
		Kind:     write.Kind,
		Key:      write.Key,
		Payload:  write.Payload,
		Version:  write.Version,
		Attempts: attempts,
		FailedAt: d.now().UTC(),
	}
	if cause != nil {
		letter.LastError = cause.Error()
	}

	d.metrics.IncWrite(string(write.Kind), metrics.ResultDead)
	if err := d.deadLetters.InsertDeadLetter(context.WithoutCancel(ctx), letter); err != nil {
		d.logger.Error("Failed to park dead letter, write lost",
			slog.String("kind", string(write.Kind)),
			slog.String("key", write.Key),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to park dead letter")
	}

	return nil
}

// ReplayDeadLetters re-queues parked writes with their original version and
// removes them from the dead letter store. A letter older than a write
// already queued or in flight for the document is dropped here; one older
// than the stored document is refused by the handler. It returns the number
// re-queued.
func (d *Dispatcher) ReplayDeadLetters(ctx context.Context) (int, error) {
	letters, err := d.deadLetters.ListDeadLetters(ctx, replayBatchSize)
	if err != nil {
		return 0, err
	}

	replayed := 0
	for _, letter := range letters {
		if err := d.deadLetters.DeleteDeadLetter(ctx, letter.ID); err != nil {
			return replayed, err
		}
		if latest, ok := d.Latest(letter.Kind, letter.Key); ok && latest.Version >= letter.Version {
			d.logger.Info("Dropping stale dead letter",
				slog.String("kind", string(letter.Kind)),
				slog.String("key", letter.Key),
				slog.Uint64("version", letter.Version),
			)

			continue
		}

		d.Enqueue(entity.PendingWrite{
			Kind:    letter.Kind,
			Key:     letter.Key,
			Payload: letter.Payload,
			Version: letter.Version,
		})
		replayed++
	}

	return replayed, nil
}

func (d *Dispatcher) replayLoop(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.ReplayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.mu.Lock()
			closed := d.closed
			d.mu.Unlock()
			if closed {
				return
			}

			n, err := d.ReplayDeadLetters(ctx)
			if err != nil {
				d.logger.Warn("Dead letter replay failed", slog.Any("error", err))

				continue
			}
			if n > 0 {
				d.logger.Info("Replayed dead letters", slog.Int("count", n))
			}
		}
	}
}
