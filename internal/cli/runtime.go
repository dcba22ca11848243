package cli

import (
	"context"
	"io"
	"os"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/firebase"
	"storefront/internal/infra/invoice"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/persistence/documents"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/redis"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/writebehind"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

// DeadLetterReplayer re-queues parked background writes.
type DeadLetterReplayer interface {
	ReplayDeadLetters(ctx context.Context) (int, error)
}

// Runtime is the set of services commands operate on.
type Runtime struct {
	Admin       usecase.AdminUsecase
	Orders      usecase.OrderUsecase
	Sessions    usecase.SessionUsecase
	DeadLetters repository.DeadLetterRepository
	Replayer    DeadLetterReplayer
}

// Opener starts a Runtime and returns the function that stops it.
type Opener func(ctx context.Context) (*Runtime, func(context.Context) error, error)

type runtimeParams struct {
	fx.In

	Admin       usecase.AdminUsecase
	Orders      usecase.OrderUsecase
	Sessions    usecase.SessionUsecase
	DeadLetters repository.DeadLetterRepository
	Dispatcher  *writebehind.Dispatcher
}

// OpenRuntime wires the same services as the API server, without any
// listeners. Logs go to stderr so command output stays clean.
func OpenRuntime(ctx context.Context) (*Runtime, func(context.Context) error, error) {
	var rt Runtime

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"logOutput"`),
			),
			gormstore.New,
			gormstore.NewDeadLetterRepository,
			firebase.New,
			auth.NewIdentityProvider,
			redis.New,
			storage.New,
			qrcode.New,
			invoice.New,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewAdminService,
			impl.NewSessionService,
		),
		metrics.Module,
		writebehind.Module,
		pubsub.Module,
		documents.Module,
		fx.Invoke(func(p runtimeParams) {
			rt = Runtime{
				Admin:       p.Admin,
				Orders:      p.Orders,
				Sessions:    p.Sessions,
				DeadLetters: p.DeadLetters,
				Replayer:    p.Dispatcher,
			}
		}),
	)

	if err := app.Start(ctx); err != nil {
		return nil, nil, err
	}

	return &rt, app.Stop, nil
}
