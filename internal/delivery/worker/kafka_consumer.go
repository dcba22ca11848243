package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultRetryDelay = 500 * time.Millisecond
	maxRetryDelay     = 30 * time.Second
	defaultMaxRetries = 8
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer feeds order events from a consumer group into the same
// processor the push endpoint uses. A message is committed once it is
// handled, dropped, or out of retries.
type kafkaConsumer struct {
	reader     messageReader
	processor  *handler.EventProcessor
	logger     *slog.Logger
	retryDelay time.Duration
	maxRetries int
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.EventProcessor
}

// NewKafkaConsumer returns a consumer delivery, or an idle one when events
// are not carried over Kafka.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return idleDelivery{}, nil
	}
	if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
		return nil, errors.New("kafka consumer requires pubsub.kafkaBrokers and pubsub.kafkaTopic")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		GroupID:  params.Cfg.Worker.KafkaGroupID,
		Topic:    cfg.KafkaTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	consumer := newKafkaConsumer(reader, params.Processor, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Kafka consumer")

			return errors.WithStack(reader.Close())
		},
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, processor *handler.EventProcessor, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:     reader,
		processor:  processor,
		logger:     logger,
		retryDelay: defaultRetryDelay,
		maxRetries: defaultMaxRetries,
	}
}

// Serve blocks until ctx is done or the reader is closed.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	k.logger.Info("Starting Kafka order event consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, kafka.ErrGroupClosed) || errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrap(err, "fetch kafka message")
		}

		if err := k.handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}
	}
}

func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) error {
	var event entity.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		k.logger.Error("[Worker] Skipping malformed kafka message",
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return k.commit(ctx, msg)
	}

	requestID := headerValue(msg.Headers, pubsub.AttrRequestID)
	delay := k.retryDelay
	for attempt := 1; ; attempt++ {
		outcome := k.processor.Process(ctx, &event, requestID)
		if outcome != handler.OutcomeRetry {
			return k.commit(ctx, msg)
		}
		if attempt >= k.maxRetries {
			k.logger.Error("[Worker] Giving up on order event",
				slog.String("order_id", event.OrderID),
				slog.Int("attempts", attempt),
			)

			return k.commit(ctx, msg)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

func (k *kafkaConsumer) commit(ctx context.Context, msg kafka.Message) error {
	return errors.Wrap(k.reader.CommitMessages(ctx, msg), "commit kafka message")
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

type idleDelivery struct{}

func (idleDelivery) Serve(context.Context) error { return nil }
