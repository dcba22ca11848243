// Package notification delivers push notifications.
package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

// multicastLimit is the most tokens FCM accepts per request.
const multicastLimit = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// Params defines the dependencies of the notification service.
type Params struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// New returns the FCM sender, or a logging no-op when Firebase is absent.
func New(params Params) (service.NotificationService, error) {
	if params.App == nil {
		return &logService{logger: params.Logger}, nil
	}

	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Send delivers msg in chunks of at most 500 tokens.
func (s *firebaseService) Send(ctx context.Context, msg *service.PushMessage) (*service.PushResult, error) {
	result := &service.PushResult{InvalidTokens: make([]string, 0)}

	for start := 0; start < len(msg.Tokens); start += multicastLimit {
		tokens := msg.Tokens[start:min(start+multicastLimit, len(msg.Tokens))]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: tokens,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
			}
		}
	}

	return result, nil
}

// logService stands in for FCM in development.
type logService struct {
	logger *slog.Logger
}

func (s *logService) Send(ctx context.Context, msg *service.PushMessage) (*service.PushResult, error) {
	s.logger.InfoContext(ctx, "Push notification (not sent)",
		slog.Int("tokens", len(msg.Tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return &service.PushResult{SuccessCount: len(msg.Tokens)}, nil
}
