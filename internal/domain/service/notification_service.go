package service

import (
	"context"
)

// PushMessage is a notification addressed to a set of device tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// PushResult reports per-token delivery outcome.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// NotificationService delivers push notifications.
type NotificationService interface {
	// Send delivers msg to every token. Tokens the provider reports as
	// unregistered are listed in the result.
	Send(ctx context.Context, msg *PushMessage) (*PushResult, error)
}
