package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a client sends to subscribe to order pushes.
type DeviceInfo struct {
	FCMToken string `json:"fcmToken"`
	DeviceID string `json:"deviceId"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages the push targets for a customer's order updates.
type DeviceUsecase interface {
	// RegisterDevice subscribes a device. Registering the same deviceId again
	// refreshes its token and reactivates it.
	RegisterDevice(ctx context.Context, userID string, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// ListDevices returns the caller's active devices.
	ListDevices(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device. Only its owner may do this.
	DeactivateDevice(ctx context.Context, userID string, deviceID uuid.UUID) error
}
