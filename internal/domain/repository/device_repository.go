package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists push notification devices.
type DeviceRepository interface {
	// SaveDevice creates or overwrites a device record.
	SaveDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDeviceByClientID finds a user's device by the client supplied device id.
	FindDeviceByClientID(ctx context.Context, userID, deviceID string) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a user (including inactive).
	FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a user.
	FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// DeactivateDevice marks a device inactive.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
