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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	now        time.Time
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	service := &deviceService{
		deviceRepo: deviceRepo,
		now:        func() time.Time { return now },
	}

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		now:        now,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := "uid-1"
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "iOS",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		SaveDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, "ios", device.Platform)
	assert.Equal(t, fx.now, device.CreatedAt)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := "uid-1"
	deviceID := uuid.New()
	createdAt := fx.now.Add(-24 * time.Hour)
	existingDevice := &entity.UserDevice{
		ID:        deviceID,
		UserID:    userID,
		FCMToken:  "old-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  false,
		CreatedAt: createdAt,
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, userID, "device-123").
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		SaveDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.ID == deviceID && d.FCMToken == "new-fcm-token" && d.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.Equal(t, createdAt, device.CreatedAt)
	assert.Equal(t, fx.now, device.UpdatedAt)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterDevice(ctx, "uid-1", &usecase.DeviceInfo{DeviceID: "d", Platform: "ios"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterDevice(ctx, "uid-1", &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "palm"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	expectedErr := errors.New("database error")
	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, "uid-1", "device-123").
		Return(nil, expectedErr)

	device, err := fx.service.RegisterDevice(ctx, "uid-1", deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), "failed to find device by client id")
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := "uid-1"
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(expectedDevices, nil)

	devices, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: "uid-1", IsActive: true}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, "uid-1", deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeactivateDevice(ctx, "uid-1", deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_DeactivateDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: "someone-else", IsActive: true}, nil)

	err := fx.service.DeactivateDevice(ctx, "uid-1", deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
