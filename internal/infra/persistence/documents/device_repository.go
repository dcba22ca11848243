package documents

import (
	"cmp"
	"context"
	"slices"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/docstore"
)

type deviceRepository struct {
	coll *docstore.Collection
}

// NewDeviceRepository opens the devices collection.
func NewDeviceRepository(ctx context.Context, cols *Collections, url string) (repository.DeviceRepository, error) {
	coll, err := cols.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return &deviceRepository{coll: coll}, nil
}

func (repo *deviceRepository) SaveDevice(ctx context.Context, device *entity.UserDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	if err := repo.coll.Put(ctx, fromDeviceDomain(device)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save device")
	}

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	doc := &deviceDoc{ID: id.String()}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.IsNotFound(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get device")
	}

	return doc.toDomain(), nil
}

func (repo *deviceRepository) FindDeviceByClientID(ctx context.Context, userID, deviceID string) (*entity.UserDevice, error) {
	devices, err := repo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, device := range devices {
		if device.DeviceID == deviceID {
			return device, nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	docs, err := collect[deviceDoc](ctx, repo.coll.Query().Where("userId", "=", userID).Get(ctx))
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, len(docs))
	for i, doc := range docs {
		devices[i] = doc.toDomain()
	}
	slices.SortFunc(devices, func(a, b *entity.UserDevice) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.DeviceID, b.DeviceID))
	})

	return devices, nil
}

func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	devices, err := repo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(devices, func(d *entity.UserDevice) bool { return !d.IsActive }), nil
}

func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	err := repo.coll.Update(ctx, &deviceDoc{ID: id.String()}, docstore.Mods{"isActive": false})
	if err != nil {
		if errors.IsNotFound(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to deactivate device")
	}

	return nil
}
