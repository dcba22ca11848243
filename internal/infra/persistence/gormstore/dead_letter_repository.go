package gormstore

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const (
	maxLastErrorLen  = 1024
	defaultListLimit = 50
)

type deadLetterRepository struct {
	db *gorm.DB
}

// NewDeadLetterRepository is the constructor for deadLetterRepository.
func NewDeadLetterRepository(db *gorm.DB) repository.DeadLetterRepository {
	return &deadLetterRepository{db: db}
}

func (repo *deadLetterRepository) InsertDeadLetter(ctx context.Context, letter *entity.DeadLetter) error {
	row := fromDeadLetterDomain(letter)
	row.LastError = truncate(row.LastError, maxLastErrorLen)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to insert dead letter")
	}
	letter.ID = row.ID

	return nil
}

func (repo *deadLetterRepository) ListDeadLetters(ctx context.Context, limit int) ([]*entity.DeadLetter, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var rows []*model.DeadLetterModel
	if err := repo.db.WithContext(ctx).
		Order("failed_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list dead letters")
	}

	letters := make([]*entity.DeadLetter, 0, len(rows))
	for _, row := range rows {
		letters = append(letters, toDeadLetterDomain(row))
	}

	return letters, nil
}

func (repo *deadLetterRepository) DeleteDeadLetter(ctx context.Context, id uint64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.DeadLetterModel{}, id).Error; err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete dead letter")
	}

	return nil
}

func (repo *deadLetterRepository) CountDeadLetters(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.DeadLetterModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewStoreExecuteError(err, "failed to count dead letters")
	}

	return count, nil
}

func fromDeadLetterDomain(letter *entity.DeadLetter) *model.DeadLetterModel {
	return &model.DeadLetterModel{
		ID:        letter.ID,
		Kind:      string(letter.Kind),
		Key:       letter.Key,
		Payload:   letter.Payload,
		Version:   letter.Version,
		Attempts:  letter.Attempts,
		LastError: letter.LastError,
		FailedAt:  letter.FailedAt,
	}
}

func toDeadLetterDomain(row *model.DeadLetterModel) *entity.DeadLetter {
	return &entity.DeadLetter{
		ID:        row.ID,
		Kind:      entity.WriteKind(row.Kind),
		Key:       row.Key,
		Payload:   row.Payload,
		Version:   row.Version,
		Attempts:  row.Attempts,
		LastError: row.LastError,
		FailedAt:  row.FailedAt,
	}
}

func truncate(message string, limit int) string {
	if len(message) <= limit {
		return message
	}

	return message[:limit]
}
