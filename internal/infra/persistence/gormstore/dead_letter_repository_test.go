package gormstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *deadLetterRepository {
	t.Helper()

	cfg := &config.Config{DeadLetter: &config.DeadLetterConfig{
		Driver:     constants.DeadLetterDriverSQLite,
		SQLitePath: ":memory:",
	}}
	db, err := Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return &deadLetterRepository{db: db}
}

func TestDeadLetterRepository_InsertListDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestDB(t)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	second := &entity.DeadLetter{Kind: entity.WriteKindUserOrder, Key: "u1/o1", Payload: []byte(`{}`), Attempts: 8, LastError: "boom", FailedAt: base.Add(time.Minute)}
	first := &entity.DeadLetter{Kind: entity.WriteKindCart, Key: "u1", Payload: []byte(`[]`), Version: 1717236000000000042, Attempts: 8, LastError: strings.Repeat("x", 2000), FailedAt: base}

	require.NoError(t, repo.InsertDeadLetter(ctx, second))
	require.NoError(t, repo.InsertDeadLetter(ctx, first))
	assert.NotZero(t, first.ID)

	letters, err := repo.ListDeadLetters(ctx, 10)
	require.NoError(t, err)
	require.Len(t, letters, 2)
	assert.Equal(t, "u1", letters[0].Key)
	assert.Equal(t, entity.WriteKindCart, letters[0].Kind)
	assert.Len(t, letters[0].LastError, maxLastErrorLen)
	assert.Equal(t, uint64(1717236000000000042), letters[0].Version)
	assert.Equal(t, "u1/o1", letters[1].Key)

	count, err := repo.CountDeadLetters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.DeleteDeadLetter(ctx, first.ID))
	count, err = repo.CountDeadLetters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{DeadLetter: &config.DeadLetterConfig{Driver: "mysql"}}
	_, err := Open(cfg, nil)
	assert.Error(t, err)
}
