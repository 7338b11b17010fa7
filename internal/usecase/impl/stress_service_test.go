package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/infra/persistence/postgres"
	"clipcast/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStressService(t *testing.T, db *gorm.DB, store repository.DocumentStore) usecase.StressUsecase {
	t.Helper()

	return NewStressService(
		postgres.NewUserRepository(db),
		postgres.NewBatchManager(db),
		store,
		newTestConfig(),
		newTestLogger(),
	)
}

func TestStressService_RelationalInsert_ResumesNumbering(t *testing.T) {
	db := newTestDB(t)
	svc := newStressService(t, db, newFakeDocumentStore())
	users := postgres.NewUserRepository(db)
	ctx := context.Background()

	samples, err := svc.RelationalInsert(ctx, []int{5, 7})
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 5, samples[0].Load)
	assert.Equal(t, 7, samples[1].Load)

	maxSeq, err := users.MaxSeedSequence(ctx, "bigdata_user_")
	require.NoError(t, err)
	assert.Equal(t, 11, maxSeq)

	// A later run picks up right after the highest existing number.
	_, err = svc.RelationalInsert(ctx, []int{3})
	require.NoError(t, err)

	maxSeq, err = users.MaxSeedSequence(ctx, "bigdata_user_")
	require.NoError(t, err)
	assert.Equal(t, 14, maxSeq)

	rows, err := users.Page(ctx, 100)
	require.NoError(t, err)
	require.Len(t, rows, 15)
	for _, row := range rows {
		assert.Equal(t, entity.RoleAdvertiser, row.Role)
	}
}

func TestStressService_RelationalRead(t *testing.T) {
	db := newTestDB(t)
	svc := newStressService(t, db, newFakeDocumentStore())
	ctx := context.Background()

	_, err := svc.RelationalInsert(ctx, []int{10})
	require.NoError(t, err)

	samples, err := svc.RelationalRead(ctx, []int{3, 6})
	require.NoError(t, err)
	require.Len(t, samples, 2)

	for i, load := range []int{3, 6} {
		assert.Equal(t, load, samples[i].Load)
		assert.GreaterOrEqual(t, samples[i].Elapsed, time.Duration(0))
	}
}

func TestStressService_DocumentInsertAndRead(t *testing.T) {
	db := newTestDB(t)
	store := newFakeDocumentStore()
	svc := newStressService(t, db, store)
	ctx := context.Background()

	insertSamples, err := svc.DocumentInsert(ctx, []int{4, 6})
	require.NoError(t, err)
	require.Len(t, insertSamples, 2)
	assert.Len(t, store.views, 10)

	for _, view := range store.views {
		assert.Equal(t, "stress_probe", view.VideoID)
		assert.GreaterOrEqual(t, view.WatchTimeSec, 5)
		assert.LessOrEqual(t, view.WatchTimeSec, 300)
	}

	readSamples, err := svc.DocumentRead(ctx, []int{3, 10})
	require.NoError(t, err)
	require.Len(t, readSamples, 2)
	assert.Equal(t, 3, readSamples[0].Load)
	assert.Equal(t, 10, readSamples[1].Load)
}

func TestStressService_SampleShape(t *testing.T) {
	db := newTestDB(t)
	svc := newStressService(t, db, newFakeDocumentStore())
	ctx := context.Background()

	loads := []int{1, 2, 3}
	samples, err := svc.RelationalInsert(ctx, loads)
	require.NoError(t, err)
	require.Len(t, samples, len(loads))

	for i, sample := range samples {
		assert.Equal(t, loads[i], sample.Load, fmt.Sprintf("sample %d", i))
	}
}
