package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/infra/persistence/model"
	"clipcast/internal/infra/persistence/postgres"
	"clipcast/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeedService(t *testing.T, db *gorm.DB) usecase.SeedUsecase {
	t.Helper()

	return NewSeedService(
		postgres.NewRepositoryFactory(db),
		postgres.NewBatchManager(db),
		postgres.NewMaintenanceRepository(db),
		newTestConfig(),
		newTestLogger(),
	)
}

func insertUsers(t *testing.T, repos repository.RepositoryFactory, count int, role entity.Role) []int64 {
	t.Helper()

	now := time.Now()
	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		suffix := uniqueSuffix()
		user := &entity.User{
			Name:             "Test",
			LastName:         "User",
			Username:         fmt.Sprintf("%s_%s_%d", role, suffix, i),
			Email:            fmt.Sprintf("%s_%s_%d@test.local", role, suffix, i),
			PasswordHash:     "hash",
			RegistrationDate: now,
			ProfilePicURL:    "https://pics.test.local/p.png",
			Role:             role,
			BirthDate:        now.AddDate(-30, 0, 0),
		}
		require.NoError(t, repos.Users().Create(context.Background(), user))
		ids = append(ids, user.ID)
	}

	return ids
}

func TestSeedService_SeedUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	ctx := context.Background()

	result, err := svc.SeedUsers(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, result.Inserted)

	users, err := postgres.NewUserRepository(db).Page(ctx, 100)
	require.NoError(t, err)
	require.Len(t, users, 40)

	for _, user := range users {
		assert.True(t, user.Role.IsValid())
		assert.NotEmpty(t, user.Username)
		assert.NotEmpty(t, user.PasswordHash)
	}
}

func TestSeedService_SeedVideos_CreatorOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	repos := postgres.NewRepositoryFactory(db)
	ctx := context.Background()

	creatorIDs := insertUsers(t, repos, 3, entity.RoleCreator)
	insertUsers(t, repos, 5, entity.RoleUser)

	creators := make(map[int64]bool, len(creatorIDs))
	for _, id := range creatorIDs {
		creators[id] = true
	}

	result, err := svc.SeedVideos(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Inserted)

	videos, err := repos.Videos().Page(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, videos, 20)

	for _, video := range videos {
		assert.True(t, creators[video.CreatorID], "video %d owned by non-creator %d", video.ID, video.CreatorID)
		assert.Positive(t, video.Duration)
		assert.True(t, video.Visibility.IsValid())
	}
}

func TestSeedService_SeedVideos_EmptyPool(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)

	_, err := svc.SeedVideos(context.Background(), 5)
	require.ErrorIs(t, err, ErrEmptyPool)
}

func TestSeedService_SeedCampaigns_WindowAndOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	repos := postgres.NewRepositoryFactory(db)
	ctx := context.Background()

	_, err := svc.SeedAdvertisers(ctx, 3)
	require.NoError(t, err)

	advertiserIDs, err := repos.Advertisers().IDs(ctx)
	require.NoError(t, err)
	require.Len(t, advertiserIDs, 3)

	owners := make(map[int64]bool, len(advertiserIDs))
	for _, id := range advertiserIDs {
		owners[id] = true
	}

	result, err := svc.SeedCampaigns(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Inserted)

	campaigns, err := repos.Campaigns().List(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 10)

	for _, campaign := range campaigns {
		assert.True(t, owners[campaign.AdvertiserID])

		window := campaign.EndDate.Sub(campaign.StartDate)
		assert.GreaterOrEqual(t, window, 7*24*time.Hour)
		assert.LessOrEqual(t, window, 30*24*time.Hour)

		assert.GreaterOrEqual(t, campaign.Budget, 100.0)
		assert.LessOrEqual(t, campaign.Budget, 5000.0)
	}
}

func TestSeedService_SeedCampaigns_EmptyPool(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)

	_, err := svc.SeedCampaigns(context.Background(), 5)
	require.ErrorIs(t, err, ErrEmptyPool)
}

func TestSeedService_SeedGiftTransactions_SenderNeverReceiver(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	repos := postgres.NewRepositoryFactory(db)
	ctx := context.Background()

	userIDs := insertUsers(t, repos, 10, entity.RoleUser)

	_, err := svc.SeedGifts(ctx)
	require.NoError(t, err)

	giftTxIDs := make(map[int64]bool, 5)
	for i := 0; i < 5; i++ {
		tx := &entity.Transaction{
			UserID:              userIDs[i],
			Amount:              9.99,
			Currency:            "USD",
			Type:                entity.TransactionGift,
			TransactionDatetime: time.Now(),
			Status:              true,
		}
		require.NoError(t, repos.Transactions().Create(ctx, tx))
		giftTxIDs[tx.ID] = true
	}

	result, err := svc.SeedGiftTransactions(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, result.Inserted)

	gts, err := repos.GiftTransactions().List(ctx)
	require.NoError(t, err)
	require.Len(t, gts, 30)

	for _, gt := range gts {
		assert.NotEqual(t, gt.SenderID, gt.ReceiverID)
		assert.True(t, giftTxIDs[gt.TransactionID])
	}
}

func TestSeedService_SeedTransactions_AdvertiserOnlyOnAdPayments(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	repos := postgres.NewRepositoryFactory(db)
	ctx := context.Background()

	insertUsers(t, repos, 8, entity.RoleUser)
	_, err := svc.SeedAdvertisers(ctx, 2)
	require.NoError(t, err)

	result, err := svc.SeedTransactions(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, result.Inserted)

	var rows []model.TransactionModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 40)

	for _, row := range rows {
		assert.True(t, entity.TransactionType(row.Type).IsValid())
		if row.Type == entity.TransactionAdPayment.String() {
			assert.NotNil(t, row.AdvertiserID)
		} else {
			assert.Nil(t, row.AdvertiserID)
		}
	}
}

func TestSeedService_SeedFollows_NoDuplicateEdges(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	repos := postgres.NewRepositoryFactory(db)
	ctx := context.Background()

	insertUsers(t, repos, 6, entity.RoleUser)

	result, err := svc.SeedFollows(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, result.Inserted)

	var rows []model.FollowModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 25)

	seen := make(map[[2]int64]bool, len(rows))
	for _, row := range rows {
		assert.NotEqual(t, row.FollowerID, row.FollowedID)
		pair := [2]int64{row.FollowerID, row.FollowedID}
		assert.False(t, seen[pair], "duplicate edge %v", pair)
		seen[pair] = true
	}
}

func TestSeedService_SeedFollows_RejectsImpossibleEdgeCount(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	repos := postgres.NewRepositoryFactory(db)
	ctx := context.Background()

	// Two users admit exactly two distinct ordered edges, so asking for a
	// third must fail as a precondition instead of searching forever.
	insertUsers(t, repos, 2, entity.RoleUser)

	_, err := svc.SeedFollows(ctx, 3)
	require.ErrorIs(t, err, ErrEmptyPool)

	var rows []model.FollowModel
	require.NoError(t, db.Find(&rows).Error)
	assert.Empty(t, rows)

	// The exact capacity is still reachable.
	result, err := svc.SeedFollows(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
}

func TestSeedService_SeedAll_EndToEnd(t *testing.T) {
	db := newTestDB(t)
	svc := newSeedService(t, db)
	repos := postgres.NewRepositoryFactory(db)
	ctx := context.Background()

	// Guarantee non-empty pools regardless of the random role draw.
	insertUsers(t, repos, 2, entity.RoleCreator)
	insertUsers(t, repos, 1, entity.RoleAdmin)

	cfg := newTestConfig()
	counts := cfg.Seed.Counts
	expected := counts.Users + counts.Advertisers + counts.Campaigns +
		counts.Videos + counts.Subscriptions + counts.Transactions +
		counts.GiftTransactions + counts.ContentReports + counts.Follows +
		3 + 5 // fixed plan and gift catalogs

	result, err := svc.SeedAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, result.Inserted)

	campaigns, err := repos.Campaigns().List(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, counts.Campaigns)

	planIDs, err := repos.Plans().IDs(ctx)
	require.NoError(t, err)
	assert.Len(t, planIDs, 3)

	giftIDs, err := repos.Gifts().IDs(ctx)
	require.NoError(t, err)
	assert.Len(t, giftIDs, 5)

	require.NoError(t, svc.WipeRelational(ctx))

	remaining, err := repos.Users().AllIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
