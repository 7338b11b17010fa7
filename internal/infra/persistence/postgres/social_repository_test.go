package postgres

import (
	"context"
	"testing"
	"time"

	"clipcast/internal/domain/entity"
	"clipcast/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowRepository_Create_RejectsDuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	a := makeUser(0, entity.RoleUser)
	b := makeUser(1, entity.RoleUser)
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))

	edge := &entity.Follow{FollowerID: a.ID, FollowedID: b.ID, FollowDate: time.Now()}
	require.NoError(t, follows.Create(ctx, edge))

	err := follows.Create(ctx, edge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The reverse edge is a different pair and must pass.
	reverse := &entity.Follow{FollowerID: b.ID, FollowedID: a.ID, FollowDate: time.Now()}
	require.NoError(t, follows.Create(ctx, reverse))
}

func TestMaintenanceRepository_WipeAll(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	advertisers := NewAdvertiserRepository(db)
	videos := NewVideoRepository(db)
	follows := NewFollowRepository(db)
	reports := NewReportRepository(db)

	creator := makeUser(0, entity.RoleCreator)
	viewer := makeUser(1, entity.RoleUser)
	require.NoError(t, users.Create(ctx, creator))
	require.NoError(t, users.Create(ctx, viewer))

	require.NoError(t, advertisers.Create(ctx, &entity.Advertiser{CompanyName: "Acme", BillingInfo: "1 Main St"}))

	video := &entity.Video{
		CreatorID:      creator.ID,
		Title:          "clip",
		Description:    "short clip",
		Duration:       42,
		UploadDatetime: time.Now(),
		Visibility:     entity.VisibilityPublic,
	}
	require.NoError(t, videos.Create(ctx, video))

	require.NoError(t, follows.Create(ctx, &entity.Follow{FollowerID: viewer.ID, FollowedID: creator.ID, FollowDate: time.Now()}))
	require.NoError(t, reports.Create(ctx, &entity.ContentReport{
		VideoID:    video.ID,
		ReporterID: viewer.ID,
		Reason:     "Spam",
		Status:     entity.ReportPending,
		ReportDate: time.Now(),
	}))

	maintenance := NewMaintenanceRepository(db)
	require.NoError(t, maintenance.WipeAll(ctx))

	for _, m := range []any{
		&model.UserModel{}, &model.AdvertiserModel{}, &model.VideoModel{},
		&model.FollowModel{}, &model.ContentReportModel{},
	} {
		var count int64
		require.NoError(t, db.Session(&gorm.Session{}).Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}
}
