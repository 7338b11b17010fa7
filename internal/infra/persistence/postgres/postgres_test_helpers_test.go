package postgres

import (
	"fmt"
	"testing"
	"time"

	"clipcast/internal/domain/entity"
	"clipcast/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// full schema. Each test gets its own named database so parallel tests
// never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.AdvertiserModel{},
		&model.CampaignModel{},
		&model.SubscriptionPlanModel{},
		&model.SubscriptionModel{},
		&model.VideoModel{},
		&model.VirtualGiftModel{},
		&model.TransactionModel{},
		&model.GiftTransactionModel{},
		&model.ContentReportModel{},
		&model.FollowModel{},
	))

	return db
}

// makeUser builds a unique user row for inserts.
func makeUser(i int, role entity.Role) *entity.User {
	now := time.Now()

	return &entity.User{
		Name:             fmt.Sprintf("Name%d", i),
		LastName:         fmt.Sprintf("Last%d", i),
		Username:         fmt.Sprintf("user_%d", i),
		Email:            fmt.Sprintf("user_%d@test.local", i),
		PasswordHash:     fmt.Sprintf("hash_%d", i),
		RegistrationDate: now,
		ProfilePicURL:    "https://pics.test.local/default.png",
		Role:             role,
		BirthDate:        now.AddDate(-25, 0, 0),
	}
}
