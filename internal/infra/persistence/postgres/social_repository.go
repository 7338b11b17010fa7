package postgres

import (
	"context"

	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) Create(ctx context.Context, report *entity.ContentReport) error {
	reportM := &model.ContentReportModel{
		ID:         report.ID,
		VideoID:    report.VideoID,
		ReporterID: report.ReporterID,
		ReviewedBy: report.ReviewedBy,
		Reason:     report.Reason,
		Status:     report.Status.String(),
		ReportDate: report.ReportDate,
	}

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "video, reporter or moderator does not exist")
		}

		return errors.Wrap(err, "failed to create content report")
	}

	report.ID = reportM.ID

	return nil
}

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := &model.FollowModel{
		FollowerID: follow.FollowerID,
		FollowedID: follow.FollowedID,
		FollowDate: follow.FollowDate,
	}

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "follow edge already exists")
		}

		return errors.Wrap(err, "failed to create follow")
	}

	return nil
}

// maintenanceRepository implements the repository.MaintenanceRepository interface.
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository is the constructor for maintenanceRepository.
func NewMaintenanceRepository(db *gorm.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// WipeAll deletes every row in child-first order, so no foreign key ever
// dangles while the wipe is in flight.
func (repo *maintenanceRepository) WipeAll(ctx context.Context) error {
	// Most dependent tables first.
	wipeOrder := []any{
		&model.GiftTransactionModel{},
		&model.ContentReportModel{},
		&model.TransactionModel{},
		&model.VirtualGiftModel{},
		&model.SubscriptionModel{},
		&model.SubscriptionPlanModel{},
		&model.CampaignModel{},
		&model.AdvertiserModel{},
		&model.VideoModel{},
		&model.FollowModel{},
		&model.UserModel{},
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range wipeOrder {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return errors.Wrap(err, "failed to wipe table")
			}
		}

		return nil
	})
}
