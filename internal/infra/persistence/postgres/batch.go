package postgres

import (
	"context"

	"clipcast/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormBatchManager implements the domain's BatchManager interface using
// explicit GORM transactions with periodic commit checkpoints.
type gormBatchManager struct {
	db *gorm.DB
}

// gormRepositoryFactory holds a GORM transaction object and creates
// repository instances bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // a GORM transaction is also a *gorm.DB
}

func (f *gormRepositoryFactory) Users() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) Advertisers() repository.AdvertiserRepository {
	return NewAdvertiserRepository(f.tx)
}

func (f *gormRepositoryFactory) Campaigns() repository.CampaignRepository {
	return NewCampaignRepository(f.tx)
}

func (f *gormRepositoryFactory) Plans() repository.PlanRepository {
	return NewPlanRepository(f.tx)
}

func (f *gormRepositoryFactory) Videos() repository.VideoRepository {
	return NewVideoRepository(f.tx)
}

func (f *gormRepositoryFactory) Subscriptions() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.tx)
}

func (f *gormRepositoryFactory) Gifts() repository.GiftRepository {
	return NewGiftRepository(f.tx)
}

func (f *gormRepositoryFactory) Transactions() repository.TransactionRepository {
	return NewTransactionRepository(f.tx)
}

func (f *gormRepositoryFactory) GiftTransactions() repository.GiftTransactionRepository {
	return NewGiftTransactionRepository(f.tx)
}

func (f *gormRepositoryFactory) Reports() repository.ReportRepository {
	return NewReportRepository(f.tx)
}

func (f *gormRepositoryFactory) Follows() repository.FollowRepository {
	return NewFollowRepository(f.tx)
}

// NewRepositoryFactory returns a factory bound to the main connection
// rather than a transaction. Reads through it always see committed rows.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

// NewBatchManager is the constructor for gormBatchManager.
func NewBatchManager(db *gorm.DB) repository.BatchManager {
	return &gormBatchManager{db: db}
}

// Run executes total steps under checkpointed transactions. After every
// checkpoint steps the open transaction commits and progress fires; a step
// error rolls back the open transaction only. The store is therefore left
// holding an exact prefix of the requested rows: everything up to the last
// checkpoint, never a torn row.
func (bm *gormBatchManager) Run(ctx context.Context, total, checkpoint int, step func(repos repository.RepositoryFactory, i int) error, progress func(committed int)) (int, error) {
	if total <= 0 {
		return 0, nil
	}
	if checkpoint <= 0 || checkpoint > total {
		checkpoint = total
	}

	tx := bm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside step must not leave a transaction open.
	committed := 0
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	for i := 0; i < total; i++ {
		if err := step(factory, i); err != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				return committed, errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
			}

			return committed, err
		}

		if (i+1)%checkpoint == 0 && i+1 < total {
			if err := tx.Commit().Error; err != nil {
				return committed, errors.Wrap(err, "failed to commit checkpoint")
			}
			committed = i + 1
			if progress != nil {
				progress(committed)
			}

			tx = bm.db.WithContext(ctx).Begin()
			if tx.Error != nil {
				return committed, errors.Wrap(tx.Error, "failed to begin transaction after checkpoint")
			}
			factory.tx = tx
		}
	}

	if err := tx.Commit().Error; err != nil {
		return committed, errors.Wrap(err, "failed to commit transaction")
	}

	return total, nil
}
