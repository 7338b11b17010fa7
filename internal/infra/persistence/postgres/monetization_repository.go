package postgres

import (
	"context"

	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// giftRepository implements the repository.GiftRepository interface.
type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository is the constructor for giftRepository.
func NewGiftRepository(db *gorm.DB) repository.GiftRepository {
	return &giftRepository{db: db}
}

func (repo *giftRepository) Create(ctx context.Context, gift *entity.VirtualGift) error {
	giftM := &model.VirtualGiftModel{
		ID:    gift.ID,
		Name:  gift.Name,
		Price: gift.Price,
	}

	if err := repo.db.WithContext(ctx).Create(giftM).Error; err != nil {
		return errors.Wrap(err, "failed to create virtual gift")
	}

	gift.ID = giftM.ID

	return nil
}

func (repo *giftRepository) IDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VirtualGiftModel{}).
		Pluck("gift_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gift ids")
	}

	return ids, nil
}

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txM := &model.TransactionModel{
		ID:                  tx.ID,
		UserID:              tx.UserID,
		AdvertiserID:        tx.AdvertiserID,
		Amount:              tx.Amount,
		Currency:            tx.Currency,
		Type:                tx.Type.String(),
		TransactionDatetime: tx.TransactionDatetime,
		Status:              tx.Status,
	}

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "user or advertiser does not exist")
		}

		return errors.Wrap(err, "failed to create transaction")
	}

	tx.ID = txM.ID

	return nil
}

func (repo *transactionRepository) IDsByType(ctx context.Context, txType entity.TransactionType) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("type = ?", txType.String()).
		Pluck("transaction_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transaction ids by type")
	}

	return ids, nil
}

// giftTransactionRepository implements the repository.GiftTransactionRepository interface.
type giftTransactionRepository struct {
	db *gorm.DB
}

// NewGiftTransactionRepository is the constructor for giftTransactionRepository.
func NewGiftTransactionRepository(db *gorm.DB) repository.GiftTransactionRepository {
	return &giftTransactionRepository{db: db}
}

func (repo *giftTransactionRepository) Create(ctx context.Context, gt *entity.GiftTransaction) error {
	gtM := &model.GiftTransactionModel{
		ID:            gt.ID,
		TransactionID: gt.TransactionID,
		SenderID:      gt.SenderID,
		ReceiverID:    gt.ReceiverID,
		GiftID:        gt.GiftID,
	}

	if err := repo.db.WithContext(ctx).Create(gtM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "transaction, user or gift does not exist")
		}

		return errors.Wrap(err, "failed to create gift transaction")
	}

	gt.ID = gtM.ID

	return nil
}

func (repo *giftTransactionRepository) List(ctx context.Context) ([]*entity.GiftTransaction, error) {
	var gtMs []model.GiftTransactionModel
	if err := repo.db.WithContext(ctx).
		Order("gift_transaction_id").
		Find(&gtMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gift transactions")
	}

	gts := make([]*entity.GiftTransaction, 0, len(gtMs))
	for i := range gtMs {
		g := gtMs[i]
		gts = append(gts, &entity.GiftTransaction{
			ID:            g.ID,
			TransactionID: g.TransactionID,
			SenderID:      g.SenderID,
			ReceiverID:    g.ReceiverID,
			GiftID:        g.GiftID,
		})
	}

	return gts, nil
}
