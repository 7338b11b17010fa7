package repository

import (
	"context"

	"clipcast/internal/domain/entity"
)

// GiftRepository persists the fixed virtual gift catalog.
type GiftRepository interface {
	Create(ctx context.Context, gift *entity.VirtualGift) error
	IDs(ctx context.Context) ([]int64, error)
}

// TransactionRepository persists payment rows.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error

	// IDsByType returns the IDs of committed transactions of one type,
	// e.g. the gift transactions that gifttransaction rows reference.
	IDsByType(ctx context.Context, txType entity.TransactionType) ([]int64, error)
}

// GiftTransactionRepository persists gift deliveries.
type GiftTransactionRepository interface {
	Create(ctx context.Context, gt *entity.GiftTransaction) error
	List(ctx context.Context) ([]*entity.GiftTransaction, error)
}
