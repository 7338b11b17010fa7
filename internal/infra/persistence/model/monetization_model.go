package model

import "time"

// VirtualGiftModel mirrors the 'virtualgift' table.
type VirtualGiftModel struct {
	ID    int64   `gorm:"column:gift_id;primaryKey;autoIncrement"`
	Name  string  `gorm:"column:name;type:varchar(100);not null"`
	Price float64 `gorm:"column:price;type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (VirtualGiftModel) TableName() string {
	return "virtualgift"
}

// TransactionModel mirrors the 'transaction' table. AdvertiserID is null
// unless the row is an ad_payment.
type TransactionModel struct {
	ID                  int64     `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	UserID              int64     `gorm:"column:user_id;not null;index"`
	AdvertiserID        *int64    `gorm:"column:advertiser_id;index"`
	Amount              float64   `gorm:"column:amount;type:decimal(10,2);not null"`
	Currency            string    `gorm:"column:currency;type:varchar(10);not null"`
	Type                string    `gorm:"column:type;type:varchar(20);not null;index"`
	TransactionDatetime time.Time `gorm:"column:transaction_datetime"`
	Status              bool      `gorm:"column:status;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transaction"
}

// GiftTransactionModel mirrors the 'gifttransaction' table.
type GiftTransactionModel struct {
	ID            int64 `gorm:"column:gift_transaction_id;primaryKey;autoIncrement"`
	TransactionID int64 `gorm:"column:transaction_id;not null;index"`
	SenderID      int64 `gorm:"column:sender_id;not null"`
	ReceiverID    int64 `gorm:"column:receiver_id;not null"`
	GiftID        int64 `gorm:"column:gift_id;not null"`
}

// TableName explicitly sets the table name for GORM.
func (GiftTransactionModel) TableName() string {
	return "gifttransaction"
}
