package entity

import "time"

// TransactionType discriminates what a payment was for.
type TransactionType string

const (
	TransactionSubscription TransactionType = "subscription"
	TransactionGift         TransactionType = "gift"
	TransactionAdPayment    TransactionType = "ad_payment"
)

// String returns the string representation of the TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSubscription, TransactionGift, TransactionAdPayment:
		return true
	default:
		return false
	}
}

// Transaction records a payment. AdvertiserID is set only for ad_payment
// rows; every other type leaves it nil.
type Transaction struct {
	ID                  int64           `json:"id"`
	UserID              int64           `json:"user_id"`
	AdvertiserID        *int64          `json:"advertiser_id,omitempty"`
	Amount              float64         `json:"amount"`
	Currency            string          `json:"currency"`
	Type                TransactionType `json:"type"`
	TransactionDatetime time.Time       `json:"transaction_datetime"`
	Status              bool            `json:"status"`
}
