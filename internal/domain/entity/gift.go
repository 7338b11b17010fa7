package entity

// VirtualGift is one of a small fixed catalog of purchasable gifts.
type VirtualGift struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GiftTransaction links a gift-type transaction to a sender, a receiver
// and the gift itself. Sender and receiver are always distinct users.
type GiftTransaction struct {
	ID            int64 `json:"id"`
	TransactionID int64 `json:"transaction_id"`
	SenderID      int64 `json:"sender_id"`
	ReceiverID    int64 `json:"receiver_id"`
	GiftID        int64 `json:"gift_id"`
}
