package repository

import "context"

// BatchManager runs a generation loop under checkpointed transactions.
// This allows the use case layer to bound transaction size without
// depending on a specific DB driver like GORM.
type BatchManager interface {
	// Run executes step for i in [0, total). After every checkpoint steps
	// the open transaction is committed and progress (if non-nil) is
	// called with the number of rows committed so far. On a step error
	// the open transaction is rolled back and Run returns the rows that
	// reached a commit point together with the error: a failed run always
	// leaves the store holding an exact prefix of the requested rows.
	// checkpoint <= 0 commits once at the end.
	Run(ctx context.Context, total, checkpoint int, step func(repos RepositoryFactory, i int) error, progress func(committed int)) (int, error)
}

// RepositoryFactory provides repository instances bound to one transaction,
// so every insert inside a checkpoint window shares the same connection.
type RepositoryFactory interface {
	Users() UserRepository
	Advertisers() AdvertiserRepository
	Campaigns() CampaignRepository
	Plans() PlanRepository
	Videos() VideoRepository
	Subscriptions() SubscriptionRepository
	Gifts() GiftRepository
	Transactions() TransactionRepository
	GiftTransactions() GiftTransactionRepository
	Reports() ReportRepository
	Follows() FollowRepository
}
