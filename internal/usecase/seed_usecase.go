// Package usecase defines the application service interfaces.
package usecase

import (
	"context"
	"time"
)

// SeedResult reports one generator run: how many rows reached the store
// and how long the whole loop took.
type SeedResult struct {
	Inserted int           `json:"inserted"`
	Elapsed  time.Duration `json:"elapsed"`
}

// SeedUsecase defines the interface for relational data generation use cases.
// Operations that reference earlier entities sample their candidate pools
// from committed rows at call time, so SeedAll's order matters.
type SeedUsecase interface {
	SeedUsers(ctx context.Context, count int) (*SeedResult, error)
	SeedAdvertisers(ctx context.Context, count int) (*SeedResult, error)
	SeedCampaigns(ctx context.Context, count int) (*SeedResult, error)
	SeedPlans(ctx context.Context) (*SeedResult, error)
	SeedVideos(ctx context.Context, count int) (*SeedResult, error)
	SeedSubscriptions(ctx context.Context, count int) (*SeedResult, error)
	SeedGifts(ctx context.Context) (*SeedResult, error)
	SeedTransactions(ctx context.Context, count int) (*SeedResult, error)
	SeedGiftTransactions(ctx context.Context, count int) (*SeedResult, error)
	SeedContentReports(ctx context.Context, count int) (*SeedResult, error)
	SeedFollows(ctx context.Context, count int) (*SeedResult, error)

	// SeedAll runs every generator in dependency order using the
	// configured counts and returns the aggregate result.
	SeedAll(ctx context.Context) (*SeedResult, error)

	// WipeRelational deletes every row from every table, child-first.
	WipeRelational(ctx context.Context) error
}
