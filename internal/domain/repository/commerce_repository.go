package repository

import (
	"context"

	"clipcast/internal/domain/entity"
)

// AdvertiserRepository persists advertiser profiles.
type AdvertiserRepository interface {
	Create(ctx context.Context, advertiser *entity.Advertiser) error
	IDs(ctx context.Context) ([]int64, error)
}

// CampaignRepository persists ad campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	List(ctx context.Context) ([]*entity.Campaign, error)
}

// PlanRepository persists the fixed subscription plan catalog.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.SubscriptionPlan) error
	IDs(ctx context.Context) ([]int64, error)
}

// SubscriptionRepository persists subscriber-creator-plan links.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
}
