package postgres

import (
	"context"

	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// advertiserRepository implements the repository.AdvertiserRepository interface.
type advertiserRepository struct {
	db *gorm.DB
}

// NewAdvertiserRepository is the constructor for advertiserRepository.
func NewAdvertiserRepository(db *gorm.DB) repository.AdvertiserRepository {
	return &advertiserRepository{db: db}
}

func (repo *advertiserRepository) Create(ctx context.Context, advertiser *entity.Advertiser) error {
	advertiserM := &model.AdvertiserModel{
		ID:          advertiser.ID,
		CompanyName: advertiser.CompanyName,
		BillingInfo: advertiser.BillingInfo,
	}

	if err := repo.db.WithContext(ctx).Create(advertiserM).Error; err != nil {
		return errors.Wrap(err, "failed to create advertiser")
	}

	advertiser.ID = advertiserM.ID

	return nil
}

func (repo *advertiserRepository) IDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AdvertiserModel{}).
		Pluck("advertiser_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list advertiser ids")
	}

	return ids, nil
}

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := &model.CampaignModel{
		ID:                campaign.ID,
		AdvertiserID:      campaign.AdvertiserID,
		Budget:            campaign.Budget,
		StartDate:         campaign.StartDate,
		EndDate:           campaign.EndDate,
		TargetingCriteria: campaign.TargetingCriteria,
	}

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "advertiser does not exist")
		}

		return errors.Wrap(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID

	return nil
}

func (repo *campaignRepository) List(ctx context.Context) ([]*entity.Campaign, error) {
	var campaignMs []model.CampaignModel
	if err := repo.db.WithContext(ctx).
		Order("campaign_id").
		Find(&campaignMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignMs))
	for i := range campaignMs {
		c := campaignMs[i]
		campaigns = append(campaigns, &entity.Campaign{
			ID:                c.ID,
			AdvertiserID:      c.AdvertiserID,
			Budget:            c.Budget,
			StartDate:         c.StartDate,
			EndDate:           c.EndDate,
			TargetingCriteria: c.TargetingCriteria,
		})
	}

	return campaigns, nil
}

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (repo *planRepository) Create(ctx context.Context, plan *entity.SubscriptionPlan) error {
	planM := &model.SubscriptionPlanModel{
		ID:           plan.ID,
		Name:         plan.Name,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		Description:  plan.Description,
	}

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		return errors.Wrap(err, "failed to create subscription plan")
	}

	plan.ID = planM.ID

	return nil
}

func (repo *planRepository) IDs(ctx context.Context) ([]int64, error) {
	// Primary key order, because callers pair plan IDs with the catalog
	// entry inserted at the same position.
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionPlanModel{}).
		Order("plan_id").
		Pluck("plan_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plan ids")
	}

	return ids, nil
}

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := &model.SubscriptionModel{
		ID:           subscription.ID,
		SubscriberID: subscription.SubscriberID,
		CreatorID:    subscription.CreatorID,
		PlanID:       subscription.PlanID,
		StartDate:    subscription.StartDate,
		EndDate:      subscription.EndDate,
		Status:       subscription.Status.String(),
	}

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "subscriber, creator or plan does not exist")
		}

		return errors.Wrap(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID

	return nil
}
