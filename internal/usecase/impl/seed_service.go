// Package impl contains the concrete application services.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clipcast/config"
	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/usecase"
	"clipcast/internal/util"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
)

// ErrEmptyPool is returned when a generator needs candidate rows that have
// not been seeded yet.
var ErrEmptyPool = errors.New("candidate pool is empty")

// planCatalog and giftCatalog are the fixed reference tables. Their insert
// order is the primary key order, which subscription seeding relies on to
// match plan durations to sampled plan IDs.
var planCatalog = []entity.SubscriptionPlan{
	{Name: "Starter", Price: 5.00, DurationDays: 30, Description: "Monthly supporter tier"},
	{Name: "Pro", Price: 15.00, DurationDays: 90, Description: "Quarterly supporter tier"},
	{Name: "Elite", Price: 30.00, DurationDays: 180, Description: "Half-year supporter tier"},
}

var giftCatalog = []entity.VirtualGift{
	{Name: "Rose", Price: 1.00},
	{Name: "Coffee", Price: 2.00},
	{Name: "Diamond", Price: 5.00},
	{Name: "Super Like", Price: 3.50},
	{Name: "Rocket", Price: 10.00},
}

var currencies = []string{"USD", "COP", "EUR"}

var reportReasons = []string{
	"Inappropriate content",
	"Spam",
	"Copyright issue",
	"Hate speech",
	"Violence",
}

type seedService struct {
	repos       repository.RepositoryFactory
	batch       repository.BatchManager
	maintenance repository.MaintenanceRepository
	config      *config.Config
	logger      *slog.Logger
	faker       *gofakeit.Faker
}

// NewSeedService creates a new seed service instance
func NewSeedService(
	repos repository.RepositoryFactory,
	batch repository.BatchManager,
	maintenance repository.MaintenanceRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SeedUsecase {
	return &seedService{
		repos:       repos,
		batch:       batch,
		maintenance: maintenance,
		config:      cfg,
		logger:      logger,
		faker:       gofakeit.New(0),
	}
}

func (s *seedService) checkpoint() int {
	if s.config.Seed == nil {
		return 0
	}

	return s.config.Seed.Checkpoint
}

// run wraps a batch execution with timing and checkpoint progress logs.
func (s *seedService) run(ctx context.Context, name string, total int, step func(repos repository.RepositoryFactory, i int) error) (*usecase.SeedResult, error) {
	start := time.Now()

	inserted, err := s.batch.Run(ctx, total, s.checkpoint(), step, func(committed int) {
		s.logger.Info("checkpoint committed", "entity", name, "committed", committed, "total", total)
	})
	if err != nil {
		return &usecase.SeedResult{Inserted: inserted, Elapsed: time.Since(start)},
			errors.Wrapf(err, "seeding %s failed after %d committed rows", name, inserted)
	}

	result := &usecase.SeedResult{Inserted: inserted, Elapsed: time.Since(start)}
	s.logger.Info("seeding finished", "entity", name, "inserted", inserted, "elapsed", util.FormatDuration(result.Elapsed))

	return result, nil
}

func (s *seedService) randomRole() entity.Role {
	switch n := s.faker.IntRange(0, 99); {
	case n < 85:
		return entity.RoleUser
	case n < 95:
		return entity.RoleCreator
	default:
		return entity.RoleAdmin
	}
}

func (s *seedService) SeedUsers(ctx context.Context, count int) (*usecase.SeedResult, error) {
	now := time.Now()

	return s.run(ctx, "users", count, func(repos repository.RepositoryFactory, i int) error {
		user := &entity.User{
			Name:             s.faker.FirstName(),
			LastName:         s.faker.LastName(),
			Username:         fmt.Sprintf("%s_%d", s.faker.Username(), i),
			Email:            fmt.Sprintf("%d_%s", i, s.faker.Email()),
			PasswordHash:     util.RandomHash(),
			RegistrationDate: s.faker.DateRange(now.AddDate(-2, 0, 0), now),
			ProfilePicURL:    s.faker.URL(),
			Role:             s.randomRole(),
			BirthDate:        s.faker.DateRange(now.AddDate(-70, 0, 0), now.AddDate(-18, 0, 0)),
		}

		return repos.Users().Create(ctx, user)
	})
}

func (s *seedService) SeedAdvertisers(ctx context.Context, count int) (*usecase.SeedResult, error) {
	return s.run(ctx, "advertisers", count, func(repos repository.RepositoryFactory, i int) error {
		advertiser := &entity.Advertiser{
			CompanyName: s.faker.Company(),
			BillingInfo: s.faker.Address().Address,
		}

		return repos.Advertisers().Create(ctx, advertiser)
	})
}

func (s *seedService) SeedCampaigns(ctx context.Context, count int) (*usecase.SeedResult, error) {
	advertiserIDs, err := s.repos.Advertisers().IDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(advertiserIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no advertisers to own campaigns")
	}

	now := time.Now()

	return s.run(ctx, "campaigns", count, func(repos repository.RepositoryFactory, i int) error {
		start := s.faker.DateRange(now.AddDate(-1, 0, 0), now)
		campaign := &entity.Campaign{
			AdvertiserID:      s.pick(advertiserIDs),
			Budget:            util.Round2(s.faker.Float64Range(100, 5000)),
			StartDate:         start,
			EndDate:           start.AddDate(0, 0, s.faker.IntRange(7, 30)),
			TargetingCriteria: s.faker.Sentence(6),
		}

		return repos.Campaigns().Create(ctx, campaign)
	})
}

func (s *seedService) SeedPlans(ctx context.Context) (*usecase.SeedResult, error) {
	return s.run(ctx, "plans", len(planCatalog), func(repos repository.RepositoryFactory, i int) error {
		plan := planCatalog[i]

		return repos.Plans().Create(ctx, &plan)
	})
}

func (s *seedService) SeedVideos(ctx context.Context, count int) (*usecase.SeedResult, error) {
	creatorIDs, err := s.repos.Users().IDsByRole(ctx, entity.RoleCreator)
	if err != nil {
		return nil, err
	}
	if len(creatorIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no creator users to own videos")
	}

	now := time.Now()

	return s.run(ctx, "videos", count, func(repos repository.RepositoryFactory, i int) error {
		video := &entity.Video{
			CreatorID:      s.pick(creatorIDs),
			Title:          s.faker.Sentence(4),
			Description:    s.faker.Sentence(12),
			Duration:       s.faker.IntRange(15, 600),
			UploadDatetime: s.faker.DateRange(now.AddDate(-2, 0, 0), now),
			Visibility:     s.randomVisibility(),
		}

		return repos.Videos().Create(ctx, video)
	})
}

func (s *seedService) randomVisibility() entity.Visibility {
	switch n := s.faker.IntRange(0, 99); {
	case n < 70:
		return entity.VisibilityPublic
	case n < 85:
		return entity.VisibilityPrivate
	default:
		return entity.VisibilityFollowersOnly
	}
}

func (s *seedService) SeedSubscriptions(ctx context.Context, count int) (*usecase.SeedResult, error) {
	userIDs, err := s.repos.Users().AllIDs(ctx)
	if err != nil {
		return nil, err
	}
	creatorIDs, err := s.repos.Users().IDsByRole(ctx, entity.RoleCreator)
	if err != nil {
		return nil, err
	}
	planIDs, err := s.repos.Plans().IDs(ctx)
	if err != nil {
		return nil, err
	}

	if len(userIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no users to subscribe")
	}
	if len(creatorIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no creator users to subscribe to")
	}
	if len(planIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no subscription plans seeded")
	}

	now := time.Now()

	return s.run(ctx, "subscriptions", count, func(repos repository.RepositoryFactory, i int) error {
		planIdx := s.faker.IntRange(0, len(planIDs)-1)
		start := s.faker.DateRange(now.AddDate(-1, 0, 0), now)

		subscription := &entity.Subscription{
			SubscriberID: s.pick(userIDs),
			CreatorID:    s.pick(creatorIDs),
			PlanID:       planIDs[planIdx],
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, planCatalog[planIdx%len(planCatalog)].DurationDays),
			Status:       s.randomSubscriptionStatus(),
		}

		return repos.Subscriptions().Create(ctx, subscription)
	})
}

func (s *seedService) randomSubscriptionStatus() entity.SubscriptionStatus {
	switch n := s.faker.IntRange(0, 99); {
	case n < 70:
		return entity.SubscriptionActive
	case n < 90:
		return entity.SubscriptionExpired
	default:
		return entity.SubscriptionCancelled
	}
}

func (s *seedService) SeedGifts(ctx context.Context) (*usecase.SeedResult, error) {
	return s.run(ctx, "gifts", len(giftCatalog), func(repos repository.RepositoryFactory, i int) error {
		gift := giftCatalog[i]

		return repos.Gifts().Create(ctx, &gift)
	})
}

func (s *seedService) SeedTransactions(ctx context.Context, count int) (*usecase.SeedResult, error) {
	userIDs, err := s.repos.Users().AllIDs(ctx)
	if err != nil {
		return nil, err
	}
	advertiserIDs, err := s.repos.Advertisers().IDs(ctx)
	if err != nil {
		return nil, err
	}

	if len(userIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no users to pay")
	}
	if len(advertiserIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no advertisers for ad payments")
	}

	now := time.Now()

	return s.run(ctx, "transactions", count, func(repos repository.RepositoryFactory, i int) error {
		tx := &entity.Transaction{
			UserID:              s.pick(userIDs),
			Amount:              util.Round2(s.faker.Float64Range(0.99, 100.00)),
			Currency:            currencies[s.faker.IntRange(0, len(currencies)-1)],
			Type:                s.randomTransactionType(),
			TransactionDatetime: s.faker.DateRange(now.AddDate(-1, 0, 0), now),
			Status:              s.faker.IntRange(0, 99) < 95,
		}

		if tx.Type == entity.TransactionAdPayment {
			advertiserID := s.pick(advertiserIDs)
			tx.AdvertiserID = &advertiserID
		}

		return repos.Transactions().Create(ctx, tx)
	})
}

func (s *seedService) randomTransactionType() entity.TransactionType {
	switch n := s.faker.IntRange(0, 99); {
	case n < 40:
		return entity.TransactionSubscription
	case n < 80:
		return entity.TransactionGift
	default:
		return entity.TransactionAdPayment
	}
}

func (s *seedService) SeedGiftTransactions(ctx context.Context, count int) (*usecase.SeedResult, error) {
	giftTxIDs, err := s.repos.Transactions().IDsByType(ctx, entity.TransactionGift)
	if err != nil {
		return nil, err
	}
	userIDs, err := s.repos.Users().AllIDs(ctx)
	if err != nil {
		return nil, err
	}
	giftIDs, err := s.repos.Gifts().IDs(ctx)
	if err != nil {
		return nil, err
	}

	if len(giftTxIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no gift-type transactions to link")
	}
	if len(userIDs) < 2 {
		return nil, errors.Wrap(ErrEmptyPool, "need at least two users for gift exchange")
	}
	if len(giftIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no virtual gifts seeded")
	}

	return s.run(ctx, "gift transactions", count, func(repos repository.RepositoryFactory, i int) error {
		senderID := s.pick(userIDs)
		receiverID := s.pick(userIDs)
		for receiverID == senderID {
			receiverID = s.pick(userIDs)
		}

		gt := &entity.GiftTransaction{
			TransactionID: s.pick(giftTxIDs),
			SenderID:      senderID,
			ReceiverID:    receiverID,
			GiftID:        s.pick(giftIDs),
		}

		return repos.GiftTransactions().Create(ctx, gt)
	})
}

func (s *seedService) SeedContentReports(ctx context.Context, count int) (*usecase.SeedResult, error) {
	videoIDs, err := s.repos.Videos().IDs(ctx)
	if err != nil {
		return nil, err
	}
	userIDs, err := s.repos.Users().AllIDs(ctx)
	if err != nil {
		return nil, err
	}
	adminIDs, err := s.repos.Users().IDsByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if len(videoIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no videos to report")
	}
	if len(userIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no users to report videos")
	}

	now := time.Now()

	return s.run(ctx, "content reports", count, func(repos repository.RepositoryFactory, i int) error {
		report := &entity.ContentReport{
			VideoID:    s.pick(videoIDs),
			ReporterID: s.pick(userIDs),
			Reason:     reportReasons[s.faker.IntRange(0, len(reportReasons)-1)],
			Status:     entity.ReportPending,
			ReportDate: s.faker.DateRange(now.AddDate(0, -6, 0), now),
		}

		// About half the reports have been handled by a moderator.
		if len(adminIDs) > 0 && s.faker.IntRange(0, 1) == 1 {
			adminID := s.pick(adminIDs)
			report.ReviewedBy = &adminID
			if s.faker.IntRange(0, 1) == 1 {
				report.Status = entity.ReportResolved
			} else {
				report.Status = entity.ReportRejected
			}
		}

		return repos.Reports().Create(ctx, report)
	})
}

func (s *seedService) SeedFollows(ctx context.Context, count int) (*usecase.SeedResult, error) {
	userIDs, err := s.repos.Users().AllIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(userIDs) < 2 {
		return nil, errors.Wrap(ErrEmptyPool, "need at least two users for follow edges")
	}

	// n users admit n*(n-1) distinct ordered edges; asking for more would
	// spin the fresh-pair search forever.
	maxEdges := len(userIDs) * (len(userIDs) - 1)
	if count > maxEdges {
		return nil, errors.Wrapf(ErrEmptyPool, "only %d distinct follow edges possible for %d users, %d requested", maxEdges, len(userIDs), count)
	}

	// The composite key rejects duplicate edges, so track pairs per run.
	seen := make(map[[2]int64]struct{}, count)
	now := time.Now()

	return s.run(ctx, "follows", count, func(repos repository.RepositoryFactory, i int) error {
		var followerID, followedID int64
		for {
			followerID = s.pick(userIDs)
			followedID = s.pick(userIDs)
			if followerID == followedID {
				continue
			}
			if _, dup := seen[[2]int64{followerID, followedID}]; dup {
				continue
			}

			break
		}
		seen[[2]int64{followerID, followedID}] = struct{}{}

		follow := &entity.Follow{
			FollowerID: followerID,
			FollowedID: followedID,
			FollowDate: s.faker.DateRange(now.AddDate(-1, 0, 0), now),
		}

		return repos.Follows().Create(ctx, follow)
	})
}

// SeedAll runs every generator in dependency order with the configured
// counts. Later generators sample rows committed by earlier ones.
func (s *seedService) SeedAll(ctx context.Context) (*usecase.SeedResult, error) {
	if s.config.Seed == nil {
		return nil, errors.New("seed config is required")
	}
	counts := s.config.Seed.Counts

	start := time.Now()
	total := 0

	steps := []func(context.Context) (*usecase.SeedResult, error){
		func(ctx context.Context) (*usecase.SeedResult, error) { return s.SeedUsers(ctx, counts.Users) },
		func(ctx context.Context) (*usecase.SeedResult, error) { return s.SeedAdvertisers(ctx, counts.Advertisers) },
		func(ctx context.Context) (*usecase.SeedResult, error) { return s.SeedCampaigns(ctx, counts.Campaigns) },
		s.SeedPlans,
		func(ctx context.Context) (*usecase.SeedResult, error) { return s.SeedVideos(ctx, counts.Videos) },
		func(ctx context.Context) (*usecase.SeedResult, error) {
			return s.SeedSubscriptions(ctx, counts.Subscriptions)
		},
		s.SeedGifts,
		func(ctx context.Context) (*usecase.SeedResult, error) { return s.SeedTransactions(ctx, counts.Transactions) },
		func(ctx context.Context) (*usecase.SeedResult, error) {
			return s.SeedGiftTransactions(ctx, counts.GiftTransactions)
		},
		func(ctx context.Context) (*usecase.SeedResult, error) {
			return s.SeedContentReports(ctx, counts.ContentReports)
		},
		func(ctx context.Context) (*usecase.SeedResult, error) { return s.SeedFollows(ctx, counts.Follows) },
	}

	for _, step := range steps {
		result, err := step(ctx)
		if err != nil {
			return &usecase.SeedResult{Inserted: total, Elapsed: time.Since(start)}, err
		}
		total += result.Inserted
	}

	return &usecase.SeedResult{Inserted: total, Elapsed: time.Since(start)}, nil
}

func (s *seedService) WipeRelational(ctx context.Context) error {
	s.logger.Warn("wiping all relational tables")

	return s.maintenance.WipeAll(ctx)
}

func (s *seedService) pick(pool []int64) int64 {
	return pool[s.faker.IntRange(0, len(pool)-1)]
}
