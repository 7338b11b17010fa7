package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clipcast/config"
	"clipcast/internal/domain/document"
	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/usecase"
	"clipcast/internal/util"

	"github.com/brianvoe/gofakeit/v7"
)

// stressUserPrefix names bulk-inserted rows so reruns can resume numbering
// from whatever a previous run left behind.
const stressUserPrefix = "bigdata_user_"

// stressVideoID is the synthetic video every stress view references, which
// gives the read workload an equality filter with guaranteed hits.
const stressVideoID = "stress_probe"

type stressService struct {
	users  repository.UserRepository
	batch  repository.BatchManager
	store  repository.DocumentStore
	config *config.Config
	logger *slog.Logger
	faker  *gofakeit.Faker
}

// NewStressService creates a new stress service instance
func NewStressService(
	users repository.UserRepository,
	batch repository.BatchManager,
	store repository.DocumentStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StressUsecase {
	return &stressService{
		users:  users,
		batch:  batch,
		store:  store,
		config: cfg,
		logger: logger,
		faker:  gofakeit.New(0),
	}
}

func (s *stressService) relationalCheckpoint() int {
	if s.config.Stress == nil {
		return 0
	}

	return s.config.Stress.RelationalCheckpoint
}

func (s *stressService) RelationalInsert(ctx context.Context, loads []int) ([]usecase.Sample, error) {
	samples := make([]usecase.Sample, 0, len(loads))

	for _, load := range loads {
		maxSeq, err := s.users.MaxSeedSequence(ctx, stressUserPrefix)
		if err != nil {
			return samples, err
		}
		next := maxSeq + 1

		now := time.Now()
		start := time.Now()

		_, err = s.batch.Run(ctx, load, s.relationalCheckpoint(), func(repos repository.RepositoryFactory, i int) error {
			seq := next + i
			user := &entity.User{
				Name:             s.faker.FirstName(),
				LastName:         s.faker.LastName(),
				Username:         fmt.Sprintf("%s%d", stressUserPrefix, seq),
				Email:            fmt.Sprintf("%s%d@loadtest.local", stressUserPrefix, seq),
				PasswordHash:     util.RandomHash(),
				RegistrationDate: now,
				ProfilePicURL:    s.faker.URL(),
				Role:             entity.RoleAdvertiser,
				BirthDate:        now.AddDate(-30, 0, 0),
			}

			return repos.Users().Create(ctx, user)
		}, nil)
		if err != nil {
			return samples, err
		}

		sample := usecase.Sample{Load: load, Elapsed: time.Since(start)}
		samples = append(samples, sample)
		s.logger.Info("relational insert sample", "load", load, "elapsed", util.FormatDuration(sample.Elapsed))
	}

	return samples, nil
}

func (s *stressService) RelationalRead(ctx context.Context, loads []int) ([]usecase.Sample, error) {
	samples := make([]usecase.Sample, 0, len(loads))

	for _, load := range loads {
		start := time.Now()

		rows, err := s.users.Page(ctx, load)
		if err != nil {
			return samples, err
		}

		sample := usecase.Sample{Load: load, Elapsed: time.Since(start)}
		samples = append(samples, sample)
		s.logger.Info("relational read sample", "load", load, "rows", len(rows), "elapsed", util.FormatDuration(sample.Elapsed))
	}

	return samples, nil
}

func (s *stressService) DocumentInsert(ctx context.Context, loads []int) ([]usecase.Sample, error) {
	samples := make([]usecase.Sample, 0, len(loads))

	for _, load := range loads {
		now := time.Now()

		views := make([]*document.View, 0, load)
		for i := 0; i < load; i++ {
			views = append(views, &document.View{
				UserID:       int64(s.faker.IntRange(1, 1_000_000)),
				VideoID:      stressVideoID,
				WatchTimeSec: s.faker.IntRange(5, 300),
				Timestamp:    now,
			})
		}

		start := time.Now()
		if err := s.store.BulkAddViews(ctx, views); err != nil {
			return samples, err
		}

		sample := usecase.Sample{Load: load, Elapsed: time.Since(start)}
		samples = append(samples, sample)
		s.logger.Info("document insert sample", "load", load, "elapsed", util.FormatDuration(sample.Elapsed))
	}

	return samples, nil
}

func (s *stressService) DocumentRead(ctx context.Context, loads []int) ([]usecase.Sample, error) {
	samples := make([]usecase.Sample, 0, len(loads))

	for _, load := range loads {
		start := time.Now()

		views, err := s.store.ViewsByVideo(ctx, stressVideoID, load)
		if err != nil {
			return samples, err
		}

		sample := usecase.Sample{Load: load, Elapsed: time.Since(start)}
		samples = append(samples, sample)
		s.logger.Info("document read sample", "load", load, "docs", len(views), "elapsed", util.FormatDuration(sample.Elapsed))
	}

	return samples, nil
}
