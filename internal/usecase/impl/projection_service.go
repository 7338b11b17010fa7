package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"clipcast/config"
	"clipcast/internal/domain/document"
	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/usecase"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
)

const feedCacheSampleSize = 20

type projectionService struct {
	videos repository.VideoRepository
	users  repository.UserRepository
	store  repository.DocumentStore
	config *config.Config
	logger *slog.Logger
	faker  *gofakeit.Faker
}

// NewProjectionService creates a new projection service instance
func NewProjectionService(
	videos repository.VideoRepository,
	users repository.UserRepository,
	store repository.DocumentStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProjectionUsecase {
	return &projectionService{
		videos: videos,
		users:  users,
		store:  store,
		config: cfg,
		logger: logger,
		faker:  gofakeit.New(0),
	}
}

func (s *projectionService) maxInteractions() int {
	if s.config.Projection == nil {
		return 0
	}

	return s.config.Projection.MaxInteractions
}

// ProjectVideos copies one page of relational videos into the document
// store. The video document itself is an idempotent upsert; the comments,
// reactions and views written around it are fresh appends, so rerunning a
// block grows interaction volume without duplicating videos.
func (s *projectionService) ProjectVideos(ctx context.Context, offset, blockSize int) (*usecase.ProjectionSummary, error) {
	page, err := s.videos.Page(ctx, offset, blockSize)
	if err != nil {
		return nil, err
	}

	// Admins moderate, they do not comment or react.
	audienceIDs, err := s.users.IDsByRole(ctx, entity.RoleUser, entity.RoleCreator, entity.RoleAdvertiser)
	if err != nil {
		return nil, err
	}
	if len(audienceIDs) == 0 {
		return nil, errors.Wrap(ErrEmptyPool, "no non-admin users to interact with videos")
	}

	summary := &usecase.ProjectionSummary{}

	for _, video := range page {
		videoID := strconv.FormatInt(video.ID, 10)

		doc := &document.Video{
			ID:             videoID,
			CreatorID:      video.CreatorID,
			Title:          video.Title,
			Description:    video.Description,
			Duration:       video.Duration,
			UploadDatetime: video.UploadDatetime,
			Visibility:     video.Visibility.String(),
		}
		if err := s.store.UpsertVideo(ctx, doc); err != nil {
			return summary, err
		}
		summary.Videos++

		if err := s.projectInteractions(ctx, videoID, audienceIDs, summary); err != nil {
			return summary, err
		}
	}

	s.logger.Info("projection block finished",
		"offset", offset,
		"videos", summary.Videos,
		"comments", summary.Comments,
		"reactions", summary.Reactions,
		"views", summary.Views,
	)

	return summary, nil
}

func (s *projectionService) projectInteractions(ctx context.Context, videoID string, audienceIDs []int64, summary *usecase.ProjectionSummary) error {
	now := time.Now()
	maxN := s.maxInteractions()

	for range s.faker.IntRange(0, maxN) {
		comment := &document.Comment{
			UserID:    s.pick(audienceIDs),
			Text:      s.faker.Sentence(8),
			Timestamp: s.faker.DateRange(now.AddDate(0, -6, 0), now),
		}
		if err := s.store.AddComment(ctx, videoID, comment); err != nil {
			return err
		}
		summary.Comments++
	}

	for range s.faker.IntRange(0, maxN) {
		reaction := &document.Reaction{
			UserID:    s.pick(audienceIDs),
			VideoID:   videoID,
			Type:      document.ReactionTypes[s.faker.IntRange(0, len(document.ReactionTypes)-1)],
			Timestamp: s.faker.DateRange(now.AddDate(0, -6, 0), now),
		}
		if err := s.store.AddReaction(ctx, reaction); err != nil {
			return err
		}
		summary.Reactions++
	}

	for range s.faker.IntRange(0, maxN) {
		view := &document.View{
			UserID:       s.pick(audienceIDs),
			VideoID:      videoID,
			WatchTimeSec: s.faker.IntRange(5, 300),
			Timestamp:    s.faker.DateRange(now.AddDate(0, -6, 0), now),
		}
		if err := s.store.AddView(ctx, view); err != nil {
			return err
		}
		summary.Views++
	}

	return nil
}

// PopulateFeedCache writes one bounded feed sample per user. Samples are
// drawn without replacement, so a feed never repeats a video.
func (s *projectionService) PopulateFeedCache(ctx context.Context) (int, error) {
	userIDs, err := s.users.AllIDs(ctx)
	if err != nil {
		return 0, err
	}
	videoIDs, err := s.videos.IDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(videoIDs) == 0 {
		return 0, errors.Wrap(ErrEmptyPool, "no videos to recommend")
	}

	cached := 0
	for _, userID := range userIDs {
		feed := &document.FeedCache{
			VideoIDs:  s.sampleVideoIDs(videoIDs),
			UpdatedAt: time.Now(),
		}

		if err := s.store.SetFeedCache(ctx, strconv.FormatInt(userID, 10), feed); err != nil {
			return cached, err
		}
		cached++
	}

	s.logger.Info("feed cache populated", "users", cached)

	return cached, nil
}

// sampleVideoIDs draws up to feedCacheSampleSize distinct IDs via a partial
// Fisher-Yates shuffle over a scratch copy of the pool.
func (s *projectionService) sampleVideoIDs(videoIDs []int64) []string {
	k := feedCacheSampleSize
	if len(videoIDs) < k {
		k = len(videoIDs)
	}

	scratch := make([]int64, len(videoIDs))
	copy(scratch, videoIDs)

	sample := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := s.faker.IntRange(i, len(scratch)-1)
		scratch[i], scratch[j] = scratch[j], scratch[i]
		sample = append(sample, strconv.FormatInt(scratch[i], 10))
	}

	return sample
}

func (s *projectionService) WipeDocuments(ctx context.Context) error {
	s.logger.Warn("wiping all document collections")

	return s.store.Wipe(ctx)
}

func (s *projectionService) pick(pool []int64) int64 {
	return pool[s.faker.IntRange(0, len(pool)-1)]
}
