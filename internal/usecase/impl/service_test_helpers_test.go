package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"clipcast/config"
	"clipcast/internal/domain/document"
	"clipcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB opens an isolated in-memory SQLite database with the full
// schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:impl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.AdvertiserModel{},
		&model.CampaignModel{},
		&model.SubscriptionPlanModel{},
		&model.SubscriptionModel{},
		&model.VideoModel{},
		&model.VirtualGiftModel{},
		&model.TransactionModel{},
		&model.GiftTransactionModel{},
		&model.ContentReportModel{},
		&model.FollowModel{},
	))

	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Seed: &config.SeedConfig{
			Checkpoint: 50,
			Counts: config.SeedCounts{
				Users:            40,
				Advertisers:      3,
				Campaigns:        10,
				Videos:           20,
				Subscriptions:    15,
				Transactions:     30,
				GiftTransactions: 10,
				ContentReports:   8,
				Follows:          25,
			},
		},
		Projection: &config.ProjectionConfig{
			BlockSize:       10,
			MaxInteractions: 5,
		},
		Stress: &config.StressConfig{
			InsertLoads:          []int{5, 7},
			ReadLoads:            []int{3, 6},
			RelationalCheckpoint: 20,
		},
	}

	return cfg
}

// fakeDocumentStore is an in-memory stand-in for the document database.
type fakeDocumentStore struct {
	videos    map[string]*document.Video
	comments  map[string][]*document.Comment
	reactions []*document.Reaction
	views     []*document.View
	feeds     map[string]*document.FeedCache
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{
		videos:   make(map[string]*document.Video),
		comments: make(map[string][]*document.Comment),
		feeds:    make(map[string]*document.FeedCache),
	}
}

func (f *fakeDocumentStore) UpsertVideo(_ context.Context, video *document.Video) error {
	copied := *video
	f.videos[video.ID] = &copied

	return nil
}

func (f *fakeDocumentStore) AddComment(_ context.Context, videoID string, comment *document.Comment) error {
	copied := *comment
	f.comments[videoID] = append(f.comments[videoID], &copied)

	return nil
}

func (f *fakeDocumentStore) AddReaction(_ context.Context, reaction *document.Reaction) error {
	copied := *reaction
	f.reactions = append(f.reactions, &copied)

	return nil
}

func (f *fakeDocumentStore) AddView(_ context.Context, view *document.View) error {
	copied := *view
	f.views = append(f.views, &copied)

	return nil
}

func (f *fakeDocumentStore) BulkAddViews(ctx context.Context, views []*document.View) error {
	for _, view := range views {
		if err := f.AddView(ctx, view); err != nil {
			return err
		}
	}

	return nil
}

func (f *fakeDocumentStore) SetFeedCache(_ context.Context, userID string, feed *document.FeedCache) error {
	copied := *feed
	copied.VideoIDs = append([]string(nil), feed.VideoIDs...)
	f.feeds[userID] = &copied

	return nil
}

func (f *fakeDocumentStore) VideosPage(_ context.Context, limit int) ([]*document.Video, error) {
	page := make([]*document.Video, 0, limit)
	for _, video := range f.videos {
		if len(page) == limit {
			break
		}
		page = append(page, video)
	}

	return page, nil
}

func (f *fakeDocumentStore) ViewsByVideo(_ context.Context, videoID string, limit int) ([]*document.View, error) {
	matches := make([]*document.View, 0, limit)
	for _, view := range f.views {
		if view.VideoID != videoID {
			continue
		}
		matches = append(matches, view)
		if len(matches) == limit {
			break
		}
	}

	return matches, nil
}

func (f *fakeDocumentStore) Wipe(context.Context) error {
	f.videos = make(map[string]*document.Video)
	f.comments = make(map[string][]*document.Comment)
	f.reactions = nil
	f.views = nil
	f.feeds = make(map[string]*document.FeedCache)

	return nil
}

func (f *fakeDocumentStore) interactionCount() int {
	total := len(f.reactions) + len(f.views)
	for _, comments := range f.comments {
		total += len(comments)
	}

	return total
}

// uniqueSuffix keeps hand-inserted usernames from colliding with generated
// ones inside a single test database.
func uniqueSuffix() string {
	return uuid.NewString()[:8]
}
