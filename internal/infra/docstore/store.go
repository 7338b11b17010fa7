package docstore

import (
	"context"

	"clipcast/internal/domain/document"
	"clipcast/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

const (
	videosCollection    = "Videos"
	commentsCollection  = "Comments"
	reactionsCollection = "Reactions"
	viewsCollection     = "Views"
	feedCacheCollection = "FeedCache"

	// Firestore caps a single batched write at 500 documents.
	maxBatchDocs = 500
)

// documentStore implements the repository.DocumentStore interface.
type documentStore struct {
	client   *firestore.Client
	validate *validator.Validate
}

// NewDocumentStore is the constructor for documentStore.
func NewDocumentStore(client *firestore.Client) repository.DocumentStore {
	return &documentStore{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *documentStore) UpsertVideo(ctx context.Context, video *document.Video) error {
	if err := s.validate.Struct(video); err != nil {
		return errors.Wrap(err, "invalid video document")
	}

	_, err := s.client.Collection(videosCollection).Doc(video.ID).Set(ctx, video)
	if err != nil {
		return errors.Wrap(err, "failed to upsert video document")
	}

	return nil
}

func (s *documentStore) AddComment(ctx context.Context, videoID string, comment *document.Comment) error {
	if err := s.validate.Struct(comment); err != nil {
		return errors.Wrap(err, "invalid comment document")
	}

	_, err := s.client.Collection(videosCollection).
		Doc(videoID).
		Collection(commentsCollection).
		Doc(uuid.NewString()).
		Create(ctx, comment)
	if err != nil {
		return errors.Wrap(err, "failed to add comment document")
	}

	return nil
}

func (s *documentStore) AddReaction(ctx context.Context, reaction *document.Reaction) error {
	if err := s.validate.Struct(reaction); err != nil {
		return errors.Wrap(err, "invalid reaction document")
	}

	_, err := s.client.Collection(reactionsCollection).Doc(uuid.NewString()).Create(ctx, reaction)
	if err != nil {
		return errors.Wrap(err, "failed to add reaction document")
	}

	return nil
}

func (s *documentStore) AddView(ctx context.Context, view *document.View) error {
	if err := s.validate.Struct(view); err != nil {
		return errors.Wrap(err, "invalid view document")
	}

	_, err := s.client.Collection(viewsCollection).Doc(uuid.NewString()).Create(ctx, view)
	if err != nil {
		return errors.Wrap(err, "failed to add view document")
	}

	return nil
}

// BulkAddViews commits chunks of maxBatchDocs writes. A failing chunk does
// not roll back the chunks committed before it.
func (s *documentStore) BulkAddViews(ctx context.Context, views []*document.View) error {
	for _, view := range views {
		if err := s.validate.Struct(view); err != nil {
			return errors.Wrap(err, "invalid view document")
		}
	}

	batch := s.client.Batch()
	pending := 0

	for _, view := range views {
		ref := s.client.Collection(viewsCollection).Doc(uuid.NewString())
		batch.Create(ref, view)
		pending++

		if pending == maxBatchDocs {
			if _, err := batch.Commit(ctx); err != nil {
				return errors.Wrap(err, "failed to commit view batch")
			}

			batch = s.client.Batch()
			pending = 0
		}
	}

	if pending > 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return errors.Wrap(err, "failed to commit view batch")
		}
	}

	return nil
}

func (s *documentStore) SetFeedCache(ctx context.Context, userID string, feed *document.FeedCache) error {
	if err := s.validate.Struct(feed); err != nil {
		return errors.Wrap(err, "invalid feed cache document")
	}

	_, err := s.client.Collection(feedCacheCollection).Doc(userID).Set(ctx, feed)
	if err != nil {
		return errors.Wrap(err, "failed to set feed cache document")
	}

	return nil
}

func (s *documentStore) VideosPage(ctx context.Context, limit int) ([]*document.Video, error) {
	iter := s.client.Collection(videosCollection).Limit(limit).Documents(ctx)
	defer iter.Stop()

	videos := make([]*document.Video, 0, limit)

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read video documents")
		}

		video := &document.Video{}
		if err := doc.DataTo(video); err != nil {
			return nil, errors.Wrap(err, "failed to decode video document")
		}
		video.ID = doc.Ref.ID

		videos = append(videos, video)
	}

	return videos, nil
}

func (s *documentStore) ViewsByVideo(ctx context.Context, videoID string, limit int) ([]*document.View, error) {
	iter := s.client.Collection(viewsCollection).
		Where("video_id", "==", videoID).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	views := make([]*document.View, 0, limit)

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read view documents")
		}

		view := &document.View{}
		if err := doc.DataTo(view); err != nil {
			return nil, errors.Wrap(err, "failed to decode view document")
		}

		views = append(views, view)
	}

	return views, nil
}

// Wipe clears every derived collection. Comment subcollections must go
// before their parent video document, otherwise the comments become
// orphaned and invisible to collection listings.
func (s *documentStore) Wipe(ctx context.Context) error {
	videoRefs := s.client.Collection(videosCollection).DocumentRefs(ctx)
	for {
		ref, err := videoRefs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to list video documents")
		}

		if err := s.deleteCollection(ctx, ref.Collection(commentsCollection)); err != nil {
			return err
		}
	}

	for _, name := range []string{videosCollection, reactionsCollection, viewsCollection, feedCacheCollection} {
		if err := s.deleteCollection(ctx, s.client.Collection(name)); err != nil {
			return err
		}
	}

	return nil
}

func (s *documentStore) deleteCollection(ctx context.Context, coll *firestore.CollectionRef) error {
	for {
		// Limit returns a Query, which only exposes snapshots; delete
		// through each snapshot's ref.
		docs, err := coll.Limit(maxBatchDocs).Documents(ctx).GetAll()
		if err != nil {
			return errors.Wrapf(err, "failed to list %s documents", coll.ID)
		}
		if len(docs) == 0 {
			return nil
		}

		batch := s.client.Batch()
		for _, doc := range docs {
			batch.Delete(doc.Ref)
		}

		if _, err := batch.Commit(ctx); err != nil {
			return errors.Wrapf(err, "failed to delete %s documents", coll.ID)
		}
	}
}
