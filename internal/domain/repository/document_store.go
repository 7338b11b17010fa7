package repository

import (
	"context"

	"clipcast/internal/domain/document"
)

// DocumentStore abstracts the document database. Writes are independent
// per-document operations: there is no transaction spanning several calls,
// and a bulk write commits in store-sized chunks rather than atomically.
type DocumentStore interface {
	// UpsertVideo writes the video document keyed by its relational ID.
	// Repeating the call overwrites the same document.
	UpsertVideo(ctx context.Context, video *document.Video) error

	// AddComment appends a comment to the video's Comments subcollection.
	AddComment(ctx context.Context, videoID string, comment *document.Comment) error

	// AddReaction appends a reaction document.
	AddReaction(ctx context.Context, reaction *document.Reaction) error

	// AddView appends a view document.
	AddView(ctx context.Context, view *document.View) error

	// BulkAddViews writes views through a batched write object, committing
	// every time the per-call document ceiling is reached. Chunks already
	// committed stay durable if a later chunk fails.
	BulkAddViews(ctx context.Context, views []*document.View) error

	// SetFeedCache overwrites the cached feed for one user.
	SetFeedCache(ctx context.Context, userID string, feed *document.FeedCache) error

	// VideosPage reads up to limit video documents.
	VideosPage(ctx context.Context, limit int) ([]*document.Video, error)

	// ViewsByVideo reads up to limit views of one video.
	ViewsByVideo(ctx context.Context, videoID string, limit int) ([]*document.View, error)

	// Wipe deletes every derived collection, including per-video comment
	// subcollections. Document data is regenerable, so this is safe.
	Wipe(ctx context.Context) error
}
