package usecase

import "context"

// ProjectionSummary counts the documents written during one projection run.
type ProjectionSummary struct {
	Videos    int `json:"videos"`
	Comments  int `json:"comments"`
	Reactions int `json:"reactions"`
	Views     int `json:"views"`
}

// ProjectionUsecase defines the interface for relational-to-document
// projection use cases. Video documents are idempotent upserts keyed by the
// relational ID; interaction documents are fresh appends on every run.
type ProjectionUsecase interface {
	// ProjectVideos projects one stable page of videos, starting at
	// offset, together with randomized interaction documents.
	ProjectVideos(ctx context.Context, offset, blockSize int) (*ProjectionSummary, error)

	// PopulateFeedCache writes a bounded random feed sample per user and
	// returns the number of users cached.
	PopulateFeedCache(ctx context.Context) (int, error)

	// WipeDocuments clears every derived collection.
	WipeDocuments(ctx context.Context) error
}
