package repository

import (
	"context"

	"clipcast/internal/domain/entity"
)

// VideoRepository persists and pages video rows.
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error

	// IDs returns every committed video ID.
	IDs(ctx context.Context) ([]int64, error)

	// Page returns up to limit videos starting at offset, ordered by
	// primary key. Pages are stable as long as the table is not mutated
	// concurrently.
	Page(ctx context.Context, offset, limit int) ([]*entity.Video, error)
}
