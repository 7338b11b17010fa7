package repository

import (
	"context"

	"clipcast/internal/domain/entity"
)

// ReportRepository persists content reports.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.ContentReport) error
}

// FollowRepository persists follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow *entity.Follow) error
}

// MaintenanceRepository carries destructive store-wide operations used by
// the seeding binaries. Rows are deleted child-first so foreign keys never
// dangle mid-wipe.
type MaintenanceRepository interface {
	WipeAll(ctx context.Context) error
}
