// Package repository defines the persistence interfaces of the domain layer.
// Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"clipcast/internal/domain/entity"
)

// UserRepository persists and samples user rows.
type UserRepository interface {
	// Create persists a new user row.
	Create(ctx context.Context, user *entity.User) error

	// IDsByRole returns the IDs of all committed users holding any of the
	// given roles. It reads fresh state on every call so candidate pools
	// never go stale across process restarts.
	IDsByRole(ctx context.Context, roles ...entity.Role) ([]int64, error)

	// AllIDs returns every committed user ID.
	AllIDs(ctx context.Context) ([]int64, error)

	// MaxSeedSequence scans usernames of the form <prefix><n> and returns
	// the highest n found. Rows matching the prefix but not the numeric
	// form are ignored. Returns -1 when no row matches, so callers start
	// the next run at max+1 = 0.
	MaxSeedSequence(ctx context.Context, prefix string) (int, error)

	// Page returns up to limit users in primary key order.
	Page(ctx context.Context, limit int) ([]*entity.User, error)
}
