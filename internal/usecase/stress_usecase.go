package usecase

import (
	"context"
	"time"
)

// Sample is one measured point of a load sequence.
type Sample struct {
	Load    int           `json:"load"`
	Elapsed time.Duration `json:"elapsed"`
}

// StressUsecase defines the interface for load measurement use cases. Each
// operation walks an ascending load sequence and returns one Sample per
// load; stores are left populated so read workloads can follow insert ones.
type StressUsecase interface {
	// RelationalInsert bulk-inserts uniquely numbered users per load,
	// committing at a fixed sub-interval, and measures the insert loop.
	RelationalInsert(ctx context.Context, loads []int) ([]Sample, error)

	// RelationalRead issues one LIMIT-bounded select per load and
	// measures the fetch.
	RelationalRead(ctx context.Context, loads []int) ([]Sample, error)

	// DocumentInsert bulk-writes view documents per load through batched
	// commits and measures the write loop.
	DocumentInsert(ctx context.Context, loads []int) ([]Sample, error)

	// DocumentRead issues an equality-filtered limited query per load and
	// measures the iteration.
	DocumentRead(ctx context.Context, loads []int) ([]Sample, error)
}
