package bill

import (
	"context"
	"errors"
	"sync"
)

var ErrNoBills = errors.New("no bills recorded")

type Repository interface {
	Save(ctx context.Context, snap Snapshot) error
	// Latest returns the most recently finalized bill across all tables.
	Latest(ctx context.Context) (*Snapshot, error)
	// LatestForTable returns the most recent bill for one table.
	LatestForTable(ctx context.Context, table string) (*Snapshot, error)
}

// MemoryRepository keeps bills in memory, for tests and local runs.
type MemoryRepository struct {
	mu    sync.Mutex
	bills []Snapshot
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(_ context.Context, snap Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = append(r.bills, snap)
	return nil
}

func (r *MemoryRepository) Latest(_ context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.bills) == 0 {
		return nil, ErrNoBills
	}
	snap := r.bills[len(r.bills)-1]
	return &snap, nil
}

func (r *MemoryRepository) LatestForTable(_ context.Context, table string) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.bills) - 1; i >= 0; i-- {
		if r.bills[i].Table == table {
			snap := r.bills[i]
			return &snap, nil
		}
	}
	return nil, ErrNoBills
}
