package leads

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo stores leads in memory and is safe for concurrent use. It backs
// local development runs without a database.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]Lead
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[uuid.UUID]Lead)}
}

// Create stores the lead.
func (r *MemoryRepo) Create(ctx context.Context, lead Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[lead.ID] = lead
	return nil
}

// GetByID returns a lead by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	if err := ctx.Err(); err != nil {
		return Lead{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	lead, ok := r.byID[id]
	if !ok {
		return Lead{}, ErrNotFound
	}
	return lead, nil
}

// List returns leads newest first with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]Lead, 0, len(r.byID))
	for _, lead := range r.byID {
		all = append(all, lead)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []Lead{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
