package conversions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Conversion
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a conversion.
func (r *MemoryRepo) Create(ctx context.Context, conv Conversion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, conv)
	return nil
}

// UpdateStatus changes the status of a stored conversion.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, id, status, errMsg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.data {
		if r.data[i].ID == id {
			r.data[i].Status = status
			r.data[i].Error = errMsg
			return nil
		}
	}
	return ErrNotFound
}

// List returns conversions newest first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Conversion, error) {
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
	convs := make([]Conversion, len(r.data))
	copy(convs, r.data)
	r.mu.RUnlock()

	if offset >= len(convs) {
		return []Conversion{}, nil
	}

	sort.SliceStable(convs, func(i, j int) bool {
		return convs[i].CreatedAt.After(convs[j].CreatedAt)
	})

	end := len(convs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return convs[offset:end], nil
}
