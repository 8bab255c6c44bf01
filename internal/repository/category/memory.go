package category

import (
	"context"
	"slices"
	"sync"

	"storefront/internal/domain"
)

type memoryRepo struct {
	mu         sync.RWMutex
	categories []domain.Category
}

func NewMemory(seed []domain.Category) Repository {
	return &memoryRepo{categories: slices.Clone(seed)}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.categories), nil
}

func (r *memoryRepo) Upsert(_ context.Context, c domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.IndexFunc(r.categories, func(x domain.Category) bool { return x.ID == c.ID }); i >= 0 {
		r.categories[i] = c
	} else {
		r.categories = append(r.categories, c)
	}
	return &c, nil
}
