package product

import (
	"context"
	"io"
	"log"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	logger   *log.Logger
}

// NewMemory returns a repository holding its own copy of seed.
func NewMemory(seed []domain.Product, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &memoryRepo{products: slices.Clone(seed), logger: logger}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		r.logger.Printf("product repo: get id=%s not found", id)
		return nil, domain.ErrNotFound
	}
	p := r.products[i]
	return &p, nil
}

func (r *memoryRepo) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.index(product.ID); i >= 0 {
		product.CreatedAt = r.products[i].CreatedAt
		r.products[i] = product
		r.logger.Printf("product repo: updated id=%s", product.ID)
		return &product, nil
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	r.products = append(r.products, product)
	r.logger.Printf("product repo: inserted id=%s", product.ID)
	return &product, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.products = slices.Delete(r.products, i, i+1)
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

func (r *memoryRepo) index(id string) int {
	return slices.IndexFunc(r.products, func(p domain.Product) bool { return p.ID == id })
}
