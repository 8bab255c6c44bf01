package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/notify"
	productrepo "storefront/internal/repository/product"
)

// DefaultFeaturedLimit is the number of featured products on the home page.
const DefaultFeaturedLimit = 4

type Service struct {
	repo     productrepo.Repository
	notifier notify.Notifier
	logger   *log.Logger
}

func New(repo productrepo.Repository, notifier notify.Notifier, logger *log.Logger) *Service {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// List returns the catalog filtered and ordered by c.
func (s *Service) List(ctx context.Context, c catalog.Criteria) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return catalog.Apply(products, c), nil
}

// Featured returns up to limit featured products in catalog order.
// A limit below 1 means DefaultFeaturedLimit.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, 0, limit)
	for _, p := range products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Facets describes the filter options offered for the whole catalog.
func (s *Service) Facets(ctx context.Context) (catalog.Facets, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return catalog.Facets{}, fmt.Errorf("list products: %w", err)
	}
	return catalog.BuildFacets(products), nil
}

// Create validates p, assigns a fresh id and stores it.
func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p = normalize(p)
	if err := validate(p); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error(userMessage(err)))
		return nil, err
	}
	p.ID = uuid.NewString()
	created, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	notify.Emit(ctx, s.notifier, notify.Success("Product added"))
	s.logger.Printf("product service: created id=%s name=%q", created.ID, created.Name)
	return created, nil
}

// Update replaces the stored product id with p.
func (s *Service) Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	p = normalize(p)
	p.ID = id
	if err := validate(p); err != nil {
		notify.Emit(ctx, s.notifier, notify.Error(userMessage(err)))
		return nil, err
	}
	updated, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	notify.Emit(ctx, s.notifier, notify.Success("Product updated"))
	s.logger.Printf("product service: updated id=%s", id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	notify.Emit(ctx, s.notifier, notify.Success("Product deleted"))
	s.logger.Printf("product service: deleted id=%s", id)
	return nil
}
