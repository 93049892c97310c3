package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/sync/singleflight"
)

var _ port.CatalogRefresher = (*CatalogService)(nil)
var _ port.CatalogReader = (*CatalogService)(nil)

// CatalogService owns the current product and category lists.
//
// Refresh replaces both lists atomically: on a fetch failure the fixed
// fallback catalog is installed instead, never a mix of remote and
// fallback data.
type CatalogService struct {
	fetcher port.CatalogFetcher

	mu      sync.RWMutex
	catalog domain.Catalog

	group singleflight.Group
}

func NewCatalogService(fetcher port.CatalogFetcher) *CatalogService {
	return &CatalogService{fetcher: fetcher}
}

// Refresh loads the catalog from the remote source, falling back to the
// built-in dataset on any fetch error. The operation never fails from
// the caller's point of view.
//
// Overlapping calls are collapsed: a trigger that arrives while a load
// is in flight joins it instead of interleaving writes.
func (s *CatalogService) Refresh(ctx context.Context) {
	const op = "CatalogService.Refresh"
	log := slog.With("op", op)

	s.group.Do("refresh", func() (any, error) {
		c, err := s.fetcher.FetchCatalog(ctx)
		if err != nil {
			log.Warn("using fallback catalog", "err", err)
			c = domain.FallbackCatalog()
		}

		s.mu.Lock()
		s.catalog = c
		s.mu.Unlock()

		log.Info("catalog loaded",
			"nProducts", len(c.Products), "nCategories", len(c.Categories))
		return nil, nil
	})
}

func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps := make([]domain.Product, len(s.catalog.Products))
	copy(ps, s.catalog.Products)
	return ps
}

func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs := make([]string, len(s.catalog.Categories))
	copy(cs, s.catalog.Categories)
	return cs
}
