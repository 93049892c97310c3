package service

import (
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.FilterController = (*FilterService)(nil)
var _ port.StorefrontViewer = (*FilterService)(nil)

// FilterService owns the single filter state instance and recomputes the
// visible product list on every mutation.
type FilterService struct {
	catalog port.CatalogReader

	mu    sync.Mutex
	state domain.FilterState
}

func NewFilterService(catalog port.CatalogReader) *FilterService {
	return &FilterService{
		catalog: catalog,
		state:   domain.DefaultFilterState(),
	}
}

func (s *FilterService) SetQuery(q string) domain.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Query = q
	return s.view()
}

func (s *FilterService) SetMaxPrice(max float64) domain.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MaxPrice = max
	return s.view()
}

// SetCategory selects c exclusively, replacing any previous selection.
// An empty c means "all categories".
func (s *FilterService) SetCategory(c string) domain.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Category = c
	return s.view()
}

func (s *FilterService) SetSort(m domain.SortMode) domain.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sort = m
	return s.view()
}

// Reset restores the default criteria. Idempotent.
func (s *FilterService) Reset() domain.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.DefaultFilterState()
	return s.view()
}

func (s *FilterService) View() domain.StorefrontView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// view is called with s.mu held.
func (s *FilterService) view() domain.StorefrontView {
	vs := domain.VisibleProducts(s.catalog.Products(), s.state)
	return domain.StorefrontView{Products: vs, Total: len(vs), Filter: s.state}
}
