package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var ErrNotFound = errors.New("product not found")

const cartStateKey = "cart"

const checkoutMessage = "checkout flow is not implemented, demo only"

var _ port.CartController = (*CartService)(nil)

// cartLineState is the persisted snapshot shape of one cart line.
type cartLineState struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	Qty      int     `json:"qty"`
}

// CartService is the cart state machine. Every mutation synchronously
// writes a full snapshot to the state store; a failed write is logged
// and never fails the mutation itself.
type CartService struct {
	catalog port.CatalogReader
	store   port.StateStore

	mu   sync.Mutex
	cart domain.Cart
}

// NewCartService restores the persisted cart snapshot. An absent or
// malformed snapshot yields an empty cart, not an error.
func NewCartService(
	ctx context.Context, catalog port.CatalogReader, store port.StateStore,
) *CartService {
	s := &CartService{catalog: catalog, store: store}
	s.restore(ctx)
	return s
}

func (s *CartService) restore(ctx context.Context) {
	const op = "CartService.restore"
	log := slog.With("op", op)

	v, ok, err := s.store.Read(ctx, cartStateKey)
	if err != nil {
		log.Error("failed to read cart snapshot", "err", err)
		return
	}
	if !ok {
		return
	}

	var lines []cartLineState
	if err := json.Unmarshal([]byte(v), &lines); err != nil {
		log.Warn("malformed cart snapshot, starting empty", "err", err)
		return
	}

	for _, l := range lines {
		if l.Qty < 1 {
			continue
		}
		s.cart = append(s.cart, domain.CartLine{
			Product: domain.Product{
				ID:       l.ID,
				Title:    l.Title,
				Price:    l.Price,
				Category: l.Category,
				Image:    l.Image,
				Rating:   l.Rating,
			},
			Qty: l.Qty,
		})
	}
	log.Info("cart restored", "nLines", len(s.cart))
}

func (s *CartService) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add puts one unit of the identified catalog product into the cart,
// snapshotting the product at this moment. An id absent from the current
// catalog yields ErrNotFound.
func (s *CartService) Add(
	ctx context.Context, productID int,
) (domain.Cart, error) {
	const op = "CartService.Add"

	p, ok := s.lookup(productID)
	if !ok {
		return nil, fmt.Errorf("%s: id %d: %w", op, productID, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.Add(p)
	s.persist(ctx)
	return s.snapshot(), nil
}

// UpdateQuantity sets the quantity of the line for productID. A qty <= 0
// removes the line; an unknown id is a silent no-op.
func (s *CartService) UpdateQuantity(
	ctx context.Context, productID, qty int,
) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.UpdateQty(productID, qty)
	s.persist(ctx)
	return s.snapshot()
}

func (s *CartService) Clear(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Cart{}
	s.persist(ctx)
	return s.snapshot()
}

// Subtotal is rounded to cents for display; the underlying sum stays exact.
func (s *CartService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return math.Round(s.cart.Subtotal()*100) / 100
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// Checkout is a fixed no-op placeholder.
func (s *CartService) Checkout() string {
	return checkoutMessage
}

func (s *CartService) lookup(productID int) (domain.Product, bool) {
	for _, p := range s.catalog.Products() {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// persist is called with s.mu held.
func (s *CartService) persist(ctx context.Context) {
	const op = "CartService.persist"
	log := slog.With("op", op)

	lines := make([]cartLineState, 0, len(s.cart))
	for _, l := range s.cart {
		lines = append(lines, cartLineState{
			ID:       l.Product.ID,
			Title:    l.Product.Title,
			Price:    l.Product.Price,
			Category: l.Product.Category,
			Image:    l.Product.Image,
			Rating:   l.Product.Rating,
			Qty:      l.Qty,
		})
	}

	b, err := json.Marshal(lines)
	if err != nil {
		log.Error("failed to marshal cart snapshot", "err", err)
		return
	}

	if err := s.store.Write(ctx, cartStateKey, string(b)); err != nil {
		log.Error("failed to write cart snapshot", "err", err)
	}
}

// snapshot is called with s.mu held.
func (s *CartService) snapshot() domain.Cart {
	c := make(domain.Cart, len(s.cart))
	copy(c, s.cart)
	return c
}
