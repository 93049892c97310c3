package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Outbound ports, implemented by adapters.

type CatalogFetcher interface {
	FetchCatalog(context.Context) (domain.Catalog, error)
}

// A StateStore is the durable local key-value storage behind the cart
// snapshot and the theme preference.
type StateStore interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}

// Inbound ports, implemented by core services.

type CatalogRefresher interface {
	Refresh(context.Context)
}

type CatalogReader interface {
	Products() []domain.Product
	Categories() []string
}

type StorefrontViewer interface {
	View() domain.StorefrontView
}

// A FilterController owns the filter state. Every mutation returns the
// recomputed view, so callers never observe stale results.
type FilterController interface {
	SetQuery(q string) domain.StorefrontView
	SetMaxPrice(max float64) domain.StorefrontView
	SetCategory(c string) domain.StorefrontView
	SetSort(m domain.SortMode) domain.StorefrontView
	Reset() domain.StorefrontView
}

type CartController interface {
	Cart() domain.Cart
	Add(ctx context.Context, productID int) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, productID, qty int) domain.Cart
	Clear(ctx context.Context) domain.Cart
	Subtotal() float64
	TotalItems() int
	Checkout() string
}

type ThemeController interface {
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, mode string) error
}
