package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/sync/errgroup"
)

var _ port.CatalogFetcher = (*HTTPCatalog)(nil)

// HTTPCatalog fetches the product and category lists from the two
// read-only remote endpoints.
type HTTPCatalog struct {
	cl            *http.Client
	productsURL   string
	categoriesURL string
}

func NewHTTPCatalog(
	productsURL, categoriesURL string, timeout time.Duration,
) HTTPCatalog {
	return HTTPCatalog{
		cl:            &http.Client{Timeout: timeout},
		productsURL:   productsURL,
		categoriesURL: categoriesURL,
	}
}

// FetchCatalog requests both endpoints concurrently and joins the
// results: a failure of either yields a single error and no partial
// catalog, so the caller can fall back atomically.
func (c HTTPCatalog) FetchCatalog(
	ctx context.Context,
) (domain.Catalog, error) {
	const op = "HTTPCatalog.FetchCatalog"

	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	var (
		ps []Product
		cs []string
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gCtx, c.productsURL, &ps)
	})
	g.Go(func() error {
		return c.getJSON(gCtx, c.categoriesURL, &cs)
	})
	if err := g.Wait(); err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Catalog{Products: toDomain(ps), Categories: cs}, nil
}

func (c HTTPCatalog) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	res, err := c.cl.Do(req)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", res.StatusCode, url)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", url, err)
	}
	return nil
}
