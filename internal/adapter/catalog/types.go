package catalog

import "github.com/niksmo/storefront/internal/core/domain"

// Wire shapes of the remote catalog source. Rating is nested and
// optional; a missing rating defaults to 0 at this boundary.
type (
	Product struct {
		ID       int     `json:"id"`
		Title    string  `json:"title"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
		Image    string  `json:"image"`
		Rating   *Rating `json:"rating"`
	}

	Rating struct {
		Rate float64 `json:"rate"`
	}
)

func toDomain(ps []Product) []domain.Product {
	domainPs := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		dp := domain.Product{
			ID:       p.ID,
			Title:    p.Title,
			Price:    p.Price,
			Category: p.Category,
			Image:    p.Image,
		}
		if p.Rating != nil {
			dp.Rating = p.Rating.Rate
		}
		domainPs = append(domainPs, dp)
	}
	return domainPs
}
