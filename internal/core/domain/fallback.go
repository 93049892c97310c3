package domain

// FallbackCatalog is the fixed offline dataset installed when the remote
// source is unreachable. Categories are derived from the products in
// first-occurrence order.
func FallbackCatalog() Catalog {
	ps := []Product{
		{ID: 1, Title: "Fallback Tee", Price: 19.99, Category: "clothing",
			Image: "https://picsum.photos/seed/tee/400/400", Rating: 4.2},
		{ID: 2, Title: "Fallback Headphones", Price: 59.99, Category: "electronics",
			Image: "https://picsum.photos/seed/head/400/400", Rating: 4.5},
		{ID: 3, Title: "Fallback Backpack", Price: 39.99, Category: "bags",
			Image: "https://picsum.photos/seed/bag/400/400", Rating: 4.0},
		{ID: 4, Title: "Fallback Watch", Price: 79.99, Category: "accessories",
			Image: "https://picsum.photos/seed/watch/400/400", Rating: 4.6},
	}
	return Catalog{Products: ps, Categories: distinctCategories(ps)}
}

func distinctCategories(ps []Product) []string {
	seen := make(map[string]struct{}, len(ps))
	var cs []string
	for _, p := range ps {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cs = append(cs, p.Category)
	}
	return cs
}
