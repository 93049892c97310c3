package domain

type (
	// A Product is one catalog entry. Products are immutable for the
	// lifetime of a load cycle and replaced wholesale on refresh.
	Product struct {
		ID       int
		Title    string
		Price    float64
		Category string
		Image    string
		Rating   float64
	}

	// A Catalog holds the product list together with the category list
	// it was loaded with. Both lists always come from the same source.
	Catalog struct {
		Products   []Product
		Categories []string
	}
)
