package httphandler

type (
	Product struct {
		ID       int     `json:"id"`
		Title    string  `json:"title"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
		Image    string  `json:"image"`
		Rating   float64 `json:"rating"`
	}

	StorefrontView struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
		Query    string    `json:"query"`
		MaxPrice float64   `json:"max_price"`
		Category string    `json:"category"`
		Sort     string    `json:"sort"`
	}

	CartLine struct {
		Product
		Qty int `json:"qty"`
	}

	CartView struct {
		Items      []CartLine `json:"items"`
		Subtotal   float64    `json:"subtotal"`
		TotalItems int        `json:"total_items"`
	}
)

type (
	SetQuery struct {
		Query string `json:"query"`
	}

	SetMaxPrice struct {
		MaxPrice float64 `json:"max_price"`
	}

	SetCategory struct {
		Category string `json:"category"`
	}

	SetSort struct {
		Sort string `json:"sort"`
	}

	AddCartItem struct {
		ID int `json:"id"`
	}

	SetCartItemQty struct {
		Qty int `json:"qty"`
	}

	Theme struct {
		Theme string `json:"theme"`
	}

	CheckoutResponse struct {
		Message string `json:"message"`
	}
)
