package domain

type (
	// A CartLine is one product-id-keyed cart entry. Product is a snapshot
	// taken at add time, so later catalog changes never affect the line.
	// Qty is always >= 1: a line that would drop to zero is removed.
	CartLine struct {
		Product Product
		Qty     int
	}

	// A Cart is an ordered sequence of lines, insertion order = first-added
	// order, at most one line per product id.
	Cart []CartLine
)

// Add returns c with p merged in: an existing line for p.ID gets its
// quantity incremented, otherwise a new qty-1 snapshot line is appended.
func (c Cart) Add(p Product) Cart {
	if i, ok := c.find(p.ID); ok {
		c[i].Qty++
		return c
	}
	return append(c, CartLine{Product: p, Qty: 1})
}

// UpdateQty returns c with the line for id set to qty. A qty <= 0 removes
// the line; an unknown id leaves c unchanged.
func (c Cart) UpdateQty(id, qty int) Cart {
	i, ok := c.find(id)
	if !ok {
		return c
	}
	if qty <= 0 {
		return append(c[:i], c[i+1:]...)
	}
	c[i].Qty = qty
	return c
}

// Subtotal is the exact sum of price*qty over all lines. Rounding to
// cents is a display concern and happens at the view boundary.
func (c Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c {
		sum += l.Product.Price * float64(l.Qty)
	}
	return sum
}

// TotalItems is the quantity sum across lines, used for the badge count.
func (c Cart) TotalItems() int {
	var n int
	for _, l := range c {
		n += l.Qty
	}
	return n
}

func (c Cart) find(id int) (int, bool) {
	for i := range c {
		if c[i].Product.ID == id {
			return i, true
		}
	}
	return 0, false
}
