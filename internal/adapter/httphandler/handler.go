package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
)

// GET  v1/products                  current visible list (200 OK)
// PUT  v1/filters/query|price|category|sort  mutate criteria (200 OK, 400 Bad request)
// DELETE v1/filters                 reset criteria (200 OK)
// POST v1/catalog/refresh           reload catalog (202 Accepted)

type StorefrontHandler struct {
	viewer    port.StorefrontViewer
	filters   port.FilterController
	refresher port.CatalogRefresher
}

func RegisterStorefront(
	mux *http.ServeMux,
	viewer port.StorefrontViewer,
	filters port.FilterController,
	refresher port.CatalogRefresher,
) {
	h := StorefrontHandler{viewer, filters, refresher}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("PUT /v1/filters/query", h.PutQuery)
	mux.HandleFunc("PUT /v1/filters/price", h.PutMaxPrice)
	mux.HandleFunc("PUT /v1/filters/category", h.PutCategory)
	mux.HandleFunc("PUT /v1/filters/sort", h.PutSort)
	mux.HandleFunc("DELETE /v1/filters", h.DeleteFilters)
	mux.HandleFunc("POST /v1/catalog/refresh", h.PostRefresh)
}

func (h StorefrontHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toViewDTO(h.viewer.View()))
}

func (h StorefrontHandler) PutQuery(w http.ResponseWriter, r *http.Request) {
	var req SetQuery
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, toViewDTO(h.filters.SetQuery(req.Query)))
}

func (h StorefrontHandler) PutMaxPrice(w http.ResponseWriter, r *http.Request) {
	var req SetMaxPrice
	if !decodeBody(w, r, &req) {
		return
	}
	if req.MaxPrice < 0 {
		http.Error(w, "max_price must be non-negative", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, toViewDTO(h.filters.SetMaxPrice(req.MaxPrice)))
}

func (h StorefrontHandler) PutCategory(w http.ResponseWriter, r *http.Request) {
	var req SetCategory
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, toViewDTO(h.filters.SetCategory(req.Category)))
}

func (h StorefrontHandler) PutSort(w http.ResponseWriter, r *http.Request) {
	var req SetSort
	if !decodeBody(w, r, &req) {
		return
	}
	mode, err := domain.ParseSortMode(req.Sort)
	if err != nil {
		http.Error(w, "unknown sort mode", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, toViewDTO(h.filters.SetSort(mode)))
}

func (h StorefrontHandler) DeleteFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toViewDTO(h.filters.Reset()))
}

func (h StorefrontHandler) PostRefresh(w http.ResponseWriter, r *http.Request) {
	h.refresher.Refresh(r.Context())
	w.WriteHeader(http.StatusAccepted)
}

// GET  v1/cart                      cart view (200 OK)
// POST v1/cart/items JSON {id}      add one unit (200 OK, 400, 404)
// PUT  v1/cart/items/{id} JSON {qty} set quantity (200 OK, 400)
// DELETE v1/cart                    clear (200 OK)
// POST v1/cart/checkout             fixed demo response (200 OK)

type CartHandler struct {
	cart port.CartController
}

func RegisterCart(mux *http.ServeMux, cart port.CartController) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.PutItemQty)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
	mux.HandleFunc("POST /v1/cart/checkout", h.PostCheckout)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView(h.cart.Cart()))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"

	var req AddCartItem
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.cart.Add(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add product", http.StatusInternalServerError)
		slog.Error("failed to add product", "op", op, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView(c))
}

func (h CartHandler) PutItemQty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req SetCartItemQty
	if !decodeBody(w, r, &req) {
		return
	}

	c := h.cart.UpdateQuantity(r.Context(), id, req.Qty)
	writeJSON(w, http.StatusOK, h.cartView(c))
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView(h.cart.Clear(r.Context())))
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CheckoutResponse{Message: h.cart.Checkout()})
}

func (h CartHandler) cartView(c domain.Cart) CartView {
	items := make([]CartLine, 0, len(c))
	for _, l := range c {
		items = append(items, CartLine{
			Product: toProductDTO(l.Product),
			Qty:     l.Qty,
		})
	}
	return CartView{
		Items:      items,
		Subtotal:   h.cart.Subtotal(),
		TotalItems: h.cart.TotalItems(),
	}
}

// GET v1/theme (200 OK)
// PUT v1/theme JSON {theme} (200 OK, 400 Bad request)

type ThemeHandler struct {
	theme port.ThemeController
}

func RegisterTheme(mux *http.ServeMux, theme port.ThemeController) {
	h := ThemeHandler{theme}
	mux.HandleFunc("GET /v1/theme", h.GetTheme)
	mux.HandleFunc("PUT /v1/theme", h.PutTheme)
}

func (h ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Theme{Theme: h.theme.Theme(r.Context())})
}

func (h ThemeHandler) PutTheme(w http.ResponseWriter, r *http.Request) {
	var req Theme
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.theme.SetTheme(r.Context(), req.Theme); err != nil {
		http.Error(w, "theme must be light or dark", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func toProductDTO(p domain.Product) Product {
	return Product{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
		Rating:   p.Rating,
	}
}

func toViewDTO(v domain.StorefrontView) StorefrontView {
	ps := make([]Product, 0, len(v.Products))
	for _, p := range v.Products {
		ps = append(ps, toProductDTO(p))
	}
	return StorefrontView{
		Products: ps,
		Total:    v.Total,
		Query:    v.Filter.Query,
		MaxPrice: v.Filter.MaxPrice,
		Category: v.Filter.Category,
		Sort:     string(v.Filter.Sort),
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	const op = "httphandler.decodeBody"

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		slog.Warn("failed to parse JSON", "op", op, "err", err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}
