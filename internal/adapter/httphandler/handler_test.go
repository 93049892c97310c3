package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStorefront struct {
	mock.Mock
}

func (m *MockStorefront) View() domain.StorefrontView {
	return m.Called().Get(0).(domain.StorefrontView)
}

func (m *MockStorefront) SetQuery(q string) domain.StorefrontView {
	return m.Called(q).Get(0).(domain.StorefrontView)
}

func (m *MockStorefront) SetMaxPrice(max float64) domain.StorefrontView {
	return m.Called(max).Get(0).(domain.StorefrontView)
}

func (m *MockStorefront) SetCategory(c string) domain.StorefrontView {
	return m.Called(c).Get(0).(domain.StorefrontView)
}

func (m *MockStorefront) SetSort(s domain.SortMode) domain.StorefrontView {
	return m.Called(s).Get(0).(domain.StorefrontView)
}

func (m *MockStorefront) Reset() domain.StorefrontView {
	return m.Called().Get(0).(domain.StorefrontView)
}

func (m *MockStorefront) Refresh(ctx context.Context) {
	m.Called(ctx)
}

type MockCart struct {
	mock.Mock
}

func (m *MockCart) Cart() domain.Cart {
	return m.Called().Get(0).(domain.Cart)
}

func (m *MockCart) Add(ctx context.Context, id int) (domain.Cart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(domain.Cart)
	return c, args.Error(1)
}

func (m *MockCart) UpdateQuantity(
	ctx context.Context, id, qty int,
) domain.Cart {
	return m.Called(ctx, id, qty).Get(0).(domain.Cart)
}

func (m *MockCart) Clear(ctx context.Context) domain.Cart {
	return m.Called(ctx).Get(0).(domain.Cart)
}

func (m *MockCart) Subtotal() float64 {
	return m.Called().Get(0).(float64)
}

func (m *MockCart) TotalItems() int {
	return m.Called().Int(0)
}

func (m *MockCart) Checkout() string {
	return m.Called().String(0)
}

func jsonRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func testView() domain.StorefrontView {
	return domain.StorefrontView{
		Products: []domain.Product{
			{ID: 4, Title: "Fallback Watch", Price: 79.99,
				Category: "accessories", Rating: 4.6},
		},
		Total:  1,
		Filter: domain.DefaultFilterState(),
	}
}

func TestStorefrontHandler(t *testing.T) {
	newMux := func(sf *MockStorefront) *http.ServeMux {
		mux := http.NewServeMux()
		httphandler.RegisterStorefront(mux, sf, sf, sf)
		return mux
	}

	t.Run("GetProducts", func(t *testing.T) {
		sf := new(MockStorefront)
		sf.On("View").Return(testView())

		w := httptest.NewRecorder()
		newMux(sf).ServeHTTP(w, httptest.NewRequest(
			http.MethodGet, "/v1/products", nil,
		))

		require.Equal(t, http.StatusOK, w.Code)

		var view httphandler.StorefrontView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, 1, view.Total)
		require.Len(t, view.Products, 1)
		assert.Equal(t, "Fallback Watch", view.Products[0].Title)
	})

	t.Run("PutQuery", func(t *testing.T) {
		sf := new(MockStorefront)
		sf.On("SetQuery", "watch").Return(testView())

		w := httptest.NewRecorder()
		newMux(sf).ServeHTTP(w, jsonRequest(
			http.MethodPut, "/v1/filters/query", `{"query": "watch"}`,
		))

		require.Equal(t, http.StatusOK, w.Code)
		sf.AssertExpectations(t)
	})

	t.Run("PutQueryInvalidJSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		newMux(new(MockStorefront)).ServeHTTP(w, jsonRequest(
			http.MethodPut, "/v1/filters/query", `{broken`,
		))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PutNegativeMaxPrice", func(t *testing.T) {
		w := httptest.NewRecorder()
		newMux(new(MockStorefront)).ServeHTTP(w, jsonRequest(
			http.MethodPut, "/v1/filters/price", `{"max_price": -1}`,
		))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PutUnknownSort", func(t *testing.T) {
		w := httptest.NewRecorder()
		newMux(new(MockStorefront)).ServeHTTP(w, jsonRequest(
			http.MethodPut, "/v1/filters/sort", `{"sort": "newest"}`,
		))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteFilters", func(t *testing.T) {
		sf := new(MockStorefront)
		sf.On("Reset").Return(testView())

		w := httptest.NewRecorder()
		newMux(sf).ServeHTTP(w, httptest.NewRequest(
			http.MethodDelete, "/v1/filters", nil,
		))

		require.Equal(t, http.StatusOK, w.Code)
		sf.AssertExpectations(t)
	})

	t.Run("PostRefresh", func(t *testing.T) {
		sf := new(MockStorefront)
		sf.On("Refresh", mock.Anything).Return()

		w := httptest.NewRecorder()
		newMux(sf).ServeHTTP(w, httptest.NewRequest(
			http.MethodPost, "/v1/catalog/refresh", nil,
		))

		assert.Equal(t, http.StatusAccepted, w.Code)
		sf.AssertExpectations(t)
	})
}

func TestCartHandler(t *testing.T) {
	line := domain.CartLine{
		Product: domain.Product{ID: 1, Title: "Fallback Tee", Price: 19.99},
		Qty:     1,
	}

	newMux := func(c *MockCart) *http.ServeMux {
		mux := http.NewServeMux()
		httphandler.RegisterCart(mux, c)
		return mux
	}

	t.Run("PostItem", func(t *testing.T) {
		c := new(MockCart)
		c.On("Add", mock.Anything, 1).Return(domain.Cart{line}, nil)
		c.On("Subtotal").Return(19.99)
		c.On("TotalItems").Return(1)

		w := httptest.NewRecorder()
		newMux(c).ServeHTTP(w, jsonRequest(
			http.MethodPost, "/v1/cart/items", `{"id": 1}`,
		))

		require.Equal(t, http.StatusOK, w.Code)

		var view httphandler.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		require.Len(t, view.Items, 1)
		assert.Equal(t, 1, view.Items[0].ID)
		assert.InDelta(t, 19.99, view.Subtotal, 1e-9)
		assert.Equal(t, 1, view.TotalItems)
	})

	t.Run("PostItemUnknownProduct", func(t *testing.T) {
		c := new(MockCart)
		c.On("Add", mock.Anything, 42).
			Return(nil, service.ErrNotFound)

		w := httptest.NewRecorder()
		newMux(c).ServeHTTP(w, jsonRequest(
			http.MethodPost, "/v1/cart/items", `{"id": 42}`,
		))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("PutItemQty", func(t *testing.T) {
		c := new(MockCart)
		c.On("UpdateQuantity", mock.Anything, 1, 3).Return(domain.Cart{})
		c.On("Subtotal").Return(0.0)
		c.On("TotalItems").Return(0)

		w := httptest.NewRecorder()
		newMux(c).ServeHTTP(w, jsonRequest(
			http.MethodPut, "/v1/cart/items/1", `{"qty": 3}`,
		))

		require.Equal(t, http.StatusOK, w.Code)
		c.AssertExpectations(t)
	})

	t.Run("PutItemQtyInvalidID", func(t *testing.T) {
		w := httptest.NewRecorder()
		newMux(new(MockCart)).ServeHTTP(w, jsonRequest(
			http.MethodPut, "/v1/cart/items/abc", `{"qty": 3}`,
		))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PostCheckout", func(t *testing.T) {
		c := new(MockCart)
		c.On("Checkout").Return("demo only")

		w := httptest.NewRecorder()
		newMux(c).ServeHTTP(w, httptest.NewRequest(
			http.MethodPost, "/v1/cart/checkout", nil,
		))

		require.Equal(t, http.StatusOK, w.Code)

		var res httphandler.CheckoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "demo only", res.Message)
	})
}

func TestAllowJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := httphandler.AllowJSON(next)

	t.Run("NoBodyPasses", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cart", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("JSONBodyPasses", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/cart/items", `{"id":1}`))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NonJSONBodyRejected", func(t *testing.T) {
		r := httptest.NewRequest(
			http.MethodPost, "/v1/cart/items", strings.NewReader("id=1"),
		)
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}
