package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/internal/repository"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := repository.NewInMemoryProductRepository(repository.DefaultSeed())
	srv := httptest.NewServer(NewRouter(repo, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/product/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list models.ProductList
	decodeBody(t, resp, &list)

	assert.Equal(t, 6, list.Total)
	require.Len(t, list.Items, 6)
	assert.Equal(t, "p-1", list.Items[0].ID)
}

func TestGetProduct(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/product/p-2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var p models.Product
	decodeBody(t, resp, &p)
	assert.Equal(t, "Canvas tote", p.Title)
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/product/ghost")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Product not found", body["error"])
}

func postOrder(t *testing.T, srv *httptest.Server, req models.OrderRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/order/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestCreateOrder(t *testing.T) {
	srv := newTestServer(t)

	resp := postOrder(t, srv, models.OrderRequest{
		Payment: models.PaymentCash,
		Address: "12 Harbor Lane",
		Email:   "jo@example.com",
		Phone:   "9991234567",
		Total:   740,
		Items:   []string{"p-1", "p-2"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var order models.OrderResponse
	decodeBody(t, resp, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 740.0, order.Total)
}

func TestCreateOrder_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name      string
		req       models.OrderRequest
		wantError string
	}{
		{
			name: "empty order",
			req: models.OrderRequest{
				Payment: models.PaymentCard,
				Address: "12 Harbor Lane",
			},
			wantError: "Order must contain at least one item",
		},
		{
			name: "missing payment",
			req: models.OrderRequest{
				Address: "12 Harbor Lane",
				Total:   250,
				Items:   []string{"p-1"},
			},
			wantError: "Order is missing payment or address",
		},
		{
			name: "unknown product",
			req: models.OrderRequest{
				Payment: models.PaymentCard,
				Address: "12 Harbor Lane",
				Total:   250,
				Items:   []string{"ghost"},
			},
			wantError: "Unknown product in order",
		},
		{
			name: "priceless product",
			req: models.OrderRequest{
				Payment: models.PaymentCard,
				Address: "12 Harbor Lane",
				Total:   0,
				Items:   []string{"p-6"},
			},
			wantError: "Product is not for sale",
		},
		{
			name: "total mismatch",
			req: models.OrderRequest{
				Payment: models.PaymentCard,
				Address: "12 Harbor Lane",
				Total:   1,
				Items:   []string{"p-1"},
			},
			wantError: "Order total does not match item prices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postOrder(t, srv, tt.req)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			decodeBody(t, resp, &body)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestCreateOrder_BadBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/order/", "application/json", bytes.NewReader([]byte("{{{")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}
