package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/shopfront/internal/models"
)

func TestClient_GetProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/product/", r.URL.Path)

		json.NewEncoder(w).Encode(models.ProductList{
			Total: 2,
			Items: []models.Product{
				{ID: "p-1", Title: "Enamel mug", Price: models.Price(250)},
				{ID: "p-2", Title: "Display unit", Price: nil},
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil)

	items, err := client.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p-1", items[0].ID)
	assert.Nil(t, items[1].Price, "null price must survive the wire")
}

func TestClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order/", r.URL.Path)

		var req models.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.PaymentCard, req.Payment)
		assert.Equal(t, []string{"p-1", "p-2"}, req.Items)
		assert.NotEmpty(t, req.IdempotencyKey)

		json.NewEncoder(w).Encode(models.OrderResponse{ID: "ord-1", Total: req.Total})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil)

	resp, err := client.CreateOrder(context.Background(), models.OrderRequest{
		Payment:        models.PaymentCard,
		Address:        "12 Harbor Lane",
		Email:          "jo@example.com",
		Phone:          "9991234567",
		Total:          740,
		Items:          []string{"p-1", "p-2"},
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", resp.ID)
	assert.Equal(t, 740.0, resp.Total)
}

func TestClient_ServerErrorDetailSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Order total does not match item prices"})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil)

	_, err := client.CreateOrder(context.Background(), models.OrderRequest{})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Order total does not match item prices", statusErr.Message)
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil)

	_, err := client.GetProducts(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Empty(t, statusErr.Message)
}

func TestClient_TrimsTrailingSlashInBase(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(models.ProductList{})
	}))
	defer srv.Close()

	client := New(srv.URL+"/", 5*time.Second, nil)
	_, err := client.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/product/", path)
}
