// Package api is the HTTP client for the external shop service: one call
// to fetch the catalog, one call to place an order. Both are one-shot with
// no retry; the configured client timeout is the only deadline.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/models"
)

// StatusError is returned for non-2xx responses. Message carries the
// server's error detail when the body contained one, so callers can show
// it to the user.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("shop service returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("shop service returned %d", e.StatusCode)
}

// Client talks to the shop service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// GetProducts fetches the full catalog.
func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/product/", nil)
	if err != nil {
		return nil, err
	}

	var list models.ProductList
	if err := c.do(req, &list); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	c.log.Info("catalog fetched", zap.Int("count", len(list.Items)))
	return list.Items, nil
}

// CreateOrder submits an order and returns the server's confirmation.
func (c *Client) CreateOrder(ctx context.Context, order models.OrderRequest) (*models.OrderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp models.OrderResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	c.log.Info("order created",
		zap.String("order_id", resp.ID),
		zap.Float64("total", resp.Total))
	return &resp, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorDetail(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail pulls the {"error": "..."} message out of an error body, if
// there is one.
func errorDetail(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
