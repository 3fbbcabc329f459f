package models

// OrderRequest is the wire DTO posted to the shop service. It is built
// immediately before the network call and not retained. IdempotencyKey is
// generated client-side so a retried submission after a network failure
// cannot create a second order.
type OrderRequest struct {
	Payment        PaymentMethod `json:"payment"`
	Address        string        `json:"address"`
	Email          string        `json:"email,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Total          float64       `json:"total"`
	Items          []string      `json:"items"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`
}

// OrderResponse is the shop service's confirmation of a placed order.
type OrderResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}
