// Package appevent names every broker topic the storefront uses and the
// payload type published under each, so producers and consumers share one
// typed contract instead of string-keyed loose data.
package appevent

import "github.com/shopfront/shopfront/internal/models"

// Model change topics.
const (
	CatalogChanged  = "catalog:changed"
	CatalogSelected = "catalog:selected"
	BasketChanged   = "basket:changed"
	BuyerChanged    = "buyer:changed"
)

// User gesture topics, published by views.
const (
	CardSelect       = "card:select"
	CardToggle       = "card:toggle"
	BasketOpen       = "basket:open"
	BasketItemRemove = "basket:item:remove"
	BasketCheckout   = "basket:checkout"
	OrderField       = "order:field"
	OrderNext        = "order:next"
	OrderPay         = "order:pay"
	ModalClose       = "modal:close"
)

// Outcome topics.
const (
	OrderSuccess = "order:success"
)

// CatalogChangedData carries the full catalog after a reload.
type CatalogChangedData struct {
	Items []models.Product
}

// CatalogSelectedData carries the product chosen for the detail view.
type CatalogSelectedData struct {
	Item models.Product
}

// BasketChangedData is emitted once per successful basket mutation.
type BasketChangedData struct {
	Items []models.Product
	Total float64
	Count int
}

// BuyerChangedData carries the buyer snapshot plus its validation result.
type BuyerChangedData struct {
	Data   models.BuyerData
	Errors map[string]string
}

// CardSelectData identifies the card the user clicked.
type CardSelectData struct {
	ID string
}

// CardToggleData asks for the product to be added to or removed from the
// basket depending on current membership.
type CardToggleData struct {
	ID string
}

// BasketItemRemoveData identifies the basket row to delete.
type BasketItemRemoveData struct {
	ID string
}

// OrderFieldData carries one edited checkout form field.
type OrderFieldData struct {
	Field string
	Value string
}

// OrderSuccessData reports a confirmed order.
type OrderSuccessData struct {
	ID    string
	Total float64
}
