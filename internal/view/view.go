// Package view defines the capability interfaces the presenter renders
// through, one per surface, plus console implementations for the CLI
// frontend. Views are render-only: user gestures reach the broker through
// whatever frontend hosts the views, not through the views themselves.
package view

import "github.com/shopfront/shopfront/internal/models"

// Gallery renders the product catalog.
type Gallery interface {
	Render(items []models.Product)
}

// Header shows the basket counter.
type Header interface {
	SetCounter(count int)
}

// Modal is the single modal container. At most one of its surfaces is
// visible at a time; each Show call replaces the previous content.
type Modal interface {
	ShowProduct(p models.Product, inBasket bool)
	ShowBasket(items []models.Product, total float64)
	ShowOrderForm(data models.BuyerData, errMsg string, canSubmit bool)
	ShowContactsForm(data models.BuyerData, errMsg string, canSubmit bool)
	ShowSuccess(orderID string, total float64)
	Close()
	Alert(msg string)
}
