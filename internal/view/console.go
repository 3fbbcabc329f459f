package view

import (
	"fmt"
	"io"

	"github.com/shopfront/shopfront/internal/models"
)

// ConsoleGallery prints the catalog as a numbered list.
type ConsoleGallery struct {
	W io.Writer
}

// Render implements Gallery.
func (g *ConsoleGallery) Render(items []models.Product) {
	fmt.Fprintf(g.W, "\n=== Catalog (%d items) ===\n", len(items))
	for i, p := range items {
		fmt.Fprintf(g.W, "%2d. %-30s %-10s %s\n", i+1, p.Title, p.Category, priceLabel(p))
	}
}

// ConsoleHeader prints the basket counter.
type ConsoleHeader struct {
	W io.Writer
}

// SetCounter implements Header.
func (h *ConsoleHeader) SetCounter(count int) {
	fmt.Fprintf(h.W, "[basket: %d]\n", count)
}

// ConsoleModal prints each modal surface as a text block.
type ConsoleModal struct {
	W io.Writer
}

// ShowProduct implements Modal.
func (m *ConsoleModal) ShowProduct(p models.Product, inBasket bool) {
	action := "add to basket"
	if inBasket {
		action = "remove from basket"
	}
	if !p.ForSale() {
		action = "not for sale"
	}
	fmt.Fprintf(m.W, "\n--- %s ---\n%s\nCategory: %s\nPrice: %s\n[toggle: %s]\n",
		p.Title, p.Description, p.Category, priceLabel(p), action)
}

// ShowBasket implements Modal.
func (m *ConsoleModal) ShowBasket(items []models.Product, total float64) {
	fmt.Fprintf(m.W, "\n--- Basket ---\n")
	if len(items) == 0 {
		fmt.Fprintln(m.W, "(empty)")
	}
	for i, p := range items {
		fmt.Fprintf(m.W, "%2d. %-30s %s\n", i+1, p.Title, priceLabel(p))
	}
	fmt.Fprintf(m.W, "Total: %.2f\n", total)
}

// ShowOrderForm implements Modal.
func (m *ConsoleModal) ShowOrderForm(data models.BuyerData, errMsg string, canSubmit bool) {
	fmt.Fprintf(m.W, "\n--- Checkout 1/2: delivery & payment ---\n")
	fmt.Fprintf(m.W, "Payment: %s\nAddress: %s\n", paymentLabel(data.Payment), data.Address)
	printFormFooter(m.W, errMsg, canSubmit)
}

// ShowContactsForm implements Modal.
func (m *ConsoleModal) ShowContactsForm(data models.BuyerData, errMsg string, canSubmit bool) {
	fmt.Fprintf(m.W, "\n--- Checkout 2/2: contacts ---\n")
	fmt.Fprintf(m.W, "Email: %s\nPhone: %s\n", data.Email, data.Phone)
	printFormFooter(m.W, errMsg, canSubmit)
}

// ShowSuccess implements Modal.
func (m *ConsoleModal) ShowSuccess(orderID string, total float64) {
	fmt.Fprintf(m.W, "\n--- Order placed ---\nOrder %s confirmed, %.2f charged\n", orderID, total)
}

// Close implements Modal.
func (m *ConsoleModal) Close() {
	fmt.Fprintln(m.W, "[modal closed]")
}

// Alert implements Modal.
func (m *ConsoleModal) Alert(msg string) {
	fmt.Fprintf(m.W, "\n!!! %s\n", msg)
}

func priceLabel(p models.Product) string {
	if !p.ForSale() {
		return "not for sale"
	}
	return fmt.Sprintf("%.2f", *p.Price)
}

func paymentLabel(p models.PaymentMethod) string {
	if p == models.PaymentUnset {
		return "(not chosen)"
	}
	return string(p)
}

func printFormFooter(w io.Writer, errMsg string, canSubmit bool) {
	if errMsg != "" {
		fmt.Fprintf(w, "! %s\n", errMsg)
	}
	if canSubmit {
		fmt.Fprintln(w, "[submit enabled]")
	} else {
		fmt.Fprintln(w, "[submit disabled]")
	}
}
