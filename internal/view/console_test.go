package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopfront/shopfront/internal/models"
)

func TestConsoleGallery_Render(t *testing.T) {
	var buf bytes.Buffer
	g := &ConsoleGallery{W: &buf}

	g.Render([]models.Product{
		{ID: "p-1", Title: "Enamel mug", Category: "kitchen", Price: models.Price(250)},
		{ID: "p-3", Title: "Display unit", Category: "misc", Price: nil},
	})

	out := buf.String()
	assert.Contains(t, out, "Catalog (2 items)")
	assert.Contains(t, out, "Enamel mug")
	assert.Contains(t, out, "not for sale")
}

func TestConsoleModal_ShowProductToggleLabel(t *testing.T) {
	tests := []struct {
		name     string
		product  models.Product
		inBasket bool
		want     string
	}{
		{
			name:    "not in basket",
			product: models.Product{Title: "Enamel mug", Price: models.Price(250)},
			want:    "add to basket",
		},
		{
			name:     "in basket",
			product:  models.Product{Title: "Enamel mug", Price: models.Price(250)},
			inBasket: true,
			want:     "remove from basket",
		},
		{
			name:    "priceless",
			product: models.Product{Title: "Display unit"},
			want:    "not for sale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := &ConsoleModal{W: &buf}
			m.ShowProduct(tt.product, tt.inBasket)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestConsoleModal_FormFooter(t *testing.T) {
	var buf bytes.Buffer
	m := &ConsoleModal{W: &buf}

	m.ShowOrderForm(models.BuyerData{}, "Choose a payment method", false)
	out := buf.String()
	assert.Contains(t, out, "Choose a payment method")
	assert.Contains(t, out, "[submit disabled]")

	buf.Reset()
	m.ShowContactsForm(models.BuyerData{Email: "jo@example.com", Phone: "9991234567"}, "", true)
	assert.Contains(t, buf.String(), "[submit enabled]")
}
