package models

// PaymentMethod is the buyer's chosen payment option.
type PaymentMethod string

const (
	PaymentUnset PaymentMethod = ""
	PaymentCard  PaymentMethod = "card"
	PaymentCash  PaymentMethod = "cash"
)

// Valid reports whether the method is one of the selectable options.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentCash
}

// BuyerData holds everything collected across the two checkout forms.
type BuyerData struct {
	Payment PaymentMethod `json:"payment"`
	Address string        `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
}
