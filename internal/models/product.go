package models

// Product is an immutable catalog entry. Price is nil for items that are
// not for sale; such items cannot be added to the basket. YAML tags cover
// the shop service's seed catalog format.
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Category    string   `json:"category" yaml:"category"`
	Price       *float64 `json:"price" yaml:"price"`
}

// PriceValue returns the price, treating "not for sale" as 0.
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// ForSale reports whether the product has a price.
func (p Product) ForSale() bool {
	return p.Price != nil
}

// ProductList is the shop service response for the catalog endpoint.
type ProductList struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}

// Price is a convenience for building product literals in seeds and tests.
func Price(v float64) *float64 {
	return &v
}
