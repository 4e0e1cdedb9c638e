package domain

// Product represents a replacement part in the catalog
type Product struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Category       string   `json:"category"`
	Image          string   `json:"image"`
	Specifications []string `json:"specifications"`
	InStock        bool     `json:"inStock"`
}

// CartItem is a product snapshot placed in the cart together with the
// selected quantity. Entries are keyed by product id.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
