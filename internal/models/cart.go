package models

// CartLine is one line of a submitted cart. The caller never supplies a
// price; billing always uses the stored menu price.
type CartLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// MenuItem is the authoritative price record, read-only for this service.
type MenuItem struct {
	ID    string
	Name  string
	Price float64
}
