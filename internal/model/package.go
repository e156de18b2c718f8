package model

// Package represents a named bundle of products from the external product
// directory. TotalPrice is always derived from the directory's prices in the
// base currency at the time the package was created or last updated; it is
// never taken from caller input.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	ProductIDs  []string `json:"productIds"`
	TotalPrice  float64  `json:"totalPrice"`
}
