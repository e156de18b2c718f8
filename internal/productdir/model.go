package productdir

// Product is the product directory's representation of a single product.
// UsdPrice is the product's price in the directory's base currency.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	UsdPrice float64 `json:"usdPrice"`
}
