package request

// PackageRequest is the body of package create and update calls. It carries
// the full record shape, but id and totalPrice are ignored on write: the id
// comes from the path (or is generated on create) and the total is always
// recomputed from the product directory.
type PackageRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	ProductIDs  []string `json:"productIds"`
	TotalPrice  float64  `json:"totalPrice"`
}
