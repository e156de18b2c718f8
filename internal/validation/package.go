package validation

import (
	"strings"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/request"
)

// ValidatePackage validates the request body shared by package create and
// update. The product ID list must be present but may be empty; the IDs
// themselves are verified against the product directory later, by the price
// aggregator.
func ValidatePackage(req request.PackageRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.ProductIDs == nil {
		errors["productIds"] = "productIds is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
