package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/apperrors"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/productdir"
)

// PriceAggregator resolves lists of product IDs into a total base-currency
// price against the product directory. Resolution is all-or-nothing: one
// unresolvable ID discards the whole batch, so no partial total ever reaches
// the store.
type PriceAggregator struct {
	products productdir.Client
}

// NewPriceAggregator creates a new PriceAggregator backed by the given
// product directory client.
func NewPriceAggregator(products productdir.Client) *PriceAggregator {
	return &PriceAggregator{
		products: products,
	}
}

// ResolveTotal looks up every product ID and returns the sum of their
// base-currency prices. Lookups fan out concurrently; the first failure
// cancels the remaining ones and the whole batch resolves to
// apperrors.ErrProductNotFound. An empty ID list resolves to zero without any
// directory calls. Duplicate IDs are priced once per occurrence.
func (a *PriceAggregator) ResolveTotal(ctx context.Context, productIDs []string) (float64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}

	prices := make([]float64, len(productIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, productID := range productIDs {
		i, productID := i, productID
		g.Go(func() error {
			product, err := a.products.GetProduct(ctx, productID)
			if err != nil {
				return fmt.Errorf("%w: %s", apperrors.ErrProductNotFound, productID)
			}
			prices[i] = product.UsdPrice
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total float64
	for _, price := range prices {
		total += price
	}

	return total, nil
}
