package testutil

import (
	"database/sql"
	"testing"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/exchange"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/productdir"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/repository"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/service"
)

// TestBaseCurrency is the base currency used by services built through this
// package, matching the production default.
const TestBaseCurrency = "USD"

// NewTestPackageService wires a PackageService against the given database and
// mocked upstream clients.
func NewTestPackageService(t *testing.T, db *sql.DB, products productdir.Client, rates exchange.Client) *service.PackageService {
	t.Helper()

	packageRepo := repository.NewPackageRepository(db)

	return service.NewPackageService(
		packageRepo,
		service.NewPriceAggregator(products),
		service.NewCurrencyConverter(rates, TestBaseCurrency),
	)
}

// NewTestSystemService wires a SystemService against the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
