package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/model"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/repository"
)

// PackageBuilder builds package records for tests, writing them straight to
// the repository so tests can seed the store without going through the
// aggregator.
type PackageBuilder struct {
	name        string
	description *string
	productIDs  []string
	totalPrice  float64
}

// NewPackage creates a builder with sensible defaults.
func NewPackage() *PackageBuilder {
	desc := "Test Desc"
	return &PackageBuilder{
		name:        "Test Package",
		description: &desc,
		productIDs:  []string{},
	}
}

// WithName sets the package name.
func (b *PackageBuilder) WithName(name string) *PackageBuilder {
	b.name = name
	return b
}

// WithDescription sets the package description.
func (b *PackageBuilder) WithDescription(description string) *PackageBuilder {
	b.description = &description
	return b
}

// WithNilDescription clears the description, mirroring a create call that
// omitted the field.
func (b *PackageBuilder) WithNilDescription() *PackageBuilder {
	b.description = nil
	return b
}

// WithProductIDs sets the ordered product reference list.
func (b *PackageBuilder) WithProductIDs(ids ...string) *PackageBuilder {
	b.productIDs = ids
	return b
}

// WithTotalPrice sets the stored total.
func (b *PackageBuilder) WithTotalPrice(total float64) *PackageBuilder {
	b.totalPrice = total
	return b
}

// Build inserts the package and returns the stored record.
func (b *PackageBuilder) Build(t *testing.T, db *sql.DB) model.Package {
	t.Helper()

	pkg := model.Package{
		ID:          uuid.New().String(),
		Name:        b.name,
		Description: b.description,
		ProductIDs:  b.productIDs,
		TotalPrice:  b.totalPrice,
	}

	repo := repository.NewPackageRepository(db)
	if err := repo.Insert(context.Background(), pkg); err != nil {
		t.Fatalf("Failed to insert test package: %v", err)
	}

	return pkg
}
