package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/model"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/repository"
)

// PackageService handles package-related business logic operations. Writes
// price their product list through the aggregator before touching the store;
// reads optionally convert the stored total for presentation.
type PackageService struct {
	packageRepo *repository.PackageRepository
	aggregator  *PriceAggregator
	converter   *CurrencyConverter
}

// NewPackageService creates a new PackageService with the provided dependencies.
func NewPackageService(
	packageRepo *repository.PackageRepository,
	aggregator *PriceAggregator,
	converter *CurrencyConverter,
) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		aggregator:  aggregator,
		converter:   converter,
	}
}

// CreatePackage resolves the product list into a total price, assigns a fresh
// ID and appends the new package to the store. Any caller-supplied total is
// ignored by construction; the total always comes from the aggregator. If any
// product ID cannot be resolved, nothing is stored.
//
// The description is stored exactly as given, including nil.
func (s *PackageService) CreatePackage(ctx context.Context, name string, description *string, productIDs []string) (model.Package, error) {
	totalPrice, err := s.aggregator.ResolveTotal(ctx, productIDs)
	if err != nil {
		return model.Package{}, err
	}

	pkg := model.Package{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		ProductIDs:  productIDs,
		TotalPrice:  totalPrice,
	}

	if err := s.packageRepo.Insert(ctx, pkg); err != nil {
		return model.Package{}, err
	}

	return pkg, nil
}

// GetPackage retrieves a package by ID. When currency names a non-base
// currency, the returned copy carries the converted total; the stored record
// is never mutated.
func (s *PackageService) GetPackage(ctx context.Context, id, currency string) (model.Package, error) {
	pkg, err := s.packageRepo.Get(ctx, id)
	if err != nil {
		return model.Package{}, err
	}

	return s.convertPackagePrice(ctx, pkg, currency), nil
}

// ListPackages retrieves all packages in insertion order, each converted
// independently when a currency is requested.
func (s *PackageService) ListPackages(ctx context.Context, currency string) ([]model.Package, error) {
	packages, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]model.Package, len(packages))
	for i, pkg := range packages {
		converted[i] = s.convertPackagePrice(ctx, pkg, currency)
	}

	return converted, nil
}

// UpdatePackage performs a full replace of the package with the given ID:
// name, description, product list and the recomputed total. The record keeps
// its ID and list position, and exactly one record with that ID exists
// afterwards. A validation or pricing failure leaves the existing record
// untouched.
//
// Unlike create, a nil description is coerced to the empty string.
func (s *PackageService) UpdatePackage(ctx context.Context, id, name string, description *string, productIDs []string) (model.Package, error) {
	// Report unknown IDs before spending directory lookups on the price.
	if _, err := s.packageRepo.Get(ctx, id); err != nil {
		return model.Package{}, err
	}

	totalPrice, err := s.aggregator.ResolveTotal(ctx, productIDs)
	if err != nil {
		return model.Package{}, err
	}

	if description == nil {
		empty := ""
		description = &empty
	}

	pkg := model.Package{
		ID:          id,
		Name:        name,
		Description: description,
		ProductIDs:  productIDs,
		TotalPrice:  totalPrice,
	}

	if err := s.packageRepo.Replace(ctx, pkg); err != nil {
		return model.Package{}, err
	}

	return pkg, nil
}

// DeletePackage removes the package with the given ID and returns it.
// Returns apperrors.ErrPackageNotFound when the ID is absent, so repeated
// deletes are idempotent.
func (s *PackageService) DeletePackage(ctx context.Context, id string) (model.Package, error) {
	return s.packageRepo.Delete(ctx, id)
}

// convertPackagePrice returns a copy of pkg with its total converted to the
// requested currency. On a conversion fallback the copy carries the original
// total; either way the stored record is untouched.
func (s *PackageService) convertPackagePrice(ctx context.Context, pkg model.Package, currency string) model.Package {
	convertedTotal, _ := s.converter.Convert(ctx, pkg.TotalPrice, currency)
	pkg.TotalPrice = convertedTotal
	return pkg
}
