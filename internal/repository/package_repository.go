package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/apperrors"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/model"
)

// PackageRepository provides data access methods for the package and
// package_product tables. It is the sole mutator of the package collection;
// all writes go through transactions so readers never observe a
// partially-written record.
type PackageRepository struct {
	db *sql.DB
}

// NewPackageRepository creates a new PackageRepository with the provided database connection.
func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Insert stores a new package record together with its ordered product
// references.
func (r *PackageRepository) Insert(ctx context.Context, pkg model.Package) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := `
        INSERT INTO package (id, name, description, total_price)
        VALUES (?, ?, ?, ?)
    `

	if _, err := tx.ExecContext(ctx, query, pkg.ID, pkg.Name, pkg.Description, pkg.TotalPrice); err != nil {
		return fmt.Errorf("failed to insert package: %w", err)
	}

	if err := insertProductIDs(ctx, tx, pkg.ID, pkg.ProductIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit package insert: %w", err)
	}

	return nil
}

// Get retrieves a single package by ID.
// Returns apperrors.ErrPackageNotFound if no package with that ID exists.
func (r *PackageRepository) Get(ctx context.Context, id string) (model.Package, error) {
	if id == "" {
		return model.Package{}, apperrors.ErrPackageNotFound
	}

	query := `
        SELECT id, name, description, total_price
        FROM package
        WHERE id = ?
    `

	var pkg model.Package
	var description sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&description,
		&pkg.TotalPrice,
	)
	if err == sql.ErrNoRows {
		return model.Package{}, apperrors.ErrPackageNotFound
	}
	if err != nil {
		return model.Package{}, fmt.Errorf("failed to query package table: %w", err)
	}

	if description.Valid {
		pkg.Description = &description.String
	}

	pkg.ProductIDs, err = r.getProductIDs(ctx, pkg.ID)
	if err != nil {
		return model.Package{}, err
	}

	return pkg, nil
}

// List retrieves all packages in insertion order. An updated package keeps its
// original position.
func (r *PackageRepository) List(ctx context.Context) ([]model.Package, error) {
	query := `
        SELECT id, name, description, total_price
        FROM package
        ORDER BY rowid ASC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query package table: %w", err)
	}
	defer rows.Close()

	packages := []model.Package{}

	for rows.Next() {
		var pkg model.Package
		var description sql.NullString

		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&description,
			&pkg.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package table results: %w", err)
		}

		if description.Valid {
			pkg.Description = &description.String
		}

		pkg.ProductIDs = []string{}
		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating package table: %w", err)
	}

	if err := r.attachProductIDs(ctx, packages); err != nil {
		return nil, err
	}

	return packages, nil
}

// Replace performs a full update of the package with the given ID. The record
// keeps its ID and list position; every other field is replaced.
// Returns apperrors.ErrPackageNotFound if no package with that ID exists.
func (r *PackageRepository) Replace(ctx context.Context, pkg model.Package) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := `
        UPDATE package
        SET name = ?, description = ?, total_price = ?
        WHERE id = ?
    `

	result, err := tx.ExecContext(ctx, query, pkg.Name, pkg.Description, pkg.TotalPrice, pkg.ID)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrPackageNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM package_product WHERE package_id = ?`, pkg.ID); err != nil {
		return fmt.Errorf("failed to clear package products: %w", err)
	}

	if err := insertProductIDs(ctx, tx, pkg.ID, pkg.ProductIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit package update: %w", err)
	}

	return nil
}

// Delete removes the package with the given ID and returns the removed record.
// Returns apperrors.ErrPackageNotFound if the ID is empty or no such package
// exists, so repeated deletes of the same ID stay idempotent.
func (r *PackageRepository) Delete(ctx context.Context, id string) (model.Package, error) {
	pkg, err := r.Get(ctx, id)
	if err != nil {
		return model.Package{}, err
	}

	// package_product rows go with it via ON DELETE CASCADE
	result, err := r.db.ExecContext(ctx, `DELETE FROM package WHERE id = ?`, id)
	if err != nil {
		return model.Package{}, fmt.Errorf("failed to delete package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return model.Package{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Lost the race with a concurrent delete.
		return model.Package{}, apperrors.ErrPackageNotFound
	}

	return pkg, nil
}

// getProductIDs loads the ordered product references of a single package.
func (r *PackageRepository) getProductIDs(ctx context.Context, packageID string) ([]string, error) {
	query := `
        SELECT product_id
        FROM package_product
        WHERE package_id = ?
        ORDER BY position ASC
    `

	rows, err := r.db.QueryContext(ctx, query, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query package_product table: %w", err)
	}
	defer rows.Close()

	productIDs := []string{}

	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("failed to scan package_product table results: %w", err)
		}
		productIDs = append(productIDs, productID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating package_product table: %w", err)
	}

	return productIDs, nil
}

// attachProductIDs loads product references for all given packages in one
// query and attaches them in position order.
func (r *PackageRepository) attachProductIDs(ctx context.Context, packages []model.Package) error {
	if len(packages) == 0 {
		return nil
	}

	query := `
        SELECT package_id, product_id
        FROM package_product
        ORDER BY package_id ASC, position ASC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query package_product table: %w", err)
	}
	defer rows.Close()

	productIDsByPackage := make(map[string][]string)

	for rows.Next() {
		var packageID, productID string
		if err := rows.Scan(&packageID, &productID); err != nil {
			return fmt.Errorf("failed to scan package_product table results: %w", err)
		}
		productIDsByPackage[packageID] = append(productIDsByPackage[packageID], productID)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating package_product table: %w", err)
	}

	for i := range packages {
		if ids, ok := productIDsByPackage[packages[i].ID]; ok {
			packages[i].ProductIDs = ids
		}
	}

	return nil
}

// insertProductIDs writes the ordered product references of a package inside
// an existing transaction.
func insertProductIDs(ctx context.Context, tx *sql.Tx, packageID string, productIDs []string) error {
	query := `
        INSERT INTO package_product (package_id, position, product_id)
        VALUES (?, ?, ?)
    `

	for position, productID := range productIDs {
		if _, err := tx.ExecContext(ctx, query, packageID, position, productID); err != nil {
			return fmt.Errorf("failed to insert package product: %w", err)
		}
	}

	return nil
}
