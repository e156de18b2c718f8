package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPackageNotFound indicates that a package with the given ID does not exist.
	ErrPackageNotFound = errors.New("package not found")

	// ErrProductNotFound indicates that a product ID could not be resolved
	// against the product directory. Because package totals are all-or-nothing,
	// a single unresolvable product rejects the whole write.
	ErrProductNotFound = errors.New("product not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrievePackages = errors.New("failed to retrieve packages")
	ErrFailedToRetrievePackage  = errors.New("failed to retrieve package")
	ErrFailedToCreatePackage    = errors.New("failed to create package")
	ErrFailedToUpdatePackage    = errors.New("failed to update package")
	ErrFailedToDeletePackage    = errors.New("failed to delete package")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
