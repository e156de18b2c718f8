package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/apperrors"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/request"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/response"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/service"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/validation"
)

// PackageHandler handles HTTP requests for package endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the packageService.
type PackageHandler struct {
	packageService *service.PackageService
}

// NewPackageHandler creates a new PackageHandler with the provided service dependency.
func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// ListPackages handles GET requests to retrieve all packages.
//
// Endpoint: GET /packages?currencyToUse=EUR
// Response: 200 OK with array of packages, totals converted when a currency
// is requested
// Error: 500 Internal Server Error if retrieval fails
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	currency := r.URL.Query().Get("currencyToUse")

	packages, err := h.packageService.ListPackages(r.Context(), currency)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePackages.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, packages)
}

// CreatePackage handles POST requests to create a new package.
//
// Endpoint: POST /packages
// Response: 200 OK with the created package, total computed from the product
// directory
// Error: 400 Bad Request on a malformed body, missing fields, or an
// unresolvable product ID
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidatePackage(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	pkg, err := h.packageService.CreatePackage(r.Context(), req.Name, req.Description, req.ProductIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductNotFound) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreatePackage.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, pkg)
}

// GetPackage handles GET requests to retrieve a single package.
//
// Endpoint: GET /packages/{id}?currencyToUse=EUR
// Response: 200 OK with the package, total converted when a currency is
// requested
// Error: 404 Not Found for an unknown ID
func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	currency := r.URL.Query().Get("currencyToUse")

	pkg, err := h.packageService.GetPackage(r.Context(), id, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrPackageNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPackageNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePackage.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, pkg)
}

// UpdatePackage handles PUT requests for a full replace of a package.
//
// Endpoint: PUT /packages/{id}
// Response: 200 OK with the updated package, total recomputed from the
// product directory
// Error: 400 Bad Request on validation failure (existing record untouched),
// 404 Not Found for an unknown ID
func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidatePackage(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	pkg, err := h.packageService.UpdatePackage(r.Context(), id, req.Name, req.Description, req.ProductIDs)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPackageNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPackageNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrProductNotFound):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdatePackage.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, pkg)
}

// DeletePackage handles DELETE requests to remove a package.
//
// Endpoint: DELETE /packages/{id}
// Response: 200 OK with the deleted package
// Error: 204 No Content when the ID does not exist — deletes are idempotent,
// repeating one is not an error
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pkg, err := h.packageService.DeletePackage(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPackageNotFound) {
			response.RespondJSON(w, http.StatusNoContent, nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeletePackage.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, pkg)
}
