// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/response"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/validation"
)

// ValidatePackageIDMiddleware validates that the id URL parameter is present
// and is a valid UUID. Returns 400 Bad Request if the package ID is missing or
// malformed, before any handler or upstream work happens.
//
// Example usage in router:
//
//	r.Route("/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidatePackageIDMiddleware)
//	    r.Get("/", handler.GetPackage)
//	})
func ValidatePackageIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid package ID is required", "")
			return
		}

		if err := validation.ValidateUUID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid package ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
