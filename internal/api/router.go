package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/handlers"
	custommiddleware "github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/middleware"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/config"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, packageService *service.PackageService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// Package routes
	r.Route("/packages", func(r chi.Router) {
		packageHandler := handlers.NewPackageHandler(packageService)
		r.Get("/", packageHandler.ListPackages)
		r.Post("/", packageHandler.CreatePackage)

		r.Route("/{id}", func(r chi.Router) {
			r.With(custommiddleware.ValidatePackageIDMiddleware).Get("/", packageHandler.GetPackage)
			r.With(custommiddleware.ValidatePackageIDMiddleware).Put("/", packageHandler.UpdatePackage)
			// No UUID validation on delete: deleting an id that cannot exist
			// reports not-found, the same as any other absent id.
			r.Delete("/", packageHandler.DeletePackage)
		})
	})

	// System namespace
	r.Route("/api/system", func(r chi.Router) {
		systemHandler := handlers.NewSystemHandler(systemService)
		r.Get("/health", systemHandler.Health)
		r.Get("/version", systemHandler.Version)
	})

	return r
}
