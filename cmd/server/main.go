package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/config"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/database"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/exchange"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/productdir"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/repository"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// External clients
	productClient := productdir.NewDirectoryClient(
		cfg.ProductService.URL,
		cfg.ProductService.User,
		cfg.ProductService.Password,
	)
	rateClient := exchange.NewRateClient(cfg.ExchangeRate.URL)

	// Create repositories
	packageRepo := repository.NewPackageRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	packageService := service.NewPackageService(
		packageRepo,
		service.NewPriceAggregator(productClient),
		service.NewCurrencyConverter(rateClient, cfg.Currency.Base),
	)

	// Create router
	router := api.NewRouter(systemService, packageService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
