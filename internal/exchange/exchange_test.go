package exchange_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/exchange"
)

func TestRateClient_Latest(t *testing.T) {
	t.Run("fetches the latest quote for the base currency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/latest" {
				t.Errorf("Expected path /latest, got %s", r.URL.Path)
			}
			if from := r.URL.Query().Get("from"); from != "USD" {
				t.Errorf("Expected from=USD, got %q", from)
			}

			json.NewEncoder(w).Encode(map[string]interface{}{
				"amount": 1.0,
				"base":   "USD",
				"date":   "2026-08-31",
				"rates": map[string]float64{
					"EUR": 0.92,
					"GBP": 0.79,
				},
			})
		}))
		defer server.Close()

		client := exchange.NewRateClient(server.URL)

		quote, err := client.Latest(context.Background(), "USD")
		if err != nil {
			t.Fatalf("Latest() returned unexpected error: %v", err)
		}
		if quote.Base != "USD" {
			t.Errorf("Expected base USD, got %q", quote.Base)
		}
		if quote.Rates["EUR"] != 0.92 {
			t.Errorf("Expected EUR rate 0.92, got %v", quote.Rates["EUR"])
		}
	})

	t.Run("uppercases the base in the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if from := r.URL.Query().Get("from"); from != "USD" {
				t.Errorf("Expected from=USD, got %q", from)
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"amount": 1.0,
				"base":   "USD",
				"rates":  map[string]float64{"EUR": 0.92},
			})
		}))
		defer server.Close()

		client := exchange.NewRateClient(server.URL)

		if _, err := client.Latest(context.Background(), "usd"); err != nil {
			t.Fatalf("Latest() returned unexpected error: %v", err)
		}
	})

	t.Run("mismatched quote base is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"amount": 1.0,
				"base":   "EUR",
				"rates":  map[string]float64{"USD": 1.09},
			})
		}))
		defer server.Close()

		client := exchange.NewRateClient(server.URL)

		if _, err := client.Latest(context.Background(), "USD"); err == nil {
			t.Fatal("Expected an error for a mismatched quote base")
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := exchange.NewRateClient(server.URL)

		if _, err := client.Latest(context.Background(), "USD"); err == nil {
			t.Fatal("Expected an error for a 502 response")
		}
	})

	t.Run("malformed response body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer server.Close()

		client := exchange.NewRateClient(server.URL)

		if _, err := client.Latest(context.Background(), "USD"); err == nil {
			t.Fatal("Expected an error for a malformed body")
		}
	})

	t.Run("short base is rejected without a request", func(t *testing.T) {
		requested := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = true
		}))
		defer server.Close()

		client := exchange.NewRateClient(server.URL)

		if _, err := client.Latest(context.Background(), "US"); err == nil {
			t.Fatal("Expected an error for a short base code")
		}
		if requested {
			t.Error("Expected no HTTP request for an invalid base")
		}
	})
}
