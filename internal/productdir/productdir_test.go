package productdir_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/productdir"
)

func TestDirectoryClient_GetProduct(t *testing.T) {
	t.Run("fetches a product with basic auth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/products/p1" {
				t.Errorf("Expected path /products/p1, got %s", r.URL.Path)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "apiuser" || pass != "secret" {
				t.Errorf("Expected basic auth apiuser/secret, got %q/%q (ok=%v)", user, pass, ok)
			}

			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":       "p1",
				"name":     "Shield",
				"usdPrice": 899.0,
			})
		}))
		defer server.Close()

		client := productdir.NewDirectoryClient(server.URL, "apiuser", "secret")

		product, err := client.GetProduct(context.Background(), "p1")
		if err != nil {
			t.Fatalf("GetProduct() returned unexpected error: %v", err)
		}
		if product.ID != "p1" || product.Name != "Shield" || product.UsdPrice != 899.0 {
			t.Errorf("Unexpected product: %+v", product)
		}
	})

	t.Run("escapes the product id in the path", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			json.NewEncoder(w).Encode(map[string]interface{}{"id": "a/b"})
		}))
		defer server.Close()

		client := productdir.NewDirectoryClient(server.URL, "u", "p")

		if _, err := client.GetProduct(context.Background(), "a/b"); err != nil {
			t.Fatalf("GetProduct() returned unexpected error: %v", err)
		}
		if gotPath != "/products/a%2Fb" {
			t.Errorf("Expected escaped path /products/a%%2Fb, got %s", gotPath)
		}
	})

	t.Run("404 reports the product as missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := productdir.NewDirectoryClient(server.URL, "u", "p")

		_, err := client.GetProduct(context.Background(), "ghost")
		if err == nil {
			t.Fatal("Expected an error for a missing product")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("Expected a not-found error, got %v", err)
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := productdir.NewDirectoryClient(server.URL, "u", "p")

		if _, err := client.GetProduct(context.Background(), "p1"); err == nil {
			t.Fatal("Expected an error for a 500 response")
		}
	})

	t.Run("malformed response body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer server.Close()

		client := productdir.NewDirectoryClient(server.URL, "u", "p")

		if _, err := client.GetProduct(context.Background(), "p1"); err == nil {
			t.Fatal("Expected an error for a malformed body")
		}
	})

	t.Run("empty id is rejected without a request", func(t *testing.T) {
		requested := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = true
		}))
		defer server.Close()

		client := productdir.NewDirectoryClient(server.URL, "u", "p")

		if _, err := client.GetProduct(context.Background(), ""); err == nil {
			t.Fatal("Expected an error for an empty id")
		}
		if requested {
			t.Error("Expected no HTTP request for an empty id")
		}
	})
}
