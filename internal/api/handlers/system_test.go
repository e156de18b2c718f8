package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/handlers"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/testutil"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/version"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy database returns 200", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp handlers.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if resp.Status != "healthy" || resp.Database != "connected" {
			t.Errorf("Unexpected health response: %+v", resp)
		}
	})

	t.Run("closed database returns 503", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		handler.Health(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected status 503, got %d", w.Code)
		}

		var resp handlers.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if resp.Status != "unhealthy" || resp.Database != "disconnected" {
			t.Errorf("Unexpected health response: %+v", resp)
		}
		if resp.Error == "" {
			t.Error("Expected an error message in the response")
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	t.Run("reports app and schema versions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()

		handler.Version(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp handlers.VersionInfoResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if resp.AppVersion != version.Version {
			t.Errorf("Expected app version %q, got %q", version.Version, resp.AppVersion)
		}
		if resp.DbVersion == "" || resp.DbVersion == "0" {
			t.Errorf("Expected a migrated schema version, got %q", resp.DbVersion)
		}
	})
}
