package validation_test

import (
	"errors"
	"testing"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/api/request"
	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/validation"
)

func TestValidatePackage(t *testing.T) {
	desc := "A bundle"

	tests := []struct {
		name       string
		req        request.PackageRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req: request.PackageRequest{
				Name:        "Bundle",
				Description: &desc,
				ProductIDs:  []string{"p1"},
			},
		},
		{
			name: "empty product list is valid",
			req: request.PackageRequest{
				Name:       "Bundle",
				ProductIDs: []string{},
			},
		},
		{
			name: "missing description is valid",
			req: request.PackageRequest{
				Name:       "Bundle",
				ProductIDs: []string{"p1"},
			},
		},
		{
			name: "missing name",
			req: request.PackageRequest{
				ProductIDs: []string{"p1"},
			},
			wantFields: []string{"name"},
		},
		{
			name: "whitespace-only name",
			req: request.PackageRequest{
				Name:       "   ",
				ProductIDs: []string{"p1"},
			},
			wantFields: []string{"name"},
		},
		{
			name: "missing product list",
			req: request.PackageRequest{
				Name: "Bundle",
			},
			wantFields: []string{"productIds"},
		},
		{
			name:       "missing name and product list",
			req:        request.PackageRequest{},
			wantFields: []string{"name", "productIds"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidatePackage(tt.req)

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			var validationErr *validation.Error
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected *validation.Error, got %v", err)
			}
			if len(validationErr.Fields) != len(tt.wantFields) {
				t.Errorf("Expected %d field errors, got %d: %v",
					len(tt.wantFields), len(validationErr.Fields), validationErr.Fields)
			}
			for _, field := range tt.wantFields {
				if _, ok := validationErr.Fields[field]; !ok {
					t.Errorf("Expected an error for field %q, got %v", field, validationErr.Fields)
				}
			}
		})
	}
}

func TestValidateUUID(t *testing.T) {
	t.Run("accepts a canonical UUID", func(t *testing.T) {
		if err := validation.ValidateUUID("c6f2b9d4-3f1a-4f6e-9d2b-8a7c5e4d3f21"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a malformed UUID", func(t *testing.T) {
		err := validation.ValidateUUID("not-a-uuid")
		if !errors.Is(err, validation.ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})
}
