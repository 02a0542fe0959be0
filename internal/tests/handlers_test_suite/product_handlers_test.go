package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	handler "github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)

	w := createProduct(r, handler.ProductRequest{
		Name:          "Laptop",
		Sku:           "SKU-1",
		Description:   "15 inch, 16GB RAM",
		PurchasePrice: 1000,
		SellingPrice:  1500,
		CategoryId:    categoryID,
		SupplierId:    supplierID,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.Name)
	}
	if resp.Sku != "SKU-1" {
		t.Errorf("expected sku 'SKU-1', got %v", resp.Sku)
	}
	if resp.CategoryId != categoryID || resp.SupplierId != supplierID {
		t.Errorf("expected references %d/%d, got %d/%d", categoryID, supplierID, resp.CategoryId, resp.SupplierId)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and sku",
			payload:        handler.ProductRequest{CategoryId: categoryID, SupplierId: supplierID},
			expectedErrors: []string{"Name", "Sku"},
		},
		{
			name: "Negative prices",
			payload: handler.ProductRequest{
				Name: "Laptop", Sku: "SKU-1",
				PurchasePrice: -1, SellingPrice: -1,
				CategoryId: categoryID, SupplierId: supplierID,
			},
			expectedErrors: []string{"PurchasePrice", "SellingPrice"},
		},
		{
			name:           "Missing references",
			payload:        handler.ProductRequest{Name: "Laptop", Sku: "SKU-1"},
			expectedErrors: []string{"CategoryId", "SupplierId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %q", ct)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_UnknownCategory(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	_, supplierID := seedCatalog(t, r)

	w := createProduct(r, handler.ProductRequest{
		Name: "Laptop", Sku: "SKU-1",
		PurchasePrice: 100, SellingPrice: 150,
		CategoryId: 999999, SupplierId: supplierID,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestCreateProductHandler_DuplicateSKU(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	w := createProduct(r, handler.ProductRequest{
		Name: "Other Laptop", Sku: "SKU-1",
		PurchasePrice: 100, SellingPrice: 150,
		CategoryId: categoryID, SupplierId: supplierID,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	badJSON := `{name: "Invalid" sku: "SKU-1" "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}

	expectedBody := "invalid input\n"
	if w.Body.String() != expectedBody {
		t.Errorf("expected response body %q, got %q", expectedBody, w.Body.String())
	}
}

func TestUpdateProductHandler_PartialDescription(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	created := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	description := "New description"
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", created.Id),
		handler.UpdateProductRequest{Description: &description}, true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Description != description {
		t.Errorf("expected description %q, got %q", description, updated.Description)
	}
	if updated.Name != created.Name || updated.Sku != created.Sku {
		t.Errorf("name/sku should be unchanged, got %q/%q", updated.Name, updated.Sku)
	}
	if updated.PurchasePrice != created.PurchasePrice || updated.SellingPrice != created.SellingPrice {
		t.Errorf("prices should be unchanged, got %v/%v", updated.PurchasePrice, updated.SellingPrice)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	name := "Ghost"
	w := doJSON(r, http.MethodPut, "/products/999999", handler.UpdateProductRequest{Name: &name}, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateProductHandler_ValidationErrors(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	created := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	empty := ""
	negative := -10.0
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", created.Id),
		handler.UpdateProductRequest{Name: &empty, PurchasePrice: &negative}, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	for _, field := range []string{"Name", "PurchasePrice"} {
		found := false
		for _, err := range resp {
			if err.Field == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected validation error for %q", field)
		}
	}
}

func TestDeleteProductHandler_BlockedByInventory(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	product := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	w := createInventory(r, handler.InventoryRequest{ProductId: product.Id, QuantityInStock: 10, LowStockThreshold: 3})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for inventory, got %d", w.Code)
	}
	var inv handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&inv); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", product.Id), nil, true); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict while inventory exists, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/inventory/%d", inv.Id), nil, true); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content deleting inventory, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", product.Id), nil, true); w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content once inventory is gone, got %d", w.Code)
	}
}

func TestGetProductByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/products/999999", nil, false)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
