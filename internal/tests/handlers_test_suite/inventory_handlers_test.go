package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	handler "github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
)

func TestCreateInventoryHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	product := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	w := createInventory(r, handler.InventoryRequest{ProductId: product.Id, QuantityInStock: 2, LowStockThreshold: 5})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ProductId != product.Id {
		t.Errorf("expected product id %d, got %d", product.Id, resp.ProductId)
	}
	if !resp.LowStock {
		t.Errorf("expected low_stock true for quantity 2 under threshold 5")
	}
	if resp.CreatedAt == "" || resp.LastUpdated == "" {
		t.Errorf("expected timestamps to be set, got %q/%q", resp.CreatedAt, resp.LastUpdated)
	}
}

func TestCreateInventoryHandler_DuplicateForProduct(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	product := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	if w := createInventory(r, handler.InventoryRequest{ProductId: product.Id, QuantityInStock: 10, LowStockThreshold: 3}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	w := createInventory(r, handler.InventoryRequest{ProductId: product.Id, QuantityInStock: 5, LowStockThreshold: 3})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestCreateInventoryHandler_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	w := createInventory(r, handler.InventoryRequest{ProductId: 999999, QuantityInStock: 1, LowStockThreshold: 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestCreateInventoryHandler_NegativeQuantity(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	product := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	w := createInventory(r, handler.InventoryRequest{ProductId: product.Id, QuantityInStock: -1, LowStockThreshold: 3})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) == 0 || resp[0].Field != "QuantityInStock" {
		t.Errorf("expected validation error for 'QuantityInStock', got %v", resp)
	}
}

func TestGetLowStockHandler_StrictlyBelowThreshold(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	low := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)
	atThreshold := seedProduct(t, r, "Mouse", "SKU-2", categoryID, supplierID)

	createInventory(r, handler.InventoryRequest{ProductId: low.Id, QuantityInStock: 2, LowStockThreshold: 5})
	createInventory(r, handler.InventoryRequest{ProductId: atThreshold.Id, QuantityInStock: 5, LowStockThreshold: 5})

	w := doJSON(r, http.MethodGet, "/inventory/low-stock", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var records []handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 low-stock record, got %d", len(records))
	}
	if records[0].ProductId != low.Id {
		t.Errorf("expected product %d flagged, got %d", low.Id, records[0].ProductId)
	}
}

func TestUpdateInventoryByProductIDHandler_Merge(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	product := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	if w := createInventory(r, handler.InventoryRequest{ProductId: product.Id, QuantityInStock: 10, LowStockThreshold: 3}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	qty := 2
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/inventory/product/%d", product.Id),
		handler.UpdateInventoryRequest{QuantityInStock: &qty}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var updated handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.QuantityInStock != 2 {
		t.Errorf("expected quantity 2, got %d", updated.QuantityInStock)
	}
	if updated.LowStockThreshold != 3 {
		t.Errorf("threshold should be unchanged, got %d", updated.LowStockThreshold)
	}
	if !updated.LowStock {
		t.Errorf("expected low_stock true after dropping below threshold")
	}
}

func TestUpdateInventoryByProductIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	qty := 5
	w := doJSON(r, http.MethodPut, "/inventory/product/999999", handler.UpdateInventoryRequest{QuantityInStock: &qty}, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetInventoryByProductIDHandler(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	product := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)
	createInventory(r, handler.InventoryRequest{ProductId: product.Id, QuantityInStock: 10, LowStockThreshold: 3})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/inventory/product/%d", product.Id), nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ProductId != product.Id || resp.QuantityInStock != 10 {
		t.Errorf("unexpected record: %+v", resp)
	}
}

func TestDeleteInventoryHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodDelete, "/inventory/999999", nil, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
