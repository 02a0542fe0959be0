package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	handler "github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
)

func TestCreateCategoryHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	w := createCategory(r, handler.CategoryRequest{Name: "Electronics"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.CategoryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Electronics" {
		t.Errorf("expected name 'Electronics', got %v", resp.Name)
	}
	if resp.Id == 0 {
		t.Errorf("expected an assigned id")
	}
}

func TestCreateCategoryHandler_ValidationError(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	w := createCategory(r, handler.CategoryRequest{Name: ""})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) == 0 || resp[0].Field != "Name" {
		t.Errorf("expected validation error for 'Name', got %v", resp)
	}
}

func TestCreateCategoryHandler_Duplicate(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	if w := createCategory(r, handler.CategoryRequest{Name: "Electronics"}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w := createCategory(r, handler.CategoryRequest{Name: "Electronics"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestCreateCategoryHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/categories", handler.CategoryRequest{Name: "Electronics"}, false)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestGetCategoriesHandler_Public(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	createCategory(r, handler.CategoryRequest{Name: "Electronics"})
	createCategory(r, handler.CategoryRequest{Name: "Furniture"})

	w := doJSON(r, http.MethodGet, "/categories", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var categories []handler.CategoryResponse
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(categories))
	}
}

func TestUpdateCategoryHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	name := "Ghost"
	w := doJSON(r, http.MethodPut, "/categories/999999", handler.UpdateCategoryRequest{Name: &name}, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteCategoryHandler_BlockedByProducts(t *testing.T) {
	t.Cleanup(clearAllCatalog)
	r := api.NewRouter()

	categoryID, supplierID := seedCatalog(t, r)
	product := seedProduct(t, r, "Laptop", "SKU-1", categoryID, supplierID)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), nil, true)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict while products exist, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", product.Id), nil, true); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content deleting product, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), nil, true); w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content once products are gone, got %d", w.Code)
	}
}
