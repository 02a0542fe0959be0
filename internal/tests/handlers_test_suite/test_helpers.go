package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	handler "github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-manager/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/rogerio-castellano/inventory-manager/internal/service"
)

var (
	token         string
	categoryRepo  *repo.InMemoryCategoryRepository
	supplierRepo  *repo.InMemorySupplierRepository
	productRepo   *repo.InMemoryProductRepository
	inventoryRepo *repo.InMemoryInventoryRepository
	userRepo      *repo.InMemoryUserRepository
)

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos("secret123")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	supplierRepo = repo.NewInMemorySupplierRepository()
	productRepo = repo.NewInMemoryProductRepository()
	inventoryRepo = repo.NewInMemoryInventoryRepository()
	userRepo = repo.NewInMemoryUserRepository()

	handler.SetCategoryService(service.NewCategoryService(categoryRepo, productRepo))
	handler.SetSupplierService(service.NewSupplierService(supplierRepo, productRepo))
	handler.SetProductService(service.NewProductService(productRepo, categoryRepo, supplierRepo, inventoryRepo))
	handler.SetInventoryService(service.NewInventoryService(inventoryRepo, productRepo))
	handler.SetUserService(service.NewUserService(userRepo))

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.Create(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	metricsRepo := repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	metricsRepo.SetRepositories(productRepo, categoryRepo, supplierRepo, inventoryRepo)
}

func clearAllCatalog() {
	inventoryRepo.Clear()
	productRepo.Clear()
	categoryRepo.Clear()
	supplierRepo.Clear()
}

func clearAllUsersExceptAdmin() {
	users, _ := userRepo.GetAll()
	for _, u := range users {
		if u.Username != "admin" {
			userRepo.Delete(u.ID)
		}
	}
}

func generateToken(r http.Handler, username, password string) (string, error) {
	// the login route is rate limited per IP, so drop any accumulated state
	rl.CleanupAllVisitors()

	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any, authed bool) *httptest.ResponseRecorder {
	bearer := ""
	if authed {
		bearer = token
	}
	return doJSONWithToken(r, method, path, payload, bearer)
}

func doJSONWithToken(r http.Handler, method, path string, payload any, bearer string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, req handler.CategoryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/categories", req, true)
}

func createSupplier(r http.Handler, req handler.SupplierRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/suppliers", req, true)
}

func createProduct(r http.Handler, req handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", req, true)
}

func createInventory(r http.Handler, req handler.InventoryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/inventory", req, true)
}

// seedCatalog creates a category and a supplier so product tests have valid
// references to point at.
func seedCatalog(t *testing.T, r http.Handler) (categoryID, supplierID int) {
	t.Helper()

	w := createCategory(r, handler.CategoryRequest{Name: "Electronics"})
	if w.Code != http.StatusCreated {
		t.Fatalf("seeding category failed with status %d", w.Code)
	}
	var cat handler.CategoryResponse
	if err := json.NewDecoder(w.Body).Decode(&cat); err != nil {
		t.Fatalf("error decoding category response: %v", err)
	}

	w = createSupplier(r, handler.SupplierRequest{Name: "Acme", ContactInfo: "sales@acme.example.com"})
	if w.Code != http.StatusCreated {
		t.Fatalf("seeding supplier failed with status %d", w.Code)
	}
	var sup handler.SupplierResponse
	if err := json.NewDecoder(w.Body).Decode(&sup); err != nil {
		t.Fatalf("error decoding supplier response: %v", err)
	}

	return cat.Id, sup.Id
}

func seedProduct(t *testing.T, r http.Handler, name, sku string, categoryID, supplierID int) handler.ProductResponse {
	t.Helper()

	w := createProduct(r, handler.ProductRequest{
		Name:          name,
		Sku:           sku,
		PurchasePrice: 100,
		SellingPrice:  150,
		CategoryId:    categoryID,
		SupplierId:    supplierID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("seeding product %q failed with status %d: %s", name, w.Code, w.Body.String())
	}
	var p handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product response: %v", err)
	}
	return p
}
