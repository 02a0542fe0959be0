package service

import (
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// fixture wires every service against shared in-memory repositories so the
// cross-entity guards can be exercised end to end.
type fixture struct {
	categories *repo.InMemoryCategoryRepository
	suppliers  *repo.InMemorySupplierRepository
	products   *repo.InMemoryProductRepository
	inventory  *repo.InMemoryInventoryRepository
	users      *repo.InMemoryUserRepository

	categoryService  *CategoryService
	supplierService  *SupplierService
	productService   *ProductService
	inventoryService *InventoryService
	userService      *UserService
}

func newFixture() *fixture {
	f := &fixture{
		categories: repo.NewInMemoryCategoryRepository(),
		suppliers:  repo.NewInMemorySupplierRepository(),
		products:   repo.NewInMemoryProductRepository(),
		inventory:  repo.NewInMemoryInventoryRepository(),
		users:      repo.NewInMemoryUserRepository(),
	}
	f.categoryService = NewCategoryService(f.categories, f.products)
	f.supplierService = NewSupplierService(f.suppliers, f.products)
	f.productService = NewProductService(f.products, f.categories, f.suppliers, f.inventory)
	f.inventoryService = NewInventoryService(f.inventory, f.products)
	f.userService = NewUserService(f.users)
	return f
}

func (f *fixture) seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	c, err := f.categoryService.Create(name)
	if err != nil {
		t.Fatalf("seeding category %q failed: %v", name, err)
	}
	return c
}

func (f *fixture) seedSupplier(t *testing.T, name string) models.Supplier {
	t.Helper()
	s, err := f.supplierService.Create(name, name+"@example.com")
	if err != nil {
		t.Fatalf("seeding supplier %q failed: %v", name, err)
	}
	return s
}

func (f *fixture) seedProduct(t *testing.T, name, sku string, categoryID, supplierID int) models.Product {
	t.Helper()
	p, err := f.productService.Create(NewProduct{
		Name:          name,
		SKU:           sku,
		PurchasePrice: 10,
		SellingPrice:  15,
		CategoryID:    categoryID,
		SupplierID:    supplierID,
	})
	if err != nil {
		t.Fatalf("seeding product %q failed: %v", name, err)
	}
	return p
}
