package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// ProductRepository defines the interface for product data operations.
// CountByCategory and CountBySupplier back the deletion guards on the
// parent entities.
type ProductRepository interface {
	Create(p models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	ExistsBySKU(sku string) (bool, error)
	CountByCategory(categoryID int) (int, error)
	CountBySupplier(supplierID int) (int, error)
	Update(p models.Product) (models.Product, error)
	Delete(id int) error
}
