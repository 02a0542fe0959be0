package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// SupplierRepository defines the interface for supplier data operations.
type SupplierRepository interface {
	Create(s models.Supplier) (models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	GetByID(id int) (models.Supplier, error)
	ExistsByName(name string) (bool, error)
	Update(s models.Supplier) (models.Supplier, error)
	Delete(id int) error
}
