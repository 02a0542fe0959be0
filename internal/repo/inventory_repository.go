package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// InventoryRepository defines the interface for inventory data operations.
// Lookups by product id exist because inventory is keyed 1:1 to a product.
type InventoryRepository interface {
	Create(inv models.Inventory) (models.Inventory, error)
	GetAll() ([]models.Inventory, error)
	GetByID(id int) (models.Inventory, error)
	GetByProductID(productID int) (models.Inventory, error)
	ExistsForProduct(productID int) (bool, error)
	ListLowStock() ([]models.Inventory, error)
	Update(inv models.Inventory) (models.Inventory, error)
	Delete(id int) error
}
