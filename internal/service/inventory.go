package service

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/apperr"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

type InventoryService struct {
	inventory repo.InventoryRepository
	products  repo.ProductRepository
}

func NewInventoryService(inventory repo.InventoryRepository, products repo.ProductRepository) *InventoryService {
	return &InventoryService{inventory: inventory, products: products}
}

// InventoryPatch carries the optional fields of an inventory update. A nil
// field leaves the current value unchanged.
type InventoryPatch struct {
	QuantityInStock   *int
	LowStockThreshold *int
}

func (s *InventoryService) List() ([]models.Inventory, error) {
	return s.inventory.GetAll()
}

func (s *InventoryService) GetByProductID(productID int) (models.Inventory, error) {
	inv, err := s.inventory.GetByProductID(productID)
	if errors.Is(err, repo.ErrInventoryNotFound) {
		return models.Inventory{}, apperr.NotFound("inventory not found for product id %d", productID)
	}
	return inv, err
}

func (s *InventoryService) Create(productID, quantityInStock, lowStockThreshold int) (models.Inventory, error) {
	if productID == 0 {
		return models.Inventory{}, apperr.Invalid("product id is required for inventory creation")
	}

	if _, err := s.products.GetByID(productID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return models.Inventory{}, apperr.NotFound("product not found with id %d", productID)
		}
		return models.Inventory{}, err
	}

	exists, err := s.inventory.ExistsForProduct(productID)
	if err != nil {
		return models.Inventory{}, err
	}
	if exists {
		return models.Inventory{}, apperr.Duplicate("inventory record already exists for product id %d", productID)
	}

	now := time.Now().UTC()
	created, err := s.inventory.Create(models.Inventory{
		ProductID:         productID,
		QuantityInStock:   quantityInStock,
		LowStockThreshold: lowStockThreshold,
		CreatedAt:         now,
		LastUpdated:       now,
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Inventory{}, apperr.Duplicate("inventory record already exists for product id %d", productID)
	}
	return created, err
}

// UpdateByProductID merges the provided fields into the inventory row keyed
// by product and restamps last_updated.
func (s *InventoryService) UpdateByProductID(productID int, patch InventoryPatch) (models.Inventory, error) {
	existing, err := s.GetByProductID(productID)
	if err != nil {
		return models.Inventory{}, err
	}

	if patch.QuantityInStock != nil {
		existing.QuantityInStock = *patch.QuantityInStock
	}
	if patch.LowStockThreshold != nil {
		existing.LowStockThreshold = *patch.LowStockThreshold
	}
	existing.LastUpdated = time.Now().UTC()

	updated, err := s.inventory.Update(existing)
	if errors.Is(err, repo.ErrInventoryNotFound) {
		return models.Inventory{}, apperr.NotFound("inventory not found for product id %d", productID)
	}
	return updated, err
}

// ListLowStock returns the rows whose quantity is strictly below their
// threshold.
func (s *InventoryService) ListLowStock() ([]models.Inventory, error) {
	return s.inventory.ListLowStock()
}

func (s *InventoryService) DeleteByID(id int) error {
	err := s.inventory.Delete(id)
	if errors.Is(err, repo.ErrInventoryNotFound) {
		return apperr.NotFound("inventory not found with id %d", id)
	}
	return err
}
