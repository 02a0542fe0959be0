package repo

import (
	models "github.com/rogerio-castellano/inventory-manager/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	records []models.Inventory
	nextID  int
}

func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		records: []models.Inventory{},
		nextID:  1,
	}
}

func (r *InMemoryInventoryRepository) Create(inv models.Inventory) (models.Inventory, error) {
	for _, existing := range r.records {
		if existing.ProductID == inv.ProductID {
			return models.Inventory{}, ErrDuplicatedValueUnique
		}
	}
	inv.ID = r.nextID
	r.nextID++
	r.records = append(r.records, inv)
	return inv, nil
}

func (r *InMemoryInventoryRepository) GetAll() ([]models.Inventory, error) {
	return r.records, nil
}

func (r *InMemoryInventoryRepository) GetByID(id int) (models.Inventory, error) {
	for _, inv := range r.records {
		if inv.ID == id {
			return inv, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) GetByProductID(productID int) (models.Inventory, error) {
	for _, inv := range r.records {
		if inv.ProductID == productID {
			return inv, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) ExistsForProduct(productID int) (bool, error) {
	for _, inv := range r.records {
		if inv.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryInventoryRepository) ListLowStock() ([]models.Inventory, error) {
	var low []models.Inventory
	for _, inv := range r.records {
		if inv.LowStock() {
			low = append(low, inv)
		}
	}
	return low, nil
}

func (r *InMemoryInventoryRepository) Update(inv models.Inventory) (models.Inventory, error) {
	for i, existing := range r.records {
		if existing.ID == inv.ID {
			r.records[i] = inv
			return inv, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) Delete(id int) error {
	for i, inv := range r.records {
		if inv.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) Clear() {
	r.records = []models.Inventory{}
	r.nextID = 1
}
