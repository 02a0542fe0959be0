package service

import (
	"errors"

	"github.com/rogerio-castellano/inventory-manager/internal/apperr"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

type ProductService struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	suppliers  repo.SupplierRepository
	inventory  repo.InventoryRepository
}

func NewProductService(
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	suppliers repo.SupplierRepository,
	inventory repo.InventoryRepository,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		suppliers:  suppliers,
		inventory:  inventory,
	}
}

// NewProduct carries the fields of a product creation request. CategoryID
// and SupplierID are required and must resolve to existing rows.
type NewProduct struct {
	Name          string
	SKU           string
	Description   string
	PurchasePrice float64
	SellingPrice  float64
	CategoryID    int
	SupplierID    int
}

// ProductPatch carries the optional fields of a product update. A nil field
// leaves the current value unchanged.
type ProductPatch struct {
	Name          *string
	SKU           *string
	Description   *string
	PurchasePrice *float64
	SellingPrice  *float64
	CategoryID    *int
	SupplierID    *int
}

func (s *ProductService) List() ([]models.Product, error) {
	return s.products.GetAll()
}

func (s *ProductService) Get(id int) (models.Product, error) {
	p, err := s.products.GetByID(id)
	if errors.Is(err, repo.ErrProductNotFound) {
		return models.Product{}, apperr.NotFound("product not found with id %d", id)
	}
	return p, err
}

func (s *ProductService) Create(np NewProduct) (models.Product, error) {
	taken, err := s.products.ExistsBySKU(np.SKU)
	if err != nil {
		return models.Product{}, err
	}
	if taken {
		return models.Product{}, apperr.Duplicate("product with sku %q already exists", np.SKU)
	}

	if np.CategoryID == 0 {
		return models.Product{}, apperr.Invalid("category id is required for product creation")
	}
	if _, err := s.categories.GetByID(np.CategoryID); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return models.Product{}, apperr.NotFound("category not found with id %d", np.CategoryID)
		}
		return models.Product{}, err
	}

	if np.SupplierID == 0 {
		return models.Product{}, apperr.Invalid("supplier id is required for product creation")
	}
	if _, err := s.suppliers.GetByID(np.SupplierID); err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			return models.Product{}, apperr.NotFound("supplier not found with id %d", np.SupplierID)
		}
		return models.Product{}, err
	}

	created, err := s.products.Create(models.Product{
		Name:          np.Name,
		SKU:           np.SKU,
		Description:   np.Description,
		PurchasePrice: np.PurchasePrice,
		SellingPrice:  np.SellingPrice,
		CategoryID:    np.CategoryID,
		SupplierID:    np.SupplierID,
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Product{}, apperr.Duplicate("product with sku %q already exists", np.SKU)
	}
	return created, err
}

func (s *ProductService) Update(id int, patch ProductPatch) (models.Product, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Product{}, err
	}

	if patch.SKU != nil && *patch.SKU != existing.SKU {
		taken, err := s.products.ExistsBySKU(*patch.SKU)
		if err != nil {
			return models.Product{}, err
		}
		if taken {
			return models.Product{}, apperr.Duplicate("product with sku %q already exists", *patch.SKU)
		}
		existing.SKU = *patch.SKU
	}
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.PurchasePrice != nil {
		existing.PurchasePrice = *patch.PurchasePrice
	}
	if patch.SellingPrice != nil {
		existing.SellingPrice = *patch.SellingPrice
	}

	if patch.CategoryID != nil {
		if _, err := s.categories.GetByID(*patch.CategoryID); err != nil {
			if errors.Is(err, repo.ErrCategoryNotFound) {
				return models.Product{}, apperr.NotFound("category not found with id %d", *patch.CategoryID)
			}
			return models.Product{}, err
		}
		existing.CategoryID = *patch.CategoryID
	}
	if patch.SupplierID != nil {
		if _, err := s.suppliers.GetByID(*patch.SupplierID); err != nil {
			if errors.Is(err, repo.ErrSupplierNotFound) {
				return models.Product{}, apperr.NotFound("supplier not found with id %d", *patch.SupplierID)
			}
			return models.Product{}, err
		}
		existing.SupplierID = *patch.SupplierID
	}

	updated, err := s.products.Update(existing)
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Product{}, apperr.Duplicate("product with sku %q already exists", existing.SKU)
	}
	return updated, err
}

func (s *ProductService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	hasInventory, err := s.inventory.ExistsForProduct(id)
	if err != nil {
		return err
	}
	if hasInventory {
		return apperr.Invalid("cannot delete product with existing inventory record; delete inventory first")
	}

	err = s.products.Delete(id)
	if errors.Is(err, repo.ErrDependentRowsExist) {
		return apperr.Invalid("cannot delete product with existing inventory record; delete inventory first")
	}
	if errors.Is(err, repo.ErrProductNotFound) {
		return apperr.NotFound("product not found with id %d", id)
	}
	return err
}
