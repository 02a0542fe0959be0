package service

import (
	"errors"

	"github.com/rogerio-castellano/inventory-manager/internal/apperr"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

type SupplierService struct {
	suppliers repo.SupplierRepository
	products  repo.ProductRepository
}

func NewSupplierService(suppliers repo.SupplierRepository, products repo.ProductRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers, products: products}
}

type SupplierPatch struct {
	Name        *string
	ContactInfo *string
}

func (s *SupplierService) List() ([]models.Supplier, error) {
	return s.suppliers.GetAll()
}

func (s *SupplierService) Get(id int) (models.Supplier, error) {
	sup, err := s.suppliers.GetByID(id)
	if errors.Is(err, repo.ErrSupplierNotFound) {
		return models.Supplier{}, apperr.NotFound("supplier not found with id %d", id)
	}
	return sup, err
}

func (s *SupplierService) Create(name, contactInfo string) (models.Supplier, error) {
	exists, err := s.suppliers.ExistsByName(name)
	if err != nil {
		return models.Supplier{}, err
	}
	if exists {
		return models.Supplier{}, apperr.Duplicate("supplier with name %q already exists", name)
	}

	created, err := s.suppliers.Create(models.Supplier{Name: name, ContactInfo: contactInfo})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Supplier{}, apperr.Duplicate("supplier with name %q already exists", name)
	}
	return created, err
}

func (s *SupplierService) Update(id int, patch SupplierPatch) (models.Supplier, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Supplier{}, err
	}

	if patch.Name != nil && *patch.Name != existing.Name {
		exists, err := s.suppliers.ExistsByName(*patch.Name)
		if err != nil {
			return models.Supplier{}, err
		}
		if exists {
			return models.Supplier{}, apperr.Duplicate("supplier with name %q already exists", *patch.Name)
		}
		existing.Name = *patch.Name
	}
	if patch.ContactInfo != nil {
		existing.ContactInfo = *patch.ContactInfo
	}

	updated, err := s.suppliers.Update(existing)
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Supplier{}, apperr.Duplicate("supplier with name %q already exists", existing.Name)
	}
	return updated, err
}

func (s *SupplierService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	n, err := s.products.CountBySupplier(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Invalid("cannot delete supplier with existing products; delete associated products first")
	}

	err = s.suppliers.Delete(id)
	if errors.Is(err, repo.ErrDependentRowsExist) {
		return apperr.Invalid("cannot delete supplier with existing products; delete associated products first")
	}
	if errors.Is(err, repo.ErrSupplierNotFound) {
		return apperr.NotFound("supplier not found with id %d", id)
	}
	return err
}
