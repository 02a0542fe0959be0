// Package service holds the validation and referential-integrity rules for
// the catalog. Each service is constructed with the repositories it needs;
// there is no ambient registry. Business failures are reported through the
// apperr kinds and translated to status codes only at the HTTP boundary.
package service

import (
	"errors"

	"github.com/rogerio-castellano/inventory-manager/internal/apperr"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

type CategoryService struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
}

func NewCategoryService(categories repo.CategoryRepository, products repo.ProductRepository) *CategoryService {
	return &CategoryService{categories: categories, products: products}
}

// CategoryPatch carries the optional fields of a category update. A nil
// field leaves the current value unchanged.
type CategoryPatch struct {
	Name *string
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.GetAll()
}

func (s *CategoryService) Get(id int) (models.Category, error) {
	c, err := s.categories.GetByID(id)
	if errors.Is(err, repo.ErrCategoryNotFound) {
		return models.Category{}, apperr.NotFound("category not found with id %d", id)
	}
	return c, err
}

func (s *CategoryService) Create(name string) (models.Category, error) {
	exists, err := s.categories.ExistsByName(name)
	if err != nil {
		return models.Category{}, err
	}
	if exists {
		return models.Category{}, apperr.Duplicate("category with name %q already exists", name)
	}

	created, err := s.categories.Create(models.Category{Name: name})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		// Lost the race between the existence check and the insert; the
		// database unique constraint is the authoritative check.
		return models.Category{}, apperr.Duplicate("category with name %q already exists", name)
	}
	return created, err
}

func (s *CategoryService) Update(id int, patch CategoryPatch) (models.Category, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Category{}, err
	}

	if patch.Name != nil && *patch.Name != existing.Name {
		exists, err := s.categories.ExistsByName(*patch.Name)
		if err != nil {
			return models.Category{}, err
		}
		if exists {
			return models.Category{}, apperr.Duplicate("category with name %q already exists", *patch.Name)
		}
		existing.Name = *patch.Name
	}

	updated, err := s.categories.Update(existing)
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Category{}, apperr.Duplicate("category with name %q already exists", existing.Name)
	}
	return updated, err
}

func (s *CategoryService) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	n, err := s.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Invalid("cannot delete category with existing products; delete associated products first")
	}

	err = s.categories.Delete(id)
	if errors.Is(err, repo.ErrDependentRowsExist) {
		return apperr.Invalid("cannot delete category with existing products; delete associated products first")
	}
	if errors.Is(err, repo.ErrCategoryNotFound) {
		return apperr.NotFound("category not found with id %d", id)
	}
	return err
}
