package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(c models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id int) (models.Category, error)
	ExistsByName(name string) (bool, error)
	Update(c models.Category) (models.Category, error)
	Delete(id int) error
}
