package repo

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(u models.User) (models.User, error)
	GetAll() ([]models.User, error)
	GetByID(id int) (models.User, error)
	GetByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	Update(u models.User) (models.User, error)
	Delete(id int) error
}
