package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/inventory-manager/internal/apperr"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// DefaultRole is assigned when a registration does not specify one.
const DefaultRole = "user"

// invalidCredentials is deliberately identical for an unknown username and a
// wrong password so callers cannot tell which check failed.
const invalidCredentials = "invalid username or password"

type UserService struct {
	users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

type UserPatch struct {
	Username *string
	Password *string
	Role     *string
}

func (s *UserService) List() ([]models.User, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, err
	}
	// work on a copy; the repository may hand out its backing slice
	out := make([]models.User, len(users))
	copy(out, users)
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out, nil
}

func (s *UserService) Get(id int) (models.User, error) {
	u, err := s.users.GetByID(id)
	if errors.Is(err, repo.ErrUserNotFound) {
		return models.User{}, apperr.NotFound("user not found with id %d", id)
	}
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *UserService) Register(username, rawPassword, role string) (models.User, error) {
	exists, err := s.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, apperr.Duplicate("username %q already exists", username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	if role == "" {
		role = DefaultRole
	}

	now := time.Now().UTC()
	created, err := s.users.Create(models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.User{}, apperr.Duplicate("username %q already exists", username)
	}
	if err != nil {
		return models.User{}, err
	}
	created.PasswordHash = ""
	return created, nil
}

func (s *UserService) Login(username, rawPassword string) (models.User, error) {
	u, err := s.users.GetByUsername(username)
	if errors.Is(err, repo.ErrUserNotFound) {
		return models.User{}, apperr.Unauthorized(invalidCredentials)
	}
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(rawPassword)) != nil {
		return models.User{}, apperr.Unauthorized(invalidCredentials)
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *UserService) Update(id int, patch UserPatch) (models.User, error) {
	existing, err := s.users.GetByID(id)
	if errors.Is(err, repo.ErrUserNotFound) {
		return models.User{}, apperr.NotFound("user not found with id %d", id)
	}
	if err != nil {
		return models.User{}, err
	}

	if patch.Username != nil && *patch.Username != existing.Username {
		exists, err := s.users.ExistsByUsername(*patch.Username)
		if err != nil {
			return models.User{}, err
		}
		if exists {
			return models.User{}, apperr.Duplicate("username %q already exists", *patch.Username)
		}
		existing.Username = *patch.Username
	}

	if patch.Password != nil && *patch.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		existing.PasswordHash = string(hashed)
	}

	if patch.Role != nil {
		existing.Role = *patch.Role
	}

	existing.UpdatedAt = time.Now().UTC()
	updated, err := s.users.Update(existing)
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.User{}, apperr.Duplicate("username %q already exists", existing.Username)
	}
	if err != nil {
		return models.User{}, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (s *UserService) Delete(id int) error {
	err := s.users.Delete(id)
	if errors.Is(err, repo.ErrUserNotFound) {
		return apperr.NotFound("user not found with id %d", id)
	}
	return err
}
