package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrUserNotFound      = errors.New("user not found")

	// ErrDuplicatedValueUnique is returned when an insert or update trips a
	// unique constraint. The database constraint is the authoritative check;
	// service-layer lookups are only the fast path.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")

	// ErrDependentRowsExist is returned when a delete is blocked by a
	// foreign-key constraint.
	ErrDependentRowsExist = errors.New("dependent rows exist")
)

// translateConstraint maps postgres constraint violations onto the
// repository sentinels so services never see SQLSTATE codes.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicatedValueUnique
		case "23503":
			return ErrDependentRowsExist
		}
	}
	return err
}
