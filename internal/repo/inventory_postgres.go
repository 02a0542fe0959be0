package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/rogerio-castellano/inventory-manager/internal/models"
)

type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

const inventoryColumns = `id, product_id, quantity_in_stock, low_stock_threshold, created_at, last_updated`

func (r *PostgresInventoryRepository) Create(inv models.Inventory) (models.Inventory, error) {
	query := `INSERT INTO inventory (product_id, quantity_in_stock, low_stock_threshold, created_at, last_updated)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		inv.ProductID, inv.QuantityInStock, inv.LowStockThreshold, inv.CreatedAt, inv.LastUpdated).Scan(&inv.ID)
	return inv, translateConstraint(err)
}

func (r *PostgresInventoryRepository) GetAll() ([]models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY id`
	return r.queryMany(query)
}

func (r *PostgresInventoryRepository) GetByID(id int) (models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var inv models.Inventory
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.ProductID,
		&inv.QuantityInStock, &inv.LowStockThreshold, &inv.CreatedAt, &inv.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, err
}

func (r *PostgresInventoryRepository) GetByProductID(productID int) (models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var inv models.Inventory
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&inv.ID, &inv.ProductID,
		&inv.QuantityInStock, &inv.LowStockThreshold, &inv.CreatedAt, &inv.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, err
}

func (r *PostgresInventoryRepository) ExistsForProduct(productID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM inventory WHERE product_id = $1)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&exists)
	return exists, err
}

// ListLowStock returns rows strictly below their threshold. A row exactly
// at the threshold is not low stock.
func (r *PostgresInventoryRepository) ListLowStock() ([]models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory
	          WHERE quantity_in_stock < low_stock_threshold ORDER BY id`
	return r.queryMany(query)
}

func (r *PostgresInventoryRepository) queryMany(query string) ([]models.Inventory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Inventory
	for rows.Next() {
		var inv models.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.QuantityInStock,
			&inv.LowStockThreshold, &inv.CreatedAt, &inv.LastUpdated); err != nil {
			return nil, err
		}
		records = append(records, inv)
	}
	return records, rows.Err()
}

func (r *PostgresInventoryRepository) Update(inv models.Inventory) (models.Inventory, error) {
	query := `UPDATE inventory SET quantity_in_stock = $1, low_stock_threshold = $2, last_updated = $3 WHERE id = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		inv.QuantityInStock, inv.LowStockThreshold, inv.LastUpdated, inv.ID)
	if err != nil {
		return models.Inventory{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, nil
}

func (r *PostgresInventoryRepository) Delete(id int) error {
	query := `DELETE FROM inventory WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrInventoryNotFound
	}
	return nil
}
