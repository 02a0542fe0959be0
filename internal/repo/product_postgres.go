package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/rogerio-castellano/inventory-manager/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, sku, description, purchase_price, selling_price, category_id, supplier_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.SKU, p.Description, p.PurchasePrice, p.SellingPrice, p.CategoryID, p.SupplierID).Scan(&p.ID)
	return p, translateConstraint(err)
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, sku, description, purchase_price, selling_price, category_id, supplier_id
	          FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Description,
			&p.PurchasePrice, &p.SellingPrice, &p.CategoryID, &p.SupplierID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, name, sku, description, purchase_price, selling_price, category_id, supplier_id
	          FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.SKU, &p.Description,
		&p.PurchasePrice, &p.SellingPrice, &p.CategoryID, &p.SupplierID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) ExistsBySKU(sku string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, query, sku).Scan(&exists)
	return exists, err
}

func (r *PostgresProductRepository) CountByCategory(categoryID int) (int, error) {
	return r.count(`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID)
}

func (r *PostgresProductRepository) CountBySupplier(supplierID int) (int, error) {
	return r.count(`SELECT COUNT(*) FROM products WHERE supplier_id = $1`, supplierID)
}

func (r *PostgresProductRepository) count(query string, arg int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&n)
	return n, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, sku = $2, description = $3, purchase_price = $4,
	          selling_price = $5, category_id = $6, supplier_id = $7 WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.SKU, p.Description, p.PurchasePrice, p.SellingPrice, p.CategoryID, p.SupplierID, p.ID)
	if err != nil {
		return models.Product{}, translateConstraint(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateConstraint(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
