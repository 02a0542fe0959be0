package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM products),
		(SELECT COUNT(*) FROM categories),
		(SELECT COUNT(*) FROM suppliers),
		(SELECT COUNT(*) FROM inventory WHERE quantity_in_stock < low_stock_threshold)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics
	err := r.db.QueryRowContext(ctx, query).
		Scan(&m.TotalProducts, &m.TotalCategories, &m.TotalSuppliers, &m.LowStockCount)
	return m, err
}
