package repo

// Metrics is a dashboard snapshot of catalog size and stock health.
type Metrics struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	TotalSuppliers  int `json:"total_suppliers"`
	LowStockCount   int `json:"low_stock_count"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
