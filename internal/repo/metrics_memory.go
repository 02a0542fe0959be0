package repo

// InMemoryMetricsRepository derives dashboard metrics from the other
// in-memory repositories.
type InMemoryMetricsRepository struct {
	products   *InMemoryProductRepository
	categories *InMemoryCategoryRepository
	suppliers  *InMemorySupplierRepository
	inventory  *InMemoryInventoryRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepositories(
	products *InMemoryProductRepository,
	categories *InMemoryCategoryRepository,
	suppliers *InMemorySupplierRepository,
	inventory *InMemoryInventoryRepository,
) {
	r.products = products
	r.categories = categories
	r.suppliers = suppliers
	r.inventory = inventory
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	low, err := r.inventory.ListLowStock()
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		TotalProducts:   len(r.products.products),
		TotalCategories: len(r.categories.categories),
		TotalSuppliers:  len(r.suppliers.suppliers),
		LowStockCount:   len(low),
	}, nil
}
