package handlers

import (
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/rogerio-castellano/inventory-manager/internal/service"
)

var (
	categoryService  *service.CategoryService
	supplierService  *service.SupplierService
	productService   *service.ProductService
	inventoryService *service.InventoryService
	userService      *service.UserService
	metricsRepo      repo.MetricsRepository
)

func SetCategoryService(s *service.CategoryService) {
	categoryService = s
}

func SetSupplierService(s *service.SupplierService) {
	supplierService = s
}

func SetProductService(s *service.ProductService) {
	productService = s
}

func SetInventoryService(s *service.InventoryService) {
	inventoryService = s
}

func SetUserService(s *service.UserService) {
	userService = s
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}
