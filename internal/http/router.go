package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/inventory-manager/docs"
	"github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
)

// NewRouter mounts the full REST surface. Reads are public; every mutating
// route requires a bearer token. Register and login are rate limited per IP.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)
	r.Get("/suppliers", handlers.GetSuppliersHandler)
	r.Get("/suppliers/{id}", handlers.GetSupplierByIDHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/inventory", handlers.GetInventoryHandler)
	r.Get("/inventory/low-stock", handlers.GetLowStockHandler)
	r.Get("/inventory/product/{productId}", handlers.GetInventoryByProductIDHandler)
	r.Get("/metrics", handlers.GetDashboardMetricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Put("/categories/{id}", handlers.UpdateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		r.Post("/suppliers", handlers.CreateSupplierHandler)
		r.Put("/suppliers/{id}", handlers.UpdateSupplierHandler)
		r.Delete("/suppliers/{id}", handlers.DeleteSupplierHandler)

		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Post("/inventory", handlers.CreateInventoryHandler)
		r.Put("/inventory/product/{productId}", handlers.UpdateInventoryByProductIDHandler)
		r.Delete("/inventory/{id}", handlers.DeleteInventoryHandler)

		r.Get("/users", handlers.GetUsersHandler)
		r.Get("/users/{id}", handlers.GetUserByIDHandler)
		r.Put("/users/{id}", handlers.UpdateUserHandler)
		r.Delete("/users/{id}", handlers.DeleteUserHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
