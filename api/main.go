package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/db"
	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	"github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-manager/internal/http/loginguard"
	rl "github.com/rogerio-castellano/inventory-manager/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/rogerio-castellano/inventory-manager/internal/service"
)

// @title Inventory Manager API
// @version 1.0
// @description REST API for managing catalog, suppliers, stock levels and users.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("⚠️ Could not connect to Redis, login guard disabled: %v", err)
		} else {
			loginguard.SetRedisClient(rdb)
			defer rdb.Close()
		}
		cancel()
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database: ", err)
	}
	defer database.Close()

	if cfg.Migrate {
		if err := db.Migrate(database); err != nil {
			log.Fatal("❌ Could not apply migrations: ", err)
		}
	}

	categoryRepo := repo.NewPostgresCategoryRepository(database)
	supplierRepo := repo.NewPostgresSupplierRepository(database)
	productRepo := repo.NewPostgresProductRepository(database)
	inventoryRepo := repo.NewPostgresInventoryRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)

	handlers.SetCategoryService(service.NewCategoryService(categoryRepo, productRepo))
	handlers.SetSupplierService(service.NewSupplierService(supplierRepo, productRepo))
	handlers.SetProductService(service.NewProductService(productRepo, categoryRepo, supplierRepo, inventoryRepo))
	handlers.SetInventoryService(service.NewInventoryService(inventoryRepo, productRepo))
	handlers.SetUserService(service.NewUserService(userRepo))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
