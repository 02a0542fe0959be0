package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/service"
)

func toInventoryResponse(inv models.Inventory) InventoryResponse {
	return InventoryResponse{
		Id:                inv.ID,
		ProductId:         inv.ProductID,
		QuantityInStock:   inv.QuantityInStock,
		LowStockThreshold: inv.LowStockThreshold,
		LowStock:          inv.LowStock(),
		CreatedAt:         inv.CreatedAt.Format(time.RFC3339),
		LastUpdated:       inv.LastUpdated.Format(time.RFC3339),
	}
}

func toInventoryResponses(records []models.Inventory) []InventoryResponse {
	response := make([]InventoryResponse, len(records))
	for i, inv := range records {
		response[i] = toInventoryResponse(inv)
	}
	return response
}

// GetInventoryHandler godoc
// @Summary List all inventory records
// @Tags inventory
// @Produce json
// @Success 200 {array} InventoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	records, err := inventoryService.List()
	if err != nil {
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponses(records))
}

// GetLowStockHandler godoc
// @Summary List inventory records below their low-stock threshold
// @Description A record exactly at its threshold is not low stock.
// @Tags inventory
// @Produce json
// @Success 200 {array} InventoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /inventory/low-stock [get]
func GetLowStockHandler(w http.ResponseWriter, r *http.Request) {
	records, err := inventoryService.ListLowStock()
	if err != nil {
		http.Error(w, "could not fetch low-stock inventory", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponses(records))
}

// GetInventoryByProductIDHandler godoc
// @Summary Get the inventory record for a product
// @Tags inventory
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} InventoryResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /inventory/product/{productId} [get]
func GetInventoryByProductIDHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	inv, err := inventoryService.GetByProductID(productID)
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not fetch inventory")
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponse(inv))
}

// CreateInventoryHandler godoc
// @Summary Create the inventory record for a product
// @Description Each product has at most one inventory record.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inventory body InventoryRequest true "Inventory to add"
// @Success 201 {object} InventoryResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Product not found"
// @Failure 409 {string} string "Inventory already exists for product"
// @Router /inventory [post]
func CreateInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateInventory(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := inventoryService.Create(req.ProductId, req.QuantityInStock, req.LowStockThreshold)
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not create inventory")
		return
	}
	writeJSON(w, http.StatusCreated, toInventoryResponse(created))
}

// UpdateInventoryByProductIDHandler godoc
// @Summary Update the inventory record for a product
// @Description Merges the provided fields and restamps last_updated.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Param inventory body UpdateInventoryRequest true "Fields to update"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Router /inventory/product/{productId} [put]
func UpdateInventoryByProductIDHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req UpdateInventoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateUpdateInventory(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := inventoryService.UpdateByProductID(productID, service.InventoryPatch{
		QuantityInStock:   req.QuantityInStock,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not update inventory")
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponse(updated))
}

// DeleteInventoryHandler godoc
// @Summary Delete an inventory record
// @Tags inventory
// @Security BearerAuth
// @Param id path int true "Inventory ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /inventory/{id} [delete]
func DeleteInventoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid inventory ID", http.StatusBadRequest)
		return
	}

	if err := inventoryService.DeleteByID(id); err != nil {
		writeServiceError(w, err, http.StatusConflict, "could not delete inventory")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
