package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/service"
)

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		Sku:           p.SKU,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		CategoryId:    p.CategoryID,
		SupplierId:    p.SupplierID,
	}
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productService.List()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productService.Get(id)
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not fetch product")
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog. The category and supplier must already exist.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Category or supplier not found"
// @Failure 409 {string} string "Duplicate SKU"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := productService.Create(service.NewProduct{
		Name:          req.Name,
		SKU:           req.Sku,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		CategoryID:    req.CategoryId,
		SupplierID:    req.SupplierId,
	})
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not create product")
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Merges the provided fields into the product; absent fields are left unchanged.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body UpdateProductRequest true "Fields to update"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicate SKU"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req UpdateProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateUpdateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := productService.Update(id, service.ProductPatch{
		Name:          req.Name,
		SKU:           req.Sku,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		CategoryID:    req.CategoryId,
		SupplierID:    req.SupplierId,
	})
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not update product")
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Product still has an inventory record"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productService.Delete(id); err != nil {
		writeServiceError(w, err, http.StatusConflict, "could not delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
