package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/service"
)

func toSupplierResponse(s models.Supplier) SupplierResponse {
	return SupplierResponse{Id: s.ID, Name: s.Name, ContactInfo: s.ContactInfo}
}

// GetSuppliersHandler godoc
// @Summary List all suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} SupplierResponse
// @Failure 500 {string} string "Internal error"
// @Router /suppliers [get]
func GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, err := supplierService.List()
	if err != nil {
		http.Error(w, "could not fetch suppliers", http.StatusInternalServerError)
		return
	}
	response := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		response[i] = toSupplierResponse(s)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetSupplierByIDHandler godoc
// @Summary Get supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} SupplierResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /suppliers/{id} [get]
func GetSupplierByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	supplier, err := supplierService.Get(id)
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not fetch supplier")
		return
	}
	writeJSON(w, http.StatusOK, toSupplierResponse(supplier))
}

// CreateSupplierHandler godoc
// @Summary Create a new supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param supplier body SupplierRequest true "Supplier to add"
// @Success 201 {object} SupplierResponse
// @Failure 400 {object} []ValidationError
// @Failure 409 {string} string "Duplicate name"
// @Router /suppliers [post]
func CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSupplier(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := supplierService.Create(req.Name, req.ContactInfo)
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not create supplier")
		return
	}
	writeJSON(w, http.StatusCreated, toSupplierResponse(created))
}

// UpdateSupplierHandler godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Param supplier body UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} SupplierResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicate name"
// @Router /suppliers/{id} [put]
func UpdateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	var req UpdateSupplierRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if req.Name != nil {
		if errs := validateName("Name", *req.Name, []ValidationError{}); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}
	}

	updated, err := supplierService.Update(id, service.SupplierPatch{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		writeServiceError(w, err, http.StatusBadRequest, "could not update supplier")
		return
	}
	writeJSON(w, http.StatusOK, toSupplierResponse(updated))
}

// DeleteSupplierHandler godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Supplier still has products"
// @Router /suppliers/{id} [delete]
func DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	if err := supplierService.Delete(id); err != nil {
		writeServiceError(w, err, http.StatusConflict, "could not delete supplier")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
