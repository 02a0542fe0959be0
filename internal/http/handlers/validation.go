package handlers

import (
	"strings"
)

const maxNameLength = 100

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateName(field, name string, errs []ValidationError) []ValidationError {
	if strings.TrimSpace(name) == "" {
		errs = append(errs, ValidationError{Field: field, Description: field + " is required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, ValidationError{Field: field, Description: field + " must be at most 100 characters"})
	}
	return errs
}

func validateCategory(req CategoryRequest) []ValidationError {
	return validateName("Name", req.Name, []ValidationError{})
}

func validateSupplier(req SupplierRequest) []ValidationError {
	return validateName("Name", req.Name, []ValidationError{})
}

func validateProduct(req ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(req.Sku) == "" {
		errs = append(errs, ValidationError{Field: "Sku", Description: "Sku is required"})
	}
	if req.PurchasePrice < 0 {
		errs = append(errs, ValidationError{Field: "PurchasePrice", Description: "Purchase price cannot be negative"})
	}
	if req.SellingPrice < 0 {
		errs = append(errs, ValidationError{Field: "SellingPrice", Description: "Selling price cannot be negative"})
	}
	if req.CategoryId <= 0 {
		errs = append(errs, ValidationError{Field: "CategoryId", Description: "Category id is required"})
	}
	if req.SupplierId <= 0 {
		errs = append(errs, ValidationError{Field: "SupplierId", Description: "Supplier id is required"})
	}
	return errs
}

func validateUpdateProduct(req UpdateProductRequest) []ValidationError {
	errs := []ValidationError{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name cannot be empty"})
	}
	if req.Sku != nil && strings.TrimSpace(*req.Sku) == "" {
		errs = append(errs, ValidationError{Field: "Sku", Description: "Sku cannot be empty"})
	}
	if req.PurchasePrice != nil && *req.PurchasePrice < 0 {
		errs = append(errs, ValidationError{Field: "PurchasePrice", Description: "Purchase price cannot be negative"})
	}
	if req.SellingPrice != nil && *req.SellingPrice < 0 {
		errs = append(errs, ValidationError{Field: "SellingPrice", Description: "Selling price cannot be negative"})
	}
	return errs
}

func validateInventory(req InventoryRequest) []ValidationError {
	errs := []ValidationError{}
	if req.ProductId <= 0 {
		errs = append(errs, ValidationError{Field: "ProductId", Description: "Product id is required"})
	}
	if req.QuantityInStock < 0 {
		errs = append(errs, ValidationError{Field: "QuantityInStock", Description: "Quantity cannot be negative"})
	}
	if req.LowStockThreshold < 0 {
		errs = append(errs, ValidationError{Field: "LowStockThreshold", Description: "Threshold cannot be negative"})
	}
	return errs
}

func validateUpdateInventory(req UpdateInventoryRequest) []ValidationError {
	errs := []ValidationError{}
	if req.QuantityInStock != nil && *req.QuantityInStock < 0 {
		errs = append(errs, ValidationError{Field: "QuantityInStock", Description: "Quantity cannot be negative"})
	}
	if req.LowStockThreshold != nil && *req.LowStockThreshold < 0 {
		errs = append(errs, ValidationError{Field: "LowStockThreshold", Description: "Threshold cannot be negative"})
	}
	return errs
}
