package models

// Product represents a catalog item. Category and Supplier are referenced
// by id; callers resolve the full rows on demand.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	CategoryID    int     `json:"category_id"`
	SupplierID    int     `json:"supplier_id"`
}
