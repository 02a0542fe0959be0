package models

import "time"

// Inventory tracks the stock level for exactly one product.
type Inventory struct {
	ID                int       `json:"id"`
	ProductID         int       `json:"product_id"`
	QuantityInStock   int       `json:"quantity_in_stock"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	LastUpdated       time.Time `json:"last_updated"`
}

// LowStock reports whether the quantity has fallen strictly below the
// threshold. A row exactly at the threshold is not low stock.
func (i Inventory) LowStock() bool {
	return i.QuantityInStock < i.LowStockThreshold
}
