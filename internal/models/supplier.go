package models

// Supplier is a source of products.
type Supplier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}
