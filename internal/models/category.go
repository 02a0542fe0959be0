package models

// Category groups products in the catalog.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
