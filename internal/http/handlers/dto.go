package handlers

type CategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

type CategoryResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type SupplierRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactInfo *string `json:"contact_info"`
}

type SupplierResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}

type ProductRequest struct {
	Name          string  `json:"name"`
	Sku           string  `json:"sku"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	CategoryId    int     `json:"category_id"`
	SupplierId    int     `json:"supplier_id"`
}

// UpdateProductRequest is a patch: absent fields leave the stored value
// unchanged, which is distinct from an explicitly empty value.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Sku           *string  `json:"sku"`
	Description   *string  `json:"description"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellingPrice  *float64 `json:"selling_price"`
	CategoryId    *int     `json:"category_id"`
	SupplierId    *int     `json:"supplier_id"`
}

type ProductResponse struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	Sku           string  `json:"sku"`
	Description   string  `json:"description,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	CategoryId    int     `json:"category_id"`
	SupplierId    int     `json:"supplier_id"`
}

type InventoryRequest struct {
	ProductId         int `json:"product_id"`
	QuantityInStock   int `json:"quantity_in_stock"`
	LowStockThreshold int `json:"low_stock_threshold"`
}

type UpdateInventoryRequest struct {
	QuantityInStock   *int `json:"quantity_in_stock"`
	LowStockThreshold *int `json:"low_stock_threshold"`
}

type InventoryResponse struct {
	Id                int    `json:"id"`
	ProductId         int    `json:"product_id"`
	QuantityInStock   int    `json:"quantity_in_stock"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	LowStock          bool   `json:"low_stock"`
	CreatedAt         string `json:"created_at"`
	LastUpdated       string `json:"last_updated"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

type UserResponse struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type RegisterResult struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type LoginResult struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
