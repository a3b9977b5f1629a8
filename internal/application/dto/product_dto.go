package dto

// CreateProductRequest entrada para crear un producto. Sin product_id se genera un UUID.
type CreateProductRequest struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateProductRequest reemplazo completo de un producto: los campos omitidos quedan vacíos.
type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
