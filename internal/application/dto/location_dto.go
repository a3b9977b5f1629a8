package dto

// CreateLocationRequest entrada para crear una ubicación. Sin location_id se genera un UUID.
type CreateLocationRequest struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Address    string `json:"address"`
}

// UpdateLocationRequest reemplazo completo de una ubicación.
type UpdateLocationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
