package entity

// Location representa una bodega, tienda o cualquier lugar donde se almacena stock.
// No puede eliminarse mientras algún movimiento la referencie.
type Location struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
}

// Identity devuelve la clave de la colección.
func (l Location) Identity() string { return l.LocationID }

// DisplayName nombre a mostrar; si la ubicación no tiene nombre se usa su identidad.
func (l Location) DisplayName() string {
	if l.Name == "" {
		return l.LocationID
	}
	return l.Name
}
