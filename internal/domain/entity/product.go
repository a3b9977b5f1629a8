package entity

// Product representa un producto del inventario. ProductID es la identidad estable
// (la asigna el usuario); el stock no vive aquí, se deriva de los movimientos.
type Product struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Identity devuelve la clave de la colección.
func (p Product) Identity() string { return p.ProductID }

// DisplayName nombre a mostrar; si el producto no tiene nombre se usa su identidad.
func (p Product) DisplayName() string {
	if p.Name == "" {
		return p.ProductID
	}
	return p.Name
}
